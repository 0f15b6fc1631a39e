package http

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"geoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// MockCommandHandler is a mock implementation of CommandHandler.
type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// MockResultHandler is a mock implementation of ResultHandler.
type MockResultHandler[C, R any] struct {
	mock.Mock
}

func (m *MockResultHandler[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	if v, ok := args.Get(0).(R); ok {
		return v, args.Error(1)
	}
	var zero R
	return zero, args.Error(1)
}

func newTestEcho(h Handlers) *echo.Echo {
	e := echo.New()
	server := NewServer(h, kernel.DefaultSRID, slog.New(slog.NewTextHandler(io.Discard, nil)))
	RegisterHandlersWithBaseURL(e, server, "/api/v1")
	return e
}

func perform(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const squareJSON = `{"type":"Polygon","coordinates":[[[2600000,1200000],[2600100,1200000],[2600100,1200100],[2600000,1200100],[2600000,1200000]]]}`
