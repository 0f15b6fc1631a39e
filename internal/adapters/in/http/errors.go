package http

import (
	"errors"
	"net/http"
	"strings"

	"geoshop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusOf classifies a use case error. State machine refusals are
// conflicts; every other rule violation is an unprocessable request.
func statusOf(err error) int {
	var invalid *errs.ValueIsInvalidError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.As(err, &invalid) && strings.HasSuffix(invalid.ParamName, "status is invalid"):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// httpError is rendered by echo's error handler as an Error body.
func httpError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, Error{Code: code, Message: message})
}

// bind decodes the body into req and runs its validate tags. The returned
// error is already an HTTP response.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return httpError(http.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return httpError(http.StatusUnprocessableEntity, formatValidationErrors(fieldErrs))
		}
		return httpError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func formatValidationErrors(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "oneof":
			parts = append(parts, fe.Field()+" must be one of "+fe.Param())
		default:
			parts = append(parts, fe.Field()+" failed on "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}
