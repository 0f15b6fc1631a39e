package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"geoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "object not found",
			err:      errs.NewObjectNotFoundError("orderID", "5b1e"),
			expected: "object not found: 5b1e",
		},
		{
			name: "object not found with cause",
			err: errs.NewObjectNotFoundErrorWithCause("productID", "9c2d",
				errors.New("record not found")),
			expected: "object not found: param is: productID, ID is: 9c2d (cause: record not found)",
		},
		{
			name:     "value is invalid",
			err:      errs.NewValueIsInvalidError("currency"),
			expected: "value is invalid: currency",
		},
		{
			name: "status transition",
			err: errs.NewValueIsInvalidErrorWithCause("status is invalid",
				errors.New("Ready is not a valid status to confirm the order")),
			expected: "value is invalid: status is invalid (cause: Ready is not a valid status to confirm the order)",
		},
		{
			name:     "value is out of range",
			err:      errs.NewValueIsOutOfRangeError("vat rate", "1.5", 0, 1),
			expected: "value is invalid: 1.5 is vat rate, min value is 0, max value is 1",
		},
		{
			name: "value is out of range with cause",
			err: errs.NewValueIsOutOfRangeErrorWithCause("srid", -1, 1, 998999,
				errors.New("unknown reference system")),
			expected: "value is invalid: -1 is srid, min value is 1, max value is 998999 (cause: unknown reference system)",
		},
		{
			name:     "value is required",
			err:      errs.NewValueIsRequiredError("order_type"),
			expected: "value is required: order_type",
		},
		{
			name: "value is required with cause",
			err: errs.NewValueIsRequiredErrorWithCause("data format",
				errors.New("every item needs a format before confirmation")),
			expected: "value is required: data format (cause: every item needs a format before confirmation)",
		},
		{
			name:     "version is invalid",
			err:      errs.NewVersionIsInvalidErrorWithCause("order"),
			expected: "version is invalid: order",
		},
		{
			name: "version is invalid with cause",
			err: errs.NewVersionIsInvalidError("order",
				errors.New("expected version 3")),
			expected: "version is invalid: order (cause: expected version 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsClassifyThroughWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", errs.NewObjectNotFoundError("orderID", "1"), errs.ErrObjectNotFound},
		{"invalid", errs.NewValueIsInvalidError("geometry"), errs.ErrValueIsInvalid},
		{"out of range", errs.NewValueIsOutOfRangeError("priority", 0, 1, 10), errs.ErrValueIsOutOfRange},
		{"required", errs.NewValueIsRequiredError("client"), errs.ErrValueIsRequired},
		{"version", errs.NewVersionIsInvalidErrorWithCause("order"), errs.ErrVersionIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("confirm order: %w", tt.err), tt.sentinel)
			require.ErrorIs(t, errors.Join(errs.NewValueIsRequiredError("title"), tt.err), tt.sentinel)
		})
	}
}

func TestErrorsClassifyByCause(t *testing.T) {
	errQuoteIsIncomplete := errors.New("some items have no price yet")
	errTokenNotFound := errors.New("validation token not found")

	tests := []struct {
		name     string
		err      error
		cause    error
		sentinel error
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundErrorWithCause("token", "a1", errTokenNotFound),
			cause:    errTokenNotFound,
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "invalid with wrapped cause",
			err:      errs.NewValueIsInvalidErrorWithCause("quote", fmt.Errorf("order a1: %w", errQuoteIsIncomplete)),
			cause:    errQuoteIsIncomplete,
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("priority", 0, 1, 10, errTokenNotFound),
			cause:    errTokenNotFound,
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredErrorWithCause("items", errQuoteIsIncomplete),
			cause:    errQuoteIsIncomplete,
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "version",
			err:      errs.NewVersionIsInvalidError("order", errTokenNotFound),
			cause:    errTokenNotFound,
			sentinel: errs.ErrVersionIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.cause)
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("complete quote: %w", tt.err), tt.cause)
		})
	}

	t.Run("without cause only the sentinel matches", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quote")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errQuoteIsIncomplete)
	})

	t.Run("unrelated cause does not match", func(t *testing.T) {
		err := errs.NewObjectNotFoundErrorWithCause("token", "a1", errTokenNotFound)
		assert.NotErrorIs(t, err, errQuoteIsIncomplete)
	})
}

func TestErrorsAs_ExposeTheParameter(t *testing.T) {
	err := fmt.Errorf("set item format: %w",
		errs.NewValueIsInvalidErrorWithCause("item status is invalid", errors.New("Processed")))

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "item status is invalid", invalid.ParamName)
	assert.EqualError(t, invalid.Cause, "Processed")
}

func TestValueIsOutOfRangeError_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("label", "Orthophoto\r\n2023", 1, 255)

	assert.Contains(t, err.Error(), "Orthophoto 2023")
	assert.NotContains(t, err.Error(), "\n")
	assert.NotContains(t, err.Error(), "\r")
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}
