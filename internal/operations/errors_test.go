package operations_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"hwreport/internal/dataset"
	"hwreport/internal/files"
	"hwreport/internal/operations"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want operations.ErrorType
	}{
		{"missing file", fmt.Errorf("calendar table: %w", files.ErrNotFound), operations.ErrorTypeFatal},
		{"malformed number", fmt.Errorf("gfk row 2: %w", dataset.ErrMalformedNumber), operations.ErrorTypeDataShape},
		{"missing column", fmt.Errorf("gsd: %w", dataset.ErrMissingColumn), operations.ErrorTypeDataShape},
		{"empty file", dataset.ErrEmptyFile, operations.ErrorTypeDataShape},
		{"other", errors.New("permission denied"), operations.ErrorTypeExecution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := operations.WrapError(tt.err, "step")
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, "step", got.Step)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestWrapError_PassesOperationErrors(t *testing.T) {
	assert.Nil(t, operations.WrapError(nil, "step"))

	orig := operations.NewValidationError("", "bad state")
	got := operations.WrapError(fmt.Errorf("wrapped: %w", orig), "combine")
	assert.Same(t, orig, got)
	assert.Equal(t, "combine", got.Step)
}

func TestOperationError_Error(t *testing.T) {
	err := operations.NewDataShapeError("gfk", errors.New("bad cell"))
	assert.Equal(t, "[data_shape] gfk: malformed input: bad cell", err.Error())

	err = operations.NewValidationError("", "no inputs")
	assert.Equal(t, "[validation] no inputs", err.Error())

	var nilErr *operations.OperationError
	assert.Equal(t, "unknown operation error", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, operations.ErrorType(""), operations.GetErrorType(nil))
	assert.Equal(t, operations.ErrorTypeExecution, operations.GetErrorType(errors.New("x")))
	assert.True(t, operations.IsFatal(operations.NewFatalError("discover", "missing", nil)))
	assert.False(t, operations.IsFatal(errors.New("x")))
	assert.True(t, operations.IsDataShape(fmt.Errorf("ctx: %w", operations.NewDataShapeError("gsd", nil))))
}
