package operations

import (
	"errors"
	"fmt"

	"hwreport/internal/dataset"
	"hwreport/internal/files"
)

// ErrorType represents the type of operation error
type ErrorType string

const (
	// ErrorTypeFatal is a startup failure, such as a missing input file
	ErrorTypeFatal ErrorType = "fatal"
	// ErrorTypeDataShape is an input that cannot be converted
	ErrorTypeDataShape ErrorType = "data_shape"
	// ErrorTypeExecution covers I/O and every other step failure
	ErrorTypeExecution ErrorType = "execution"
	// ErrorTypeValidation is an unmet step precondition
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeCancellation is a run interrupted through its context
	ErrorTypeCancellation ErrorType = "cancellation"
)

// OperationError represents an operation-specific error
type OperationError struct {
	Type    ErrorType
	Step    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e == nil {
		return "unknown operation error"
	}
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Step != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Step, msg)
	}
	return fmt.Sprintf("[%s] %s", e.Type, msg)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(step, message string) *OperationError {
	return &OperationError{Type: ErrorTypeValidation, Step: step, Message: message}
}

// NewExecutionError creates a new execution error
func NewExecutionError(step string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeExecution, Step: step, Message: "step execution failed", Cause: cause}
}

// NewDataShapeError creates a new data shape error
func NewDataShapeError(step string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeDataShape, Step: step, Message: "malformed input", Cause: cause}
}

// NewFatalError creates a new fatal error
func NewFatalError(step, message string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeFatal, Step: step, Message: message, Cause: cause}
}

// NewCancellationError creates a new cancellation error
func NewCancellationError(step string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeCancellation, Step: step, Message: "operation was cancelled", Cause: cause}
}

// GetErrorType returns the type of the error. Unclassified errors are
// execution errors.
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ""
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Type
	}
	return ErrorTypeExecution
}

// IsFatal reports whether err is a fatal startup error
func IsFatal(err error) bool {
	return GetErrorType(err) == ErrorTypeFatal
}

// IsDataShape reports whether err is a data shape error
func IsDataShape(err error) bool {
	return GetErrorType(err) == ErrorTypeDataShape
}

// WrapError classifies a step failure. OperationErrors pass through with the
// step filled in; known sentinels map to their error type.
func WrapError(err error, step string) *OperationError {
	if err == nil {
		return nil
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		if opErr.Step == "" {
			opErr.Step = step
		}
		return opErr
	}

	switch {
	case errors.Is(err, files.ErrNotFound), errors.Is(err, files.ErrAmbiguous):
		return NewFatalError(step, "required input missing", err)
	case errors.Is(err, dataset.ErrMalformedNumber),
		errors.Is(err, dataset.ErrMissingColumn),
		errors.Is(err, dataset.ErrEmptyFile):
		return NewDataShapeError(step, err)
	default:
		return NewExecutionError(step, err)
	}
}
