package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)

// ValidationError collects per-field messages for one rejected request.
// Operations that return it are guaranteed to have made no mutation.
type ValidationError struct {
	fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{
		fields: make(map[string][]string),
	}
}

func (e *ValidationError) Add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.fields) > 0
}

func (e *ValidationError) Fields() map[string][]string {
	return e.fields
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %+v", ErrValidation, e.fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func AsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
