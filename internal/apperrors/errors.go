package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ValidationError reports a single candidate value failing its declared
// field constraint. It is raised at the input boundary and never reaches
// the persistence layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// FieldViolation names a column and the conflicting value the storage
// engine rejected it for.
type FieldViolation struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ConflictError reports a commit rejected by a uniqueness or type
// constraint, decoded into field-level diagnostics. Fields may be empty
// when the backend failure carried no structured detail.
type ConflictError struct {
	Fields []FieldViolation
}

func (e *ConflictError) Error() string {
	if len(e.Fields) == 0 {
		return "constraint violation"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s=%s", f.Field, f.Value)
	}
	return "constraint violation on " + strings.Join(parts, ", ")
}

func (e *ConflictError) Unwrap() error {
	return ErrDuplicate
}

// PersistenceError wraps a storage failure that could not be attributed
// to any particular field. It is surfaced as-is.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
