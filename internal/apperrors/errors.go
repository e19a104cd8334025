package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
// Ownership mismatches surface as ErrNotFound as well, so callers cannot
// distinguish "does not exist" from "belongs to someone else".
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// FieldError describes a single validation failure on a named field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors aggregates every validation failure found in a request,
// so callers see all of them at once instead of just the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Reason)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationErrors value.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a single-field ValidationErrors value.
func NewValidationError(field, reason string) ValidationErrors {
	return ValidationErrors{{Field: field, Reason: reason}}
}
