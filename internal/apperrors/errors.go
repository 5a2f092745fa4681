// Package apperrors defines the error taxonomy shared by services and
// handlers: NotFound for scoped ids that did not resolve, Validation for
// caller-supplied data violating a precondition. Storage errors propagate
// unwrapped to these sentinels and map to a generic 500.
package apperrors

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)
