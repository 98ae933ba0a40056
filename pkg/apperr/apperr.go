// Package apperr holds the error kinds the service layer returns and the
// HTTP layer translates. Anything not wrapped in one of these types is
// treated as an internal error and its detail is hidden from clients
// outside development mode.
package apperr

import "fmt"

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one or more field-level failures.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError signals a missing record.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError signals a duplicate unique key.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// UpstreamAssetError signals a failure talking to the asset host. Call sites
// marked best-effort log it and continue; everywhere else it is fatal to the
// request.
type UpstreamAssetError struct {
	Op  string
	Err error
}

func (e *UpstreamAssetError) Error() string {
	return fmt.Sprintf("asset host %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamAssetError) Unwrap() error {
	return e.Err
}

func NewUpstream(op string, err error) *UpstreamAssetError {
	return &UpstreamAssetError{Op: op, Err: err}
}
