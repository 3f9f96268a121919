package apierr

import (
	"errors"
	"fmt"
)

// ValidationError marks a precondition failure caught before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PermissionDenied marks an action the actor's role does not allow. It is a
// UX gate resolved locally, not a security boundary.
type PermissionDenied struct {
	Role   string
	Action string
}

func (e *PermissionDenied) Error() string {
	return fmt.Sprintf("role %q tidak diizinkan melakukan %s", e.Role, e.Action)
}

func NewPermissionDenied(role, action string) error {
	return &PermissionDenied{Role: role, Action: action}
}

// OperationFailed wraps a backend error envelope or a transport failure. The
// message is user-displayable; local state must be left unmodified by callers.
type OperationFailed struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *OperationFailed) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "operasi gagal"
}

func (e *OperationFailed) Unwrap() error {
	return e.Err
}

func NewOperationFailed(message string, statusCode int, err error) error {
	return &OperationFailed{Message: message, StatusCode: statusCode, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPermissionDenied(err error) bool {
	var pe *PermissionDenied
	return errors.As(err, &pe)
}

func IsOperationFailed(err error) bool {
	var oe *OperationFailed
	return errors.As(err, &oe)
}
