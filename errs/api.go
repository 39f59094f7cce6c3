package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common sentinel values.
var (
	ErrBadRequest   = errors.New("malformed request")
	ErrInternal     = errors.New("internal server error")
	ErrConflict     = errors.New("resource conflict")
	ErrPrecondition = errors.New("precondition not met")
)

// ApiErr is the error type every request boundary understands. The
// Responder maps it to a status code and the uniform error JSON shape;
// anything that is not an *ApiErr is treated as an unexpected internal
// error.
type ApiErr struct {
	StatusCode int
	err        error
	Details    string // additional context for the client
	Field      string // offending field, for validation errors
	Cause      error  // underlying cause, for logs
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns the message with the whole cause chain appended.
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			return fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		}
		return fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
	}
	return msg
}

// Unwrap exposes both the message error and the cause, so errors.Is
// reaches sentinels carried on either side.
func (e *ApiErr) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.err, e.Cause}
	}
	return []error{e.err}
}

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: errors.New(message)}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}

func NewConflictError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: errors.New(message)}
}

// NewPreconditionError covers requests that are well-formed but arrive
// before their prerequisite action, e.g. download before generation.
// The message is served verbatim; the sentinel travels as the cause.
func NewPreconditionError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message), Cause: ErrPrecondition}
}

func NewInternalErrorWithCause(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(message),
		Cause:      cause,
	}
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
