package support

import (
	"errors"

	"support-desk-backend/internal/validate"
)

type ErrorCode string

const (
	ErrorCodeValidation  ErrorCode = "validation_error"
	ErrorCodeNotFound    ErrorCode = "not_found"
	ErrorCodeUnavailable ErrorCode = "unavailable"
	ErrorCodeInternal    ErrorCode = "internal_error"
)

type Error struct {
	Code    ErrorCode
	Message string
	Fields  []validate.FieldError
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func notFound(what string) *Error {
	return newError(ErrorCodeNotFound, what+" not found", nil)
}

// checkRequest validates req and converts violations into a validation Error.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verr *validate.Error
	if errors.As(err, &verr) {
		return &Error{
			Code:    ErrorCodeValidation,
			Message: "invalid request",
			Fields:  verr.Fields,
			Err:     err,
		}
	}
	return newError(ErrorCodeInternal, "validate request", err)
}
