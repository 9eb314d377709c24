package api

import "support-desk-backend/internal/validate"

// HTTPError is returned by endpoints to choose the response status. Message
// is sent to the client; ErrorLog is only logged.
type HTTPError struct {
	StatusCode int
	Message    string
	Fields     []validate.FieldError
	ErrorLog   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.ErrorLog
}

type ApiError struct {
	Error  string                `json:"message"`
	Fields []validate.FieldError `json:"fields,omitempty"`
}
