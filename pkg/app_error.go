package pkg

import "net/http"

// AppError is the error envelope returned by the HTTP handlers.
//
// Cause is never serialized; it is kept for logging only.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Cause      error
	Fields     map[string]string
}

// HTTPError is the JSON body written for 4xx/5xx responses.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, cause error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Cause: cause}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError reports per-field validation failures, keyed by JSON field name.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: "Invalid request payload", HTTPStatus: http.StatusBadRequest, Fields: fields}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
