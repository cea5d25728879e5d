// Package httperr is the single translation point between raised
// failures and HTTP error responses.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/apriyandi/timbangan-api/internal/logger"
	"github.com/apriyandi/timbangan-api/internal/validation"
)

// Development controls whether error bodies carry a stack trace.
// Set once at startup from APP_ENV.
var Development bool

// Error is a domain failure with a fixed HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest returns a 400 domain error.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound returns a 404 domain error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Unauthorized returns a 401 domain error.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// body is the JSON error envelope:
// {statusCode, message, error, validation?, stack?}
type body struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	ErrorText  string            `json:"error"`
	Validation validation.Errors `json:"validation,omitempty"`
	Stack      string            `json:"stack,omitempty"`
}

// Write maps err to a status, JSON body and log entry. Validation
// errors become 400 with per-field detail, domain errors keep their
// status, anything else is a 500 with a generic message.
func Write(w http.ResponseWriter, err error) {
	b := body{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred! Please try again later.",
		ErrorText:  http.StatusText(http.StatusInternalServerError),
	}

	var vErrs validation.Errors
	var domainErr *Error

	switch {
	case errors.As(err, &vErrs):
		b.StatusCode = http.StatusBadRequest
		b.Message = "Invalid request body"
		b.ErrorText = http.StatusText(http.StatusBadRequest)
		b.Validation = vErrs
	case errors.As(err, &domainErr):
		b.StatusCode = domainErr.Status
		b.Message = domainErr.Message
		b.ErrorText = http.StatusText(domainErr.Status)
	default:
		logger.Log.Errorw("unexpected error", "err", err)
	}

	if Development {
		b.Stack = fmt.Sprintf("%v\n%s", err, debug.Stack())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(b.StatusCode)
	json.NewEncoder(w).Encode(b)
}
