package catalog

import (
	"errors"
	"net/http"
)

// Error classifies caller-correctable failures with the HTTP status they
// surface as. Anything not wrapped in an Error is treated as a server
// fault by the responder.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound reports a lookup miss on get, update, or single delete.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate id on create. The API contract surfaces
// this as a 400.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// BadRequest reports a malformed request body.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// AsError attempts to unwrap an error into a catalog Error.
func AsError(err error) (*Error, bool) {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}
