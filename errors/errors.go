package errors

import (
	"fmt"
	"net/http"
)

// Error carries an HTTP status alongside the message so handlers can map
// service failures onto responses without string matching.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

var (
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrNotFound            = New("resource not found", http.StatusNotFound)
	ErrConflict            = New("resource already exists", http.StatusConflict)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)
