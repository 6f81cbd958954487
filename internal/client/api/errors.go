package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the server does not know the requested record
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the access token is missing or expired
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError описывает неуспешный ответ сервера
type StatusError struct {
	Message    string
	StatusCode int
}

// Error implements error
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap сопоставляет код ответа с sentinel ошибками
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return nil
	}
}
