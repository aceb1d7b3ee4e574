package errors

import "net/http"

// Reserved for duplicate-key conflicts; no current operation raises it,
// but the translator supports it so conflict detection can be added
// without touching the transport layer.
func NewAlreadyExists(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}
