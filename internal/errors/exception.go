package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e *Exception) Error() string {
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Cause
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Classify passes already-classified errors through unchanged and wraps
// everything else as an operation failure, so callers above the service
// boundary only ever see the closed taxonomy.
func Classify(err error) error {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return err
	}
	return NewOperationFailure(err)
}
