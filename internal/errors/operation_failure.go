package errors

import "net/http"

// NewOperationFailure keeps the underlying cause for diagnostics but
// exposes only a generic message at the transport boundary.
func NewOperationFailure(cause error) *Exception {
	return &Exception{
		Message:    "operation failed",
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}
