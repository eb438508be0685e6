package testutil

import (
	"net/http"

	"curp/pkg/requestcontext"
)

// WithRequestID adds a request ID to the request context.
// This simulates what the RequestID middleware would do.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
