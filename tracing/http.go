package tracing

import (
	"net/http"

	"github.com/google/uuid"
)

type requestContextHandler struct {
	next http.Handler // the next handler in the chain
}

// NewRequestContextHandler creates a tracing request handler that extracts
// the request ID from the http request and adds it to the request context
// for use in logging and metrics. If the gateway did not supply the
// X-Request-ID header a new id is minted. RequestIDFrom extracts the value
// back out of context.
func NewRequestContextHandler(next http.Handler) http.Handler {
	return &requestContextHandler{
		next: next,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *requestContextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(XRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	r = r.WithContext(WithRequestID(r.Context(), requestID))

	h.next.ServeHTTP(w, r)
}
