package metrics

import (
	"net/http"
)

// Note, there is a duplicate copy of this in /logging/responsewriter.go.

// httpResponseWriter implements the http.ResponseWriter interface.
// It is used to capture the response status code.
type httpResponseWriter struct {
	w          http.ResponseWriter
	statusCode int
}

func newHTTPResponseWriter(w http.ResponseWriter) *httpResponseWriter {
	return &httpResponseWriter{w: w, statusCode: http.StatusOK}
}

// Implements http.ResponseWriter
func (r *httpResponseWriter) Write(b []byte) (int, error) {
	return r.w.Write(b)
}

// Implements http.ResponseWriter
func (r *httpResponseWriter) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.w.WriteHeader(statusCode)
}

// Implements http.ResponseWriter
func (r *httpResponseWriter) Header() http.Header {
	return r.w.Header()
}

func (r *httpResponseWriter) StatusCode() int {
	return r.statusCode
}
