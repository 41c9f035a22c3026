package logging

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/halcyonops/go-observation/tracing"
)

// httpAccessHandler logs http access lines through the facade.
type httpAccessHandler struct {
	next http.Handler
}

// NewHTTPAccessHandler constructs a new middleware instance for emitting
// http access logs. Each request produces one info/networking access line
// after it is served, plus the debug request detail from LogRequest when
// the facade threshold is exactly debug. The facade is taken from the
// request context (see NewRequestLoggerHandler).
func NewHTTPAccessHandler(next http.Handler) http.Handler {
	return &httpAccessHandler{next: next}
}

// ServeHTTP implements http.Handler interface
func (h *httpAccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := From(r.Context())
	if log == nil {
		h.next.ServeHTTP(w, r)
		return
	}
	log.LogRequest(r)

	rw := newHTTPResponseWriter(w)
	start := time.Now()
	h.next.ServeHTTP(rw, r)
	duration := time.Since(start)

	line := fmt.Sprintf("%s %s -> %d (%dB in %.3fms)",
		r.Method, r.URL.Path, rw.StatusCode(), rw.ResponseBytes(), duration.Seconds()*1000)
	if requestID := tracing.RequestIDFrom(r.Context()); requestID != "" {
		line += " [requestId=" + requestID + "]"
	}
	log.Log(InfoLevel, CategoryNetworking, line)
}

type requestLoggerHandler struct {
	handler      http.Handler // the next handler in the chain
	parentLogger *Logger
}

// NewRequestLoggerHandler creates a middleware instance that adds the
// logger to the http request context, where downstream handlers and the
// access log middleware retrieve it with From. If parentLogger is nil
// then the global logger will be used.
func NewRequestLoggerHandler(parentLogger *Logger, handler http.Handler) http.Handler {
	return &requestLoggerHandler{
		handler:      handler,
		parentLogger: parentLogger,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *requestLoggerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.parentLogger != nil {
		r = r.WithContext(NewContext(r.Context(), h.parentLogger))
	}
	h.handler.ServeHTTP(w, r)
}

type panicHandler struct {
	next http.Handler
}

// NewPanicHandler creates a middleware instance that recovers panics,
// logs them at error/errorHandling through the request logger (or the
// global logger), and writes an internal server error response.
func NewPanicHandler(next http.Handler) http.Handler {
	return &panicHandler{next: next}
}

func (p *panicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rerr := recover(); rerr != nil {
			if log := From(r.Context()); log != nil {
				log.Log(ErrorLevel, CategoryErrorHandling,
					fmt.Sprintf("Handled panic: %v\n%s", panicError(rerr), debug.Stack()))
			}
			w.Header().Add("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"code": 500, "message": "Internal server error"}`))
		}
	}()

	p.next.ServeHTTP(w, r)
}

// panicError converts the recover arg rerr to an error.
func panicError(rerr interface{}) error {
	switch rerr := rerr.(type) {
	case string:
		return errors.New(rerr)
	case error:
		return rerr
	default:
		return fmt.Errorf("unknown panic '%v' of type %T", rerr, rerr)
	}
}
