package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsActive             *prometheus.GaugeVec
	httpRequestsDurationsHistogram *prometheus.HistogramVec
)

// RegisterHTTPMetrics registers the http metrics for observation on
// the local prometheus metrics endpoint.
func RegisterHTTPMetrics(namespace string) {
	httpRequestsActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_active",
			Help:      "The count of current active http requests, partitioned by method",
		},
		[]string{"method"})
	httpRequestsDurationsHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_requests_durations_histogram_seconds",
			Help:      "Http request latency distributions, partitioned by method, route pattern and statusCode",
			Buckets:   prometheus.DefBuckets},
		[]string{"method", "path", "statusCode"})

	prometheus.MustRegister(
		httpRequestsActive,
		httpRequestsDurationsHistogram)
}

// httpAccessHandler provides http middleware to observe
// http metrics
type httpAccessHandler struct {
	next http.Handler
}

// NewHTTPAccessHandler constructs a new middleware instance for observing
// http metrics. RegisterHTTPMetrics must be called before the first
// request is served.
func NewHTTPAccessHandler(next http.Handler) http.Handler {
	return &httpAccessHandler{next: next}
}

// ServeHTTP implements http.Handler interface
func (h *httpAccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	active := httpRequestsActive.WithLabelValues(r.Method)
	active.Inc()
	rw := newHTTPResponseWriter(w)
	start := time.Now()
	h.next.ServeHTTP(rw, r)
	duration := time.Since(start)
	active.Dec()

	httpRequestsDurationsHistogram.
		WithLabelValues(r.Method, routePattern(r), strconv.Itoa(rw.StatusCode())).
		Observe(duration.Seconds())
}

// routePattern returns the chi route pattern that served r, keeping label
// cardinality bounded on dynamic paths. The pattern is only known once
// the inner router has run, so it is read after the handler returns.
// Requests served outside a chi router fall back to the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
