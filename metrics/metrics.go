package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/halcyonops/go-observation/logging"
)

// NewEmitCounterHook returns a logging hook that counts emitted records,
// partitioned by severity and category. The counter is registered on the
// default prometheus registry; register a given namespace only once.
func NewEmitCounterHook(namespace string) logging.Hook {
	hook, _ := newEmitCounterHook(namespace, prometheus.DefaultRegisterer)
	return hook
}

func newEmitCounterHook(namespace string, reg prometheus.Registerer) (logging.Hook, *prometheus.CounterVec) {
	emitted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_records_emitted_total",
			Help:      "The count of log records emitted by the logging facade, partitioned by severity and category",
		},
		[]string{"severity", "category"})
	reg.MustRegister(emitted)
	return func(severity logging.Severity, category logging.Category) {
		emitted.WithLabelValues(severity.String(), category.String()).Inc()
	}, emitted
}

// Handler returns the prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
