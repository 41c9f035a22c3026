// Package metrics observes the logging facade and http traffic with
// prometheus: a per-severity/per-category counter of emitted log records,
// and middleware for active request and latency metrics.
package metrics
