// Package tracing carries per-request identifiers on context for use in
// logging and metrics. It assigns each inbound http request an id, taken
// from the gateway header when present and minted otherwise.
package tracing
