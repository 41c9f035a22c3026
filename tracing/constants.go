package tracing

// Constants for standard key names
const (
	RequestIDKey = "requestId"
	XRequestID   = "X-Request-ID"
)
