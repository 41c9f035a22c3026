package logging

import (
	"bytes"
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that logs the outbound request and
// the inbound response through the facade. This is for use with client
// frameworks where the http client is wrapped deep inside the framework.
// The facade's strict exactly-debug gate applies, so a Transport over a
// facade at info or above adds no records.
type Transport struct {
	// Base is the actual RoundTripper to use for the request. A nil
	// Base defaults to http.DefaultTransport.
	Base http.RoundTripper
	// Logger receives the request and response records. A nil Logger
	// defaults to the global logger.
	Logger *Logger
	// LogBodies enables the request body and response data records.
	LogBodies bool
}

// NewTransport creates a Transport over http.DefaultTransport.
func NewTransport(logger *Logger) *Transport {
	return &Transport{Logger: logger}
}

// RoundTrip implements the http.RoundTripper interface.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	log := t.logger()
	if log != nil {
		log.LogAPIRequest(req, t.LogBodies)
	}
	resp, err := t.base().RoundTrip(req)
	if log == nil {
		return resp, err
	}
	if err != nil {
		log.Log(ErrorLevel, CategoryNetworking, "request failed: "+err.Error())
		return resp, err
	}
	if t.LogBodies && resp.Body != nil && resp.Body != http.NoBody {
		data, rerr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if rerr != nil {
			// Replay what was read, then surface the read error to the
			// caller instead of a clean EOF over truncated data.
			resp.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), errReader{err: rerr}))
			log.LogAPIResponse(resp, nil, false)
			return resp, nil
		}
		resp.Body = io.NopCloser(bytes.NewReader(data))
		log.LogAPIResponse(resp, data, true)
		return resp, nil
	}
	log.LogAPIResponse(resp, nil, false)
	return resp, nil
}

// errReader yields err on every read. It preserves a body read failure
// across the replayed prefix bytes.
type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}

// base returns any custom transport or http.DefaultTransport as default.
func (t *Transport) base() http.RoundTripper {
	if t == nil || t.Base == nil {
		return http.DefaultTransport
	}
	return t.Base
}

func (t *Transport) logger() *Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return Global()
}
