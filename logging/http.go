package logging

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

const (
	unknownMethod = "UNKNOWN"
	unknownURL    = "UNKNOWN_URL"

	requestPrefix  = "➡️ [REQUEST]"
	responsePrefix = "⬅️ [RESPONSE]"
)

// LogAPIRequest logs an outbound request as up to three debug/networking
// records: the request line, the headers if any are set, and the decoded
// body if showBody is true and the body is valid UTF-8. Request detail is
// considered too verbose for implicit debug-and-above reasoning: it is
// gated on the threshold being exactly debug, by strict equality rather
// than the priority inequality LogMessage uses.
//
// The body is recovered without consuming the request. A missing method
// or URL degrades to a placeholder; a non-text body is silently skipped.
func (l *Logger) LogAPIRequest(req *http.Request, showBody bool) {
	if l.minimum != DebugLevel {
		return
	}
	function, file, line := callSite(2)
	l.logAPIRequest(req, showBody, function, file, line)
}

// LogRequest is LogAPIRequest with body logging off.
func (l *Logger) LogRequest(req *http.Request) {
	if l.minimum != DebugLevel {
		return
	}
	function, file, line := callSite(2)
	l.logAPIRequest(req, false, function, file, line)
}

func (l *Logger) logAPIRequest(req *http.Request, showBody bool, function, file string, line int) {
	if l.minimum != DebugLevel {
		return
	}
	method, url := unknownMethod, unknownURL
	if req != nil {
		if req.Method != "" {
			method = req.Method
		}
		if req.URL != nil {
			url = req.URL.String()
		}
	}
	l.LogMessage(DebugLevel, CategoryNetworking,
		fmt.Sprintf("%s %s %s", requestPrefix, method, url), function, file, line)
	if req == nil {
		return
	}
	if len(req.Header) > 0 {
		l.LogMessage(DebugLevel, CategoryNetworking,
			fmt.Sprintf("Headers: %v", req.Header), function, file, line)
	}
	if showBody {
		if body, ok := requestBody(req); ok && utf8.Valid(body) {
			l.LogMessage(DebugLevel, CategoryNetworking, "Body: "+string(body), function, file, line)
		}
	}
}

// LogAPIResponse logs an inbound response as up to two debug/networking
// records: the status line for a non-nil response, and the decoded data
// if showData is true and the data is valid UTF-8. The strict
// exactly-debug gate of LogAPIRequest applies here too.
func (l *Logger) LogAPIResponse(resp *http.Response, data []byte, showData bool) {
	if l.minimum != DebugLevel {
		return
	}
	function, file, line := callSite(2)
	l.logAPIResponse(resp, data, showData, function, file, line)
}

// LogResponse is LogAPIResponse with data logging off.
func (l *Logger) LogResponse(resp *http.Response, data []byte) {
	if l.minimum != DebugLevel {
		return
	}
	function, file, line := callSite(2)
	l.logAPIResponse(resp, data, false, function, file, line)
}

func (l *Logger) logAPIResponse(resp *http.Response, data []byte, showData bool, function, file string, line int) {
	if l.minimum != DebugLevel {
		return
	}
	if resp != nil {
		l.LogMessage(DebugLevel, CategoryNetworking,
			fmt.Sprintf("%s %d", responsePrefix, resp.StatusCode), function, file, line)
	}
	if showData && len(data) > 0 && utf8.Valid(data) {
		l.LogMessage(DebugLevel, CategoryNetworking, "Response JSON: "+string(data), function, file, line)
	}
}

// requestBody returns a copy of the request body, leaving the request
// readable. GetBody is preferred; otherwise the body is drained and
// replaced with an equivalent reader.
func requestBody(req *http.Request) ([]byte, bool) {
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, false
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			return nil, false
		}
		return body, len(body) > 0
	}
	if req.Body == nil || req.Body == http.NoBody {
		return nil, false
	}
	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		// Keep the failure visible to the eventual send rather than
		// swapping in a silently truncated body.
		req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), errReader{err: err}))
		return nil, false
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, len(body) > 0
}
