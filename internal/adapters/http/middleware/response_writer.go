// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Authenticate → Handler
//
// Each middleware is a func(http.Handler) http.Handler registered on the chi
// router; Authenticate applies to /api/v1 only. Timeout is chi's.
package middleware

import (
	"encoding/json"
	"net/http"
)

// maxErrorSample bounds how much of an error response body is retained for
// the completion log line.
const maxErrorSample = 1024

// responseWriter wraps http.ResponseWriter to capture the status code, the
// bytes written and, for 4xx/5xx responses, the start of the body. It is used
// by recovery, otel, and logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
	errSample     []byte
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader captures the status code and delegates to the underlying writer.
// Only the first call takes effect; subsequent calls are ignored.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write delegates to the underlying writer, triggering an implicit 200 OK if
// WriteHeader has not been called.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.headerWritten = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	if rw.statusCode >= http.StatusBadRequest && len(rw.errSample) < maxErrorSample {
		keep := min(n, maxErrorSample-len(rw.errSample))
		rw.errSample = append(rw.errSample, b[:keep]...)
	}
	return n, err
}

// problemDetail returns the "detail" member of a captured problem+json
// error body, or "" when the response was not an error or the sample is
// not a complete problem document.
func (rw *responseWriter) problemDetail() string {
	if len(rw.errSample) == 0 {
		return ""
	}
	var p struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rw.errSample, &p); err != nil {
		return ""
	}
	return p.Detail
}

// Unwrap returns the underlying http.ResponseWriter so that
// http.ResponseController and type assertions (http.Flusher, http.Hijacker)
// work through the wrapper.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
