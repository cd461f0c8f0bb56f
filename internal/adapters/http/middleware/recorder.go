// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs them on the chi router in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Route-aware middleware (Recovery, Logging, OpenTelemetry) reads the chi
// route pattern and the form session ID after the request has been routed,
// so they must run inside the router rather than around it.
package middleware

import "net/http"

// recorder wraps http.ResponseWriter to capture the status code and body
// size of a response. Recovery, OpenTelemetry and Logging share one recorder
// per request.
type recorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

// record returns w itself when it already is a recorder, otherwise a new
// recorder around it.
func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code written. Later calls are
// dropped, as net/http would drop them.
func (rec *recorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Flush sends buffered data to the client when the underlying writer
// supports it.
func (rec *recorder) Flush() {
	rec.wroteHeader = true
	_ = http.NewResponseController(rec.ResponseWriter).Flush()
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rec *recorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
