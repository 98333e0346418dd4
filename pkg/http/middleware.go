package http

import (
	"net/http"
	"time"

	"github.com/aksops/aks-mcp-server/pkg/logging"
)

// loggingResponseWriter captures the first status code written so the
// request log can report it.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// RequestMiddleware logs each request with its status and duration.
// Health checks are frequent and uninteresting, so /healthz is not logged.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthEndpoint {
			next.ServeHTTP(w, r)
			return
		}

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(lrw, r)
		logging.Info("HTTP %s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
	})
}
