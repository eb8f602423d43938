// Package observability provides request logging, tracing, and metrics
// middleware for the web service.
package observability

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
)

// RequestLogger writes one key=value line per request.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method,
				r.URL.Path,
				rec.Status(),
				rec.bytes,
				time.Since(started).Round(time.Microsecond),
				httpx.RequestIDFrom(r),
			)
		})
	}
}
