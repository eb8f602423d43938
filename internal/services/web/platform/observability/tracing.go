package observability

import (
	"net/http"
	"strings"

	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/buildspace/internal/services/web"

// Tracing starts one server span per request. W3C trace context on the
// incoming request becomes the span parent. A nil provider uses the global one.
func Tracing(provider trace.TracerProvider) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tp := provider
			if tp == nil {
				tp = otel.GetTracerProvider()
			}
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tp.Tracer(tracerName).Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			traced := r.WithContext(ctx)
			next.ServeHTTP(rec, traced)

			status := rec.Status()
			if route := routeLabel(traced); route != unmatchedRoute {
				span.SetName(route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}

const unmatchedRoute = "unmatched"

// routeLabel returns the matched ServeMux pattern, which the mux records on
// the request it dispatches.
func routeLabel(r *http.Request) string {
	if r == nil {
		return unmatchedRoute
	}
	pattern := strings.TrimSpace(r.Pattern)
	if pattern == "" {
		return unmatchedRoute
	}
	return pattern
}
