package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

// Tracing opens one span per request on the global tracer provider set up by
// the tracer platform package.
func Tracing(serviceName string) func(http.Handler) http.Handler {
	tracer := otel.Tracer(serviceName)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := r.Method + " " + r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				name = r.Method + " " + rctx.RoutePattern()
			}
			ctx, span := tracer.Start(r.Context(), name)
			defer span.End()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
