package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
)

// HTTPCollector получатель HTTP метрик (реализуется pkg/metrics.Metrics)
type HTTPCollector interface {
	ObserveHTTPRequest(method, path, status string, duration time.Duration)
}

// MetricsMiddleware считает запросы и их длительность
// В метку path попадает шаблон маршрута, а не фактический URL
func MetricsMiddleware(collector HTTPCollector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			collector.ObserveHTTPRequest(r.Method, routeTemplate(r), strconv.Itoa(statusOf(ww)), time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
