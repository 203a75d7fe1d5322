package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog логирует каждый запрос с request id из chi middleware.RequestID
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("%s %s - status=%d duration=%s request_id=%s remote=%s",
				r.Method, r.URL.Path, statusOf(ww), time.Since(start),
				chimiddleware.GetReqID(r.Context()), r.RemoteAddr)
		})
	}
}

// statusOf код ответа; если обработчик ничего не записал, net/http отдаст 200
func statusOf(ww chimiddleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
