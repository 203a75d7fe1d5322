package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TahaKotwal12/247-gym/pkg/logger"
)

type observation struct {
	method, path, status string
}

type fakeCollector struct {
	observed []observation
}

func (c *fakeCollector) ObserveHTTPRequest(method, path, status string, _ time.Duration) {
	c.observed = append(c.observed, observation{method: method, path: path, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	collector := &fakeCollector{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector))
	r.HandleFunc("/api/v1/schedule/{slotId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/schedule/slot-7", nil))

	require.Len(t, collector.observed, 1)
	assert.Equal(t, observation{method: "GET", path: "/api/v1/schedule/{slotId}", status: "404"}, collector.observed[0])
}

func TestMetricsMiddleware_RecordsRecoveredPanic(t *testing.T) {
	collector := &fakeCollector{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector), Recover(logger.Nop()))
	r.HandleFunc("/api/v1/book", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/book", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, collector.observed, 1)
	assert.Equal(t, observation{method: "POST", path: "/api/v1/book", status: "500"}, collector.observed[0])
}

func TestMetricsMiddleware_ImplicitOK(t *testing.T) {
	collector := &fakeCollector{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector))
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.HandleFunc("/empty", func(http.ResponseWriter, *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/empty", nil))

	require.Len(t, collector.observed, 2)
	assert.Equal(t, "200", collector.observed[0].status)
	assert.Equal(t, "200", collector.observed[1].status)
}

func TestWrappedWriter_KeepsFlusher(t *testing.T) {
	var flushed bool
	r := mux.NewRouter()
	r.Use(AccessLog(logger.Nop()), MetricsMiddleware(&fakeCollector{}))
	r.HandleFunc("/stream", func(w http.ResponseWriter, _ *http.Request) {
		f, ok := w.(http.Flusher)
		if ok {
			f.Flush()
			flushed = true
		}
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.True(t, flushed)
	assert.True(t, rec.Flushed)
}

func TestRecover(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Recover(logger.Nop()))
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"An error occurred. Please try again."}`, rec.Body.String())
}

func TestAccessLog_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", nil)

	r := mux.NewRouter()
	r.Use(chimiddleware.RequestID, AccessLog(log))
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "GET /health - status=200")
	assert.Contains(t, buf.String(), "request_id=req-42")
}
