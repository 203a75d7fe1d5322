package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	bookClassHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/book_class"
	getCatalogHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/get_catalog"
	getScheduleHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/get_schedule"
	healthHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/health"
	sendContactHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/send_contact"
	trackEventHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/track_event"
	"github.com/TahaKotwal12/247-gym/internal/api/middleware"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func serve(ctx context.Context, configPath string) error {
	a, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	log := a.log
	cfg := a.cfg
	log.Info("Starting 247 Gym API...")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      a.router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// router настраивает маршруты и middleware
func (a *app) router() *mux.Router {
	log := a.log

	bookClass := bookClassHandler.NewHandler(a.booking, log)
	sendContact := sendContactHandler.NewHandler(a.contact, log)
	getSchedule := getScheduleHandler.NewHandler(a.schedule, log)
	getCatalog := getCatalogHandler.NewHandler(a.catalog, log)
	trackEvent := trackEventHandler.NewHandler(a.tracker, a.catalog, log)
	health := healthHandler.NewHandler(a.cfg.Metrics.ServiceName)

	r := mux.NewRouter()
	r.Use(chimiddleware.RequestID, chimiddleware.RealIP, middleware.AccessLog(log))

	// Метрики снаружи Recover, чтобы паника попала в счетчик как 500
	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(a.cfg.Metrics.Path, a.metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", a.cfg.Metrics.Path)
	}
	r.Use(middleware.Recover(log))

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Симуляция транзакций
	api.HandleFunc("/book", bookClass.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", sendContact.Handle).Methods(http.MethodPost)

	// Расписание и каталог
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{slotId}", getSchedule.HandleSlot).Methods(http.MethodGet)
	api.HandleFunc("/trainers", getCatalog.HandleTrainers).Methods(http.MethodGet)
	api.HandleFunc("/classes", getCatalog.HandleClasses).Methods(http.MethodGet)
	api.HandleFunc("/plans", getCatalog.HandlePlans).Methods(http.MethodGet)

	// Аналитика
	api.HandleFunc("/analytics/events", trackEvent.Handle).Methods(http.MethodPost)

	return r
}
