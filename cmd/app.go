package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/TahaKotwal12/247-gym/internal/config"
	"github.com/TahaKotwal12/247-gym/internal/domain"
	catalogStorage "github.com/TahaKotwal12/247-gym/internal/infra/storage/catalog"
	slotRepo "github.com/TahaKotwal12/247-gym/internal/infra/storage/slot"
	"github.com/TahaKotwal12/247-gym/internal/integrations/analytics"
	catalogService "github.com/TahaKotwal12/247-gym/internal/service/catalog"
	createBookingUC "github.com/TahaKotwal12/247-gym/internal/usecase/create_booking"
	getScheduleUC "github.com/TahaKotwal12/247-gym/internal/usecase/get_schedule"
	sendContactUC "github.com/TahaKotwal12/247-gym/internal/usecase/send_contact"
	"github.com/TahaKotwal12/247-gym/pkg/dbmetrics"
	"github.com/TahaKotwal12/247-gym/pkg/logger"
	"github.com/TahaKotwal12/247-gym/pkg/metrics"
)

// slotStore общий контракт in-memory и PostgreSQL репозиториев слотов
type slotStore interface {
	GetByID(ctx context.Context, id string) (*domain.ScheduleSlot, error)
	List(ctx context.Context, day *domain.Weekday) ([]*domain.ScheduleSlot, error)
	IncrementBooked(ctx context.Context, id string) (*domain.ScheduleSlot, error)
}

// nopRecorder используется, когда метрики выключены
type nopRecorder struct{}

func (nopRecorder) RecordBookingOutcome(string) {}
func (nopRecorder) RecordContactOutcome(string) {}

type outcomeRecorder interface {
	RecordBookingOutcome(outcome string)
	RecordContactOutcome(outcome string)
}

// app собранные зависимости, общие для HTTP сервера и CLI команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	catalog   *catalogService.Service
	tracker   *analytics.Client
	booking   *createBookingUC.UseCase
	contact   *sendContactUC.UseCase
	schedule  *getScheduleUC.UseCase
	closeFunc []func()
}

func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	// 1. Каталог
	cat, err := catalogStorage.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	log.Info("Catalog loaded: trainers=%d, classes=%d, plans=%d, slots=%d",
		len(cat.Trainers), len(cat.Classes), len(cat.Plans), len(cat.Schedule))

	// 2. Метрики
	var recorder outcomeRecorder = nopRecorder{}
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		recorder = a.metrics
	}

	// 3. Хранилище слотов
	slots, err := a.openSlotStore(ctx, cat)
	if err != nil {
		a.Close()
		return nil, err
	}

	// 4. Аналитика
	sinks := []analytics.Sink{analytics.NewLogSink(log)}
	if a.metrics != nil {
		sinks = append(sinks, analytics.NewMetricsSink(a.metrics))
	}
	if cfg.Analytics.NATS.Enabled {
		natsSink, err := analytics.NewNATSSink(
			cfg.Analytics.NATS.URL,
			cfg.Analytics.NATS.Subject,
			time.Duration(cfg.Analytics.NATS.Timeout)*time.Second,
			log,
		)
		if err != nil {
			a.Close()
			return nil, err
		}
		sinks = append(sinks, natsSink)
		a.closeFunc = append(a.closeFunc, func() {
			if err := natsSink.Close(); err != nil {
				log.Warn("Failed to drain NATS connection: %v", err)
			}
		})
		log.Info("Analytics events published to NATS subject=%s", cfg.Analytics.NATS.Subject)
	}
	if cfg.Analytics.HTTP.Enabled {
		sinks = append(sinks, analytics.NewHTTPSink(
			cfg.Analytics.HTTP.URL,
			time.Duration(cfg.Analytics.HTTP.Timeout)*time.Second,
			log,
		))
		log.Info("Analytics events forwarded to %s", cfg.Analytics.HTTP.URL)
	}
	a.tracker = analytics.NewClient(log, sinks...)
	// Закрывается раньше sink'ов: сначала доотправляем очередь
	a.closeFunc = append(a.closeFunc, a.tracker.Close)

	// 5. Сервисы и use cases
	sim := cfg.Simulator.Domain()
	a.catalog = catalogService.NewService(cat, sim.Delay, log)
	a.booking = createBookingUC.NewUseCase(slots, a.catalog, a.tracker, recorder, sim, log)
	a.contact = sendContactUC.NewUseCase(a.tracker, recorder, sim.Delay, log)
	a.schedule = getScheduleUC.NewUseCase(slots, a.catalog, sim.Delay, log)

	log.Info("Simulator: delay=%s, failure_rate=%.2f, write_back=%t", sim.Delay, sim.FailureRate, sim.WriteBack)

	return a, nil
}

func (a *app) openSlotStore(ctx context.Context, cat *domain.Catalog) (slotStore, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.log.Info("Using in-memory slot storage")
		return slotRepo.NewMemoryRepository(cat.Schedule), nil
	}

	db, err := sql.Open("postgres", a.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.closeFunc = append(a.closeFunc, func() { _ = db.Close() })

	// Настраиваем connection pool
	db.SetMaxOpenConns(a.cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(a.cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(a.cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	a.log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.DBName)

	var repo *slotRepo.Repository
	if a.metrics != nil {
		stopCh := make(chan struct{})
		a.closeFunc = append(a.closeFunc, func() { close(stopCh) })
		repo = slotRepo.NewRepository(dbmetrics.WrapWithDefault(db, a.metrics, stopCh))
		a.log.Info("Database metrics collection started")
	} else {
		repo = slotRepo.NewRepository(db)
	}

	if a.cfg.Storage.Seed {
		if err := repo.Seed(ctx, cat.Schedule); err != nil {
			return nil, err
		}
		a.log.Info("Seeded %d schedule slots", len(cat.Schedule))
	}

	return repo, nil
}

// Close освобождает ресурсы в обратном порядке
func (a *app) Close() {
	for i := len(a.closeFunc) - 1; i >= 0; i-- {
		a.closeFunc[i]()
	}
	a.closeFunc = nil
}

// bootstrap загружает конфигурацию, создает логгер и собирает app
func bootstrap(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	a.closeFunc = append([]func(){func() { _ = log.Close() }}, a.closeFunc...)

	return a, nil
}
