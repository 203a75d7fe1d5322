package get_schedule

import (
	"context"
	"time"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

// SlotRepository интерфейс хранилища слотов расписания
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ScheduleSlot, error)
	List(ctx context.Context, day *domain.Weekday) ([]*domain.ScheduleSlot, error)
}

// CatalogLookup разрешает названия занятий и имена тренеров
type CatalogLookup interface {
	ClassName(classID string) string
	TrainerName(trainerID string) string
}

// Sleeper имитация сетевой задержки
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
