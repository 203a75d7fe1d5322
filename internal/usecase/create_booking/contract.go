package create_booking

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

// SlotRepository интерфейс хранилища слотов расписания
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ScheduleSlot, error)
	IncrementBooked(ctx context.Context, id string) (*domain.ScheduleSlot, error)
}

// ClassNamer возвращает название занятия по ID
type ClassNamer interface {
	ClassName(classID string) string
}

// AnalyticsTracker интерфейс клиента аналитики
type AnalyticsTracker interface {
	TrackBooking(ctx context.Context, slotID, className string)
}

// OutcomeRecorder интерфейс для учета исходов бронирования в метриках
type OutcomeRecorder interface {
	RecordBookingOutcome(outcome string)
}

// Clock источник времени и задержки (для тестирования)
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// RandomSource источник случайных чисел (для тестирования)
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// GlobalRandom использует глобальный генератор math/rand/v2, безопасный для горутин
type GlobalRandom struct{}

// Float64 возвращает число из [0, 1); сравнивается с FailureRate
func (GlobalRandom) Float64() float64 {
	return rand.Float64()
}

// IntN возвращает число из [0, n); используется для суффикса booking id.
// Паникует при n <= 0, как и rand.IntN
func (GlobalRandom) IntN(n int) int {
	return rand.IntN(n)
}
