package send_contact

import (
	"context"
	"time"
)

// AnalyticsTracker интерфейс клиента аналитики
type AnalyticsTracker interface {
	TrackContactSubmit(ctx context.Context)
}

// OutcomeRecorder интерфейс для учета исходов в метриках
type OutcomeRecorder interface {
	RecordContactOutcome(outcome string)
}

// Sleeper имитация задержки (для тестирования)
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
