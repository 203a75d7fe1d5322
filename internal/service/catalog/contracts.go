package catalog

import (
	"context"
	"time"
)

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
