package clock

import (
	"context"
	"time"
)

// Real реальные часы для production
type Real struct{}

// Now возвращает текущее локальное время
func (Real) Now() time.Time {
	return time.Now()
}

// Sleep ждет d либо отмены контекста
func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
