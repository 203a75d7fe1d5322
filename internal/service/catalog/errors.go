package catalog

import "errors"

var (
	// ErrPlanNotFound возвращается, когда тариф не найден
	ErrPlanNotFound = errors.New("catalog: plan not found")

	// ErrCanceled возвращается, когда контекст отменен во время имитации задержки
	ErrCanceled = errors.New("catalog: request canceled")
)
