package get_schedule

import "errors"

var (
	// ErrInvalidDay возвращается при неизвестном дне недели
	ErrInvalidDay = errors.New("get_schedule: invalid day of week")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("get_schedule: slot not found")

	// ErrCanceled возвращается, когда контекст отменен во время имитации задержки
	ErrCanceled = errors.New("get_schedule: request canceled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)
