package create_booking

import "errors"

var (
	// ErrCanceled возвращается, когда контекст отменен во время имитации задержки
	ErrCanceled = errors.New("create_booking: request canceled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
