package analytics

import "errors"

var (
	// ErrInvalidEvent возвращается для события без названия
	ErrInvalidEvent = errors.New("analytics: invalid event")

	// ErrPublish возвращается при ошибке отправки события
	ErrPublish = errors.New("analytics: failed to publish event")

	// ErrRejected возвращается, когда коллектор отклонил событие (4xx)
	ErrRejected = errors.New("analytics: event rejected by collector")

	// ErrConnect возвращается, когда не удалось подключиться к NATS
	ErrConnect = errors.New("analytics: failed to connect")

	// ErrClosed возвращается при отправке события после Close
	ErrClosed = errors.New("analytics: client is closed")
)
