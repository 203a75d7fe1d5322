package send_contact

import "errors"

// ErrCanceled возвращается, когда контекст отменен во время имитации задержки
var ErrCanceled = errors.New("send_contact: request canceled")
