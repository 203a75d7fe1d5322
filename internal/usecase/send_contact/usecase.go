package send_contact

import (
	"context"
	"fmt"
	"time"

	"github.com/TahaKotwal12/247-gym/internal/domain"
	"github.com/TahaKotwal12/247-gym/pkg/clock"
)

// UseCase use case для отправки сообщения через контактную форму
// Сообщение никуда не сохраняется, фиксируется только событие аналитики
type UseCase struct {
	tracker  AnalyticsTracker
	recorder OutcomeRecorder
	delay    time.Duration
	sleeper  Sleeper
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tracker AnalyticsTracker, recorder OutcomeRecorder, delay time.Duration, logger Logger) *UseCase {
	return &UseCase{
		tracker:  tracker,
		recorder: recorder,
		delay:    delay,
		sleeper:  clock.Real{},
		logger:   logger,
	}
}

// Execute выполняет имитацию отправки сообщения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SendContact: email=%s, subject=%q", req.Email, req.Subject)

	// 1. Имитация сетевой задержки
	if err := uc.sleeper.Sleep(ctx, uc.delay); err != nil {
		uc.logger.Warn("SendContact: canceled during delay: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	// 2. Валидация
	if resp := validateRequest(req); resp != nil {
		uc.logger.Warn("SendContact: validation failed: %s", resp.Message)
		uc.recorder.RecordContactOutcome(string(resp.Outcome))
		return resp, nil
	}

	// 3. Успех
	uc.tracker.TrackContactSubmit(ctx)
	uc.recorder.RecordContactOutcome(string(domain.OutcomeSuccess))

	return &Response{
		Success: true,
		Outcome: domain.OutcomeSuccess,
		Message: domain.MsgContactSucceeded,
	}, nil
}
