package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/TahaKotwal12/247-gym/internal/domain"
	slotRepo "github.com/TahaKotwal12/247-gym/internal/infra/storage/slot"
	"github.com/TahaKotwal12/247-gym/pkg/clock"
)

// UseCase use case для бронирования занятия
type UseCase struct {
	slotRepo SlotRepository
	classes  ClassNamer
	tracker  AnalyticsTracker
	recorder OutcomeRecorder
	config   domain.SimulatorConfig
	clock    Clock
	random   RandomSource
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	classes ClassNamer,
	tracker AnalyticsTracker,
	recorder OutcomeRecorder,
	config domain.SimulatorConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		classes:  classes,
		tracker:  tracker,
		recorder: recorder,
		config:   config,
		clock:    clock.Real{},
		random:   GlobalRandom{},
		logger:   logger,
	}
}

// Execute выполняет имитацию бронирования
// Возвращает error только при отмене контекста или сбое хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%s, email=%s", req.SlotID, req.Email)

	// 1. Имитация сетевой задержки
	if err := uc.clock.Sleep(ctx, uc.config.Delay); err != nil {
		uc.logger.Warn("CreateBooking: canceled during delay: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	// 2. Валидация email и обязательных полей
	if resp := validateRequest(req); resp != nil {
		uc.logger.Warn("CreateBooking: validation failed: %s", resp.Message)
		return uc.finish(resp), nil
	}

	// 3. Получаем слот
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%s not found", req.SlotID)
			return uc.finish(failure(domain.OutcomeNotFound, domain.MsgInvalidSlot)), nil
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 4. Проверяем наличие мест
	if slot.IsFull() {
		uc.logger.Warn("CreateBooking: slot id=%s is full (%d/%d)", slot.ID, slot.Booked, slot.Capacity)
		return uc.finish(failure(domain.OutcomeCapacityError, domain.MsgSlotFullyBooked)), nil
	}

	// 5. Случайный отказ
	if uc.config.InjectsFailures() && uc.random.Float64() < uc.config.FailureRate {
		uc.logger.Warn("CreateBooking: injected failure for slot id=%s", slot.ID)
		return uc.finish(failure(domain.OutcomeCapacityError, domain.MsgSlotFullyBooked)), nil
	}

	// 6. Фиксируем место, если включена запись
	if uc.config.WriteBack {
		if _, err := uc.slotRepo.IncrementBooked(ctx, slot.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotFull) {
				uc.logger.Warn("CreateBooking: slot id=%s filled concurrently", slot.ID)
				return uc.finish(failure(domain.OutcomeCapacityError, domain.MsgSlotFullyBooked)), nil
			}
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return uc.finish(failure(domain.OutcomeNotFound, domain.MsgInvalidSlot)), nil
			}
			uc.logger.Error("CreateBooking: failed to increment slot id=%s: %v", slot.ID, err)
			return nil, fmt.Errorf("%w: failed to increment booked: %v", ErrInternal, err)
		}
	}

	// 7. Успех
	bookingID := newBookingID(uc.clock.Now(), uc.random)
	uc.tracker.TrackBooking(ctx, slot.ID, uc.classes.ClassName(slot.ClassID))

	uc.logger.Info("CreateBooking: booking id=%s created for slot id=%s", bookingID, slot.ID)

	return uc.finish(&Response{
		Success:   true,
		Outcome:   domain.OutcomeSuccess,
		Message:   domain.MsgBookingSucceeded,
		BookingID: bookingID,
	}), nil
}

func (uc *UseCase) finish(resp *Response) *Response {
	uc.recorder.RecordBookingOutcome(string(resp.Outcome))
	return resp
}
