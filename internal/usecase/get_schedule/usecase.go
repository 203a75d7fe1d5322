package get_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	slotRepo "github.com/TahaKotwal12/247-gym/internal/infra/storage/slot"
	"github.com/TahaKotwal12/247-gym/pkg/clock"
)

// UseCase use case для получения недельного расписания
type UseCase struct {
	slotRepo SlotRepository
	lookup   CatalogLookup
	delay    time.Duration
	sleeper  Sleeper
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, lookup CatalogLookup, delay time.Duration, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		lookup:   lookup,
		delay:    delay,
		sleeper:  clock.Real{},
		logger:   logger,
	}
}

// Execute возвращает расписание, опционально за один день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: day=%q", req.Day)

	// 1. Валидация фильтра
	day, err := parseDayFilter(req.Day)
	if err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Имитация сетевой задержки
	if err := uc.sleeper.Sleep(ctx, uc.delay); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	// 3. Получаем слоты
	slots, err := uc.slotRepo.List(ctx, day)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 4. Сортируем и собираем ответ
	sortSlots(slots)

	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, toSlot(s, uc.lookup))
	}

	uc.logger.Info("GetSchedule: found %d slots", len(result))

	return &Response{
		Slots: result,
		Days:  groupByDay(result),
	}, nil
}

// GetSlot возвращает один слот по ID
func (uc *UseCase) GetSlot(ctx context.Context, id string) (*Slot, error) {
	uc.logger.Info("GetSlot: id=%s", id)

	if err := uc.sleeper.Sleep(ctx, uc.delay); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	s, err := uc.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("GetSlot: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("GetSlot: failed to get slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	slot := toSlot(s, uc.lookup)
	return &slot, nil
}
