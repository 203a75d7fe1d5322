package slot

import (
	"context"
	"sync"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

// MemoryRepository in-memory таблица слотов, заполняемая из каталога при старте
// Возвращает копии, поэтому вызывающий код не может изменить таблицу в обход IncrementBooked
type MemoryRepository struct {
	mu    sync.RWMutex
	slots map[string]*domain.ScheduleSlot
	order []string
}

// NewMemoryRepository создает репозиторий со снимком переданных слотов
func NewMemoryRepository(slots []domain.ScheduleSlot) *MemoryRepository {
	r := &MemoryRepository{
		slots: make(map[string]*domain.ScheduleSlot, len(slots)),
		order: make([]string, 0, len(slots)),
	}
	for i := range slots {
		s := slots[i]
		if _, exists := r.slots[s.ID]; !exists {
			r.order = append(r.order, s.ID)
		}
		r.slots[s.ID] = &s
	}
	return r
}

// GetByID получает слот по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.ScheduleSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

// List возвращает слоты в порядке загрузки, опционально только за указанный день
func (r *MemoryRepository) List(_ context.Context, day *domain.Weekday) ([]*domain.ScheduleSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.ScheduleSlot, 0, len(r.order))
	for _, id := range r.order {
		s := r.slots[id]
		if day != nil && s.Day != *day {
			continue
		}
		cp := *s
		result = append(result, &cp)
	}
	return result, nil
}

// IncrementBooked атомарно занимает одно место в слоте
func (r *MemoryRepository) IncrementBooked(_ context.Context, id string) (*domain.ScheduleSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	if s.IsFull() {
		return nil, ErrSlotFull
	}
	s.Booked++

	cp := *s
	return &cp, nil
}
