package get_schedule

import (
	"sort"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

// toSlot собирает модель слота с названиями из каталога
func toSlot(s *domain.ScheduleSlot, lookup CatalogLookup) Slot {
	return Slot{
		ID:             s.ID,
		ClassID:        s.ClassID,
		ClassName:      lookup.ClassName(s.ClassID),
		TrainerID:      s.TrainerID,
		TrainerName:    lookup.TrainerName(s.TrainerID),
		Day:            s.Day,
		Time:           s.Time,
		Capacity:       s.Capacity,
		Booked:         s.Booked,
		AvailableSpots: s.AvailableSpots(),
		IsFull:         s.IsFull(),
	}
}

// sortSlots упорядочивает слоты по дню недели, затем по времени
func sortSlots(slots []*domain.ScheduleSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	})
}

// groupByDay группирует упорядоченные слоты по дням
// Дни без слотов пропускаются
func groupByDay(slots []Slot) []DaySchedule {
	days := make([]DaySchedule, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		var daySlots []Slot
		for _, s := range slots {
			if s.Day == day {
				daySlots = append(daySlots, s)
			}
		}
		if len(daySlots) > 0 {
			days = append(days, DaySchedule{Day: day, Slots: daySlots})
		}
	}
	return days
}
