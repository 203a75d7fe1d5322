package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleSlot_Capacity(t *testing.T) {
	tests := []struct {
		name      string
		slot      ScheduleSlot
		full      bool
		available int
	}{
		{name: "partially_booked", slot: ScheduleSlot{Capacity: 20, Booked: 12}, available: 8},
		{name: "empty", slot: ScheduleSlot{Capacity: 10}, available: 10},
		{name: "full", slot: ScheduleSlot{Capacity: 15, Booked: 15}, full: true, available: 0},
		{name: "zero_capacity", slot: ScheduleSlot{}, full: true, available: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.full, tt.slot.IsFull())
			assert.Equal(t, tt.available, tt.slot.AvailableSpots())
		})
	}
}

func TestScheduleSlot_Before(t *testing.T) {
	slots := []*ScheduleSlot{
		{ID: "c", Day: Wednesday, Time: "07:00"},
		{ID: "b", Day: Monday, Time: "18:00"},
		{ID: "a", Day: Monday, Time: "06:30"},
		{ID: "d", Day: Sunday, Time: "09:00"},
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })

	ids := make([]string, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday(" monday ")
	assert.True(t, ok)
	assert.Equal(t, Monday, d)

	_, ok = ParseWeekday("Funday")
	assert.False(t, ok)
}
