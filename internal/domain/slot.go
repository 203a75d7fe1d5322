package domain

import (
	"strings"

	"github.com/TahaKotwal12/247-gym/pkg/types"
)

// Weekday день недели в расписании ("Monday" ... "Sunday")
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays дни недели в порядке отображения расписания
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday возвращает день недели без учета регистра
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, true
		}
	}
	return "", false
}

// Index порядковый номер дня (Monday = 0), -1 для неизвестного дня
func (d Weekday) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// ScheduleSlot represents one bookable occurrence of a class
type ScheduleSlot struct {
	ID        string
	ClassID   string
	TrainerID string
	Day       Weekday
	Time      types.TimeString
	Capacity  int
	Booked    int // 0 <= Booked <= Capacity
}

// IsFull returns true if the slot has no available spots
func (s *ScheduleSlot) IsFull() bool {
	return s.Booked >= s.Capacity
}

// AvailableSpots returns the number of free spots, never negative
func (s *ScheduleSlot) AvailableSpots() int {
	if s.Booked >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Booked
}

// Before задает порядок расписания: по дню недели, затем по времени, затем по ID
func (s *ScheduleSlot) Before(other *ScheduleSlot) bool {
	if di, dj := s.Day.Index(), other.Day.Index(); di != dj {
		return di < dj
	}
	if s.Time != other.Time {
		return s.Time.IsBefore(other.Time)
	}
	return s.ID < other.ID
}
