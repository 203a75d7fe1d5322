package get_schedule

import (
	"github.com/TahaKotwal12/247-gym/internal/domain"
	"github.com/TahaKotwal12/247-gym/pkg/types"
)

// Request модель запроса расписания
type Request struct {
	Day string // день недели, пустая строка - вся неделя
}

// Response модель ответа с расписанием
type Response struct {
	Slots []Slot        // все слоты по порядку: день недели, затем время
	Days  []DaySchedule // те же слоты, сгруппированные по дням
}

// DaySchedule слоты одного дня недели
type DaySchedule struct {
	Day   domain.Weekday
	Slots []Slot
}

// Slot модель слота расписания для отображения
type Slot struct {
	ID             string
	ClassID        string
	ClassName      string
	TrainerID      string
	TrainerName    string
	Day            domain.Weekday
	Time           types.TimeString
	Capacity       int
	Booked         int
	AvailableSpots int
	IsFull         bool
}
