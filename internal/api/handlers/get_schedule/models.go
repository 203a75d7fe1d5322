package get_schedule

import (
	getSchedule "github.com/TahaKotwal12/247-gym/internal/usecase/get_schedule"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	ID             string `json:"id"`
	ClassID        string `json:"classId"`
	ClassName      string `json:"className"`
	TrainerID      string `json:"trainerId"`
	TrainerName    string `json:"trainerName"`
	Day            string `json:"day"`
	Time           string `json:"time"`
	Capacity       int    `json:"capacity"`
	Booked         int    `json:"booked"`
	AvailableSpots int    `json:"availableSpots"`
	IsFull         bool   `json:"isFull"`
}

// DayResponse слоты одного дня
type DayResponse struct {
	Day   string         `json:"day"`
	Slots []SlotResponse `json:"slots"`
}

// ScheduleResponse HTTP модель расписания
type ScheduleResponse struct {
	Slots []SlotResponse `json:"slots"`
	Days  []DayResponse  `json:"days"`
}

func FromUseCaseSlot(s *getSchedule.Slot) SlotResponse {
	return SlotResponse{
		ID:             s.ID,
		ClassID:        s.ClassID,
		ClassName:      s.ClassName,
		TrainerID:      s.TrainerID,
		TrainerName:    s.TrainerName,
		Day:            string(s.Day),
		Time:           s.Time.String(),
		Capacity:       s.Capacity,
		Booked:         s.Booked,
		AvailableSpots: s.AvailableSpots,
		IsFull:         s.IsFull,
	}
}

func fromUseCaseSlots(slots []getSchedule.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, FromUseCaseSlot(&slots[i]))
	}
	return result
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{Day: string(d.Day), Slots: fromUseCaseSlots(d.Slots)})
	}

	return &ScheduleResponse{
		Slots: fromUseCaseSlots(resp.Slots),
		Days:  days,
	}
}
