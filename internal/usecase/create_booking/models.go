package create_booking

import "github.com/TahaKotwal12/247-gym/internal/domain"

// Request модель запроса на бронирование занятия
type Request struct {
	SlotID string // ID слота расписания
	Name   string // Имя участника
	Email  string // Email участника
}

// Response результат бронирования
// Отказы (валидация, нет слота, нет мест) возвращаются здесь, а не через error
type Response struct {
	Success   bool
	Outcome   domain.Outcome
	Message   string
	BookingID string // заполнен только при успехе
}

func failure(outcome domain.Outcome, message string) *Response {
	return &Response{
		Success: false,
		Outcome: outcome,
		Message: message,
	}
}
