package book_class

import (
	createBooking "github.com/TahaKotwal12/247-gym/internal/usecase/create_booking"
)

// BookClassRequest HTTP request model
type BookClassRequest struct {
	SlotID string `json:"slotId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// BookClassResponse HTTP response model
type BookClassResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookClassRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		SlotID: r.SlotID,
		Name:   r.Name,
		Email:  r.Email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookClassResponse {
	return &BookClassResponse{
		Success:   resp.Success,
		Message:   resp.Message,
		BookingID: resp.BookingID,
	}
}
