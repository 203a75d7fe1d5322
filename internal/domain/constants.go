package domain

import "time"

// Default simulator settings
const (
	DefaultArtificialDelay = 500 * time.Millisecond
	DefaultFailureRate     = 0.10
)

// Business validation constants
const (
	MinFailureRate  = 0.0
	MaxFailureRate  = 1.0
	MaxDelay        = 30 * time.Second
	BookingIDPrefix = "booking-"
)

// Сообщения для пользователя. Одинаковы для ранней (клиентской) и поздней валидации
const (
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgMissingFields    = "Please fill in all required fields."
	MsgInvalidSlot      = "Invalid class slot selected."
	MsgSlotFullyBooked  = "Sorry, this slot is fully booked. Please try another time."
	MsgBookingSucceeded = "Your class has been booked successfully!"
	MsgContactSucceeded = "Thank you for your message! We'll get back to you within 24 hours."
	MsgGenericError     = "An error occurred. Please try again."
)

// Outcome classifies the result of a simulated transaction
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeValidationError Outcome = "validation_error"
	OutcomeNotFound        Outcome = "not_found"
	OutcomeCapacityError   Outcome = "capacity_error"
)

// Подставляются, когда занятие или тренер слота отсутствуют в каталоге
const (
	UnknownClassName   = "Unknown Class"
	UnknownTrainerName = "Unknown Trainer"
)
