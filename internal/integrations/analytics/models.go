package analytics

import "time"

// Названия событий
const (
	EventPageView         = "Page View"
	EventClassBooked      = "Class Booked"
	EventContactSubmitted = "Contact Form Submitted"
	EventMembershipSelect = "Membership Plan Selected"

	// EventOther метка метрики для всех остальных названий
	EventOther = "other"
)

// Event аналитическое событие
type Event struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	OccurredAt time.Time              `json:"occurredAt"`
}
