package send_contact

import "github.com/TahaKotwal12/247-gym/internal/domain"

// Request сообщение из контактной формы
type Request struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Response результат отправки сообщения
type Response struct {
	Success bool
	Outcome domain.Outcome
	Message string
}
