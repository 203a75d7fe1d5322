package send_contact

import (
	sendContact "github.com/TahaKotwal12/247-gym/internal/usecase/send_contact"
)

// ContactRequest HTTP request model
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse HTTP response model
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (r *ContactRequest) ToUseCaseRequest() *sendContact.Request {
	return &sendContact.Request{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
