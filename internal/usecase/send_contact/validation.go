package send_contact

import (
	"strings"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

func validateRequest(req *Request) *Response {
	if !domain.IsValidEmail(req.Email) {
		return &Response{Outcome: domain.OutcomeValidationError, Message: domain.MsgInvalidEmail}
	}

	for _, field := range []string{req.Name, req.Subject, req.Message} {
		if strings.TrimSpace(field) == "" {
			return &Response{Outcome: domain.OutcomeValidationError, Message: domain.MsgMissingFields}
		}
	}

	return nil
}
