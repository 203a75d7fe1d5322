package create_booking

import (
	"strings"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

// validateRequest проверяет email и обязательные поля
// Возвращает nil, если запрос корректен
func validateRequest(req *Request) *Response {
	if !domain.IsValidEmail(req.Email) {
		return failure(domain.OutcomeValidationError, domain.MsgInvalidEmail)
	}

	if strings.TrimSpace(req.Name) == "" {
		return failure(domain.OutcomeValidationError, domain.MsgMissingFields)
	}

	return nil
}
