package get_schedule

import (
	"fmt"
	"strings"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

// parseDayFilter возвращает nil, если фильтр по дню не задан
func parseDayFilter(raw string) (*domain.Weekday, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	day, ok := domain.ParseWeekday(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, raw)
	}
	return &day, nil
}
