package get_catalog

import (
	"context"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

type CatalogService interface {
	Trainers(ctx context.Context) ([]domain.Trainer, error)
	Classes(ctx context.Context) ([]domain.Class, error)
	Plans(ctx context.Context) ([]domain.MembershipPlan, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
