package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/TahaKotwal12/247-gym/internal/domain"
	"github.com/TahaKotwal12/247-gym/pkg/clock"
)

// Service сервис для чтения статического каталога (тренеры, занятия, тарифы)
type Service struct {
	catalog *domain.Catalog
	delay   time.Duration
	sleeper Sleeper
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog *domain.Catalog, delay time.Duration, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		delay:   delay,
		sleeper: clock.Real{},
		logger:  logger,
	}
}

// Trainers возвращает список тренеров после искусственной задержки
func (s *Service) Trainers(ctx context.Context) ([]domain.Trainer, error) {
	if err := s.sleeper.Sleep(ctx, s.delay); err != nil {
		s.logger.Warn("Trainers: canceled during delay: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	result := make([]domain.Trainer, len(s.catalog.Trainers))
	copy(result, s.catalog.Trainers)
	return result, nil
}

func (s *Service) Classes(_ context.Context) ([]domain.Class, error) {
	result := make([]domain.Class, len(s.catalog.Classes))
	copy(result, s.catalog.Classes)
	return result, nil
}

func (s *Service) Plans(_ context.Context) ([]domain.MembershipPlan, error) {
	result := make([]domain.MembershipPlan, len(s.catalog.Plans))
	copy(result, s.catalog.Plans)
	return result, nil
}

// Plan возвращает тариф по ID
func (s *Service) Plan(_ context.Context, id string) (*domain.MembershipPlan, error) {
	plan, ok := s.catalog.PlanByID(id)
	if !ok {
		s.logger.Warn("Plan: plan id=%s not found", id)
		return nil, ErrPlanNotFound
	}
	cp := *plan
	return &cp, nil
}

// ClassName возвращает название занятия или "Unknown Class"
func (s *Service) ClassName(classID string) string {
	if class, ok := s.catalog.ClassByID(classID); ok {
		return class.Name
	}
	return domain.UnknownClassName
}

// TrainerName возвращает имя тренера или "Unknown Trainer"
func (s *Service) TrainerName(trainerID string) string {
	if trainer, ok := s.catalog.TrainerByID(trainerID); ok {
		return trainer.Name
	}
	return domain.UnknownTrainerName
}
