package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TahaKotwal12/247-gym/internal/domain"
	"github.com/TahaKotwal12/247-gym/pkg/types"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Load загружает каталог из файла path, либо встроенный каталог, если path пустой
func Load(path string) (*domain.Catalog, error) {
	data := embeddedCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadCatalog, path, err)
		}
	}
	return Parse(data)
}

// Parse разбирает и валидирует YAML каталога
func Parse(data []byte) (*domain.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeCatalog, err)
	}

	catalog := &domain.Catalog{
		Trainers: make([]domain.Trainer, 0, len(file.Trainers)),
		Classes:  make([]domain.Class, 0, len(file.Classes)),
		Plans:    make([]domain.MembershipPlan, 0, len(file.Plans)),
		Schedule: make([]domain.ScheduleSlot, 0, len(file.Schedule)),
	}

	for _, t := range file.Trainers {
		catalog.Trainers = append(catalog.Trainers, domain.Trainer{
			ID:             t.ID,
			Name:           t.Name,
			Specialization: t.Specialization,
			Bio:            t.Bio,
			Image:          t.Image,
			Experience:     t.Experience,
			Certifications: t.Certifications,
		})
	}

	for _, c := range file.Classes {
		catalog.Classes = append(catalog.Classes, domain.Class{
			ID:              c.ID,
			Name:            c.Name,
			Description:     c.Description,
			DurationMinutes: c.Duration,
			Difficulty:      domain.Difficulty(c.Difficulty),
			Image:           c.Image,
			TrainerID:       c.TrainerID,
		})
	}

	for _, p := range file.Plans {
		catalog.Plans = append(catalog.Plans, domain.MembershipPlan{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Period:   domain.BillingPeriod(p.Period),
			Features: p.Features,
			Popular:  p.Popular,
		})
	}

	for _, s := range file.Schedule {
		slot, err := toDomainSlot(s)
		if err != nil {
			return nil, err
		}
		catalog.Schedule = append(catalog.Schedule, slot)
	}

	if err := validate(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}

func toDomainSlot(s slotRecord) (domain.ScheduleSlot, error) {
	day, ok := domain.ParseWeekday(s.Day)
	if !ok {
		return domain.ScheduleSlot{}, fmt.Errorf("%w: slot %q has unknown day %q", ErrInvalidCatalog, s.ID, s.Day)
	}

	startTime, err := types.NewTimeStringFromString(s.Time)
	if err != nil {
		return domain.ScheduleSlot{}, fmt.Errorf("%w: slot %q: %v", ErrInvalidCatalog, s.ID, err)
	}

	return domain.ScheduleSlot{
		ID:        s.ID,
		ClassID:   s.ClassID,
		TrainerID: s.TrainerID,
		Day:       day,
		Time:      startTime,
		Capacity:  s.Capacity,
		Booked:    s.Booked,
	}, nil
}

// validate проверяет ссылочную целостность и инварианты слотов
func validate(c *domain.Catalog) error {
	seen := make(map[string]struct{}, len(c.Schedule))

	for _, s := range c.Schedule {
		if s.ID == "" {
			return fmt.Errorf("%w: slot without id", ErrInvalidCatalog)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate slot id %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Capacity <= 0 {
			return fmt.Errorf("%w: slot %q capacity must be positive", ErrInvalidCatalog, s.ID)
		}
		if s.Booked < 0 || s.Booked > s.Capacity {
			return fmt.Errorf("%w: slot %q booked must be within [0, %d]", ErrInvalidCatalog, s.ID, s.Capacity)
		}
		if _, ok := c.ClassByID(s.ClassID); !ok {
			return fmt.Errorf("%w: slot %q references unknown class %q", ErrInvalidCatalog, s.ID, s.ClassID)
		}
		if _, ok := c.TrainerByID(s.TrainerID); !ok {
			return fmt.Errorf("%w: slot %q references unknown trainer %q", ErrInvalidCatalog, s.ID, s.TrainerID)
		}
	}

	return nil
}
