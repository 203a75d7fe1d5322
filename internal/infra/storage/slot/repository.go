package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/TahaKotwal12/247-gym/internal/domain"
	"github.com/TahaKotwal12/247-gym/pkg/psqlbuilder"
)

const tableName = "schedule_slots"

var slotColumns = []string{
	"id",
	"class_id",
	"trainer_id",
	"day",
	"start_time",
	"capacity",
	"booked",
}

// Repository PostgreSQL-репозиторий слотов расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ScheduleSlot, error) {
	query, args, err := psqlbuilder.Select(slotColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// List получает все слоты, опционально только за указанный день
// Порядок дней недели задается на уровне use case
func (r *Repository) List(ctx context.Context, day *domain.Weekday) ([]*domain.ScheduleSlot, error) {
	selectBuilder := psqlbuilder.Select(slotColumns...).
		From(tableName).
		OrderBy("start_time ASC", "id ASC")

	if day != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day": string(*day)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.ScheduleSlot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// IncrementBooked занимает одно место условным UPDATE (booked < capacity),
// поэтому конкурентные бронирования не превышают вместимость
func (r *Repository) IncrementBooked(ctx context.Context, id string) (*domain.ScheduleSlot, error) {
	query, args, err := psqlbuilder.Update(tableName).
		Set("booked", squirrel.Expr("booked + 1")).
		Where(squirrel.Eq{"id": id}).
		Where("booked < capacity").
		Suffix("RETURNING id, class_id, trainer_id, day, start_time, capacity, booked").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: IncrementBooked - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// Ни одна строка не обновлена: слота нет или он заполнен
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrSlotFull
	}
	if err != nil {
		return nil, fmt.Errorf("%w: IncrementBooked - execute update: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Seed добавляет слоты из каталога, существующие строки не изменяются
func (r *Repository) Seed(ctx context.Context, slots []domain.ScheduleSlot) error {
	if len(slots) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(tableName).Columns(slotColumns...)
	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.ID, s.ClassID, s.TrainerID, string(s.Day), s.Time.String(), s.Capacity, s.Booked)
	}

	query, args, err := insertBuilder.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.ScheduleSlot, error) {
	var s domain.ScheduleSlot
	err := row.Scan(
		&s.ID,
		&s.ClassID,
		&s.TrainerID,
		&s.Day,
		&s.Time,
		&s.Capacity,
		&s.Booked,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
