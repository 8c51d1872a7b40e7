package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Repository репозиторий для работы с комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую комнату
// ID генерируется вызывающей стороной
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stay, err := stayValues(room.Stay)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeGuests, err)
	}

	values := map[string]interface{}{
		"id":                room.ID,
		"number":            room.Number,
		"type":              string(room.Type),
		"status":            string(room.Status),
		"hourly_first":      room.Pricing.HourlyFirst,
		"hourly_second":     room.Pricing.HourlySecond,
		"hourly_additional": room.Pricing.HourlyAdditional,
		"daily_rate":        room.Pricing.DailyRate,
		"monthly_rate":      room.Pricing.MonthlyRate,
	}
	for k, v := range stay {
		values[k] = v
	}

	query, args, err := psqlbuilder.Insert("rooms").
		SetMap(values).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrRoomNumberExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает комнату по ID
// Внутри транзакции строка блокируется (SELECT ... FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List возвращает комнаты, отсортированные по номеру
// Опционально фильтрует по статусу и типу
func (r *Repository) List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("number ASC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": string(*filter.Type)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Update сохраняет статус, тарифы и проживание комнаты
func (r *Repository) Update(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stay, err := stayValues(room.Stay)
	if err != nil {
		return fmt.Errorf("%w: Update: %v", ErrEncodeGuests, err)
	}

	now := nowUTC()
	values := map[string]interface{}{
		"status":            string(room.Status),
		"hourly_first":      room.Pricing.HourlyFirst,
		"hourly_second":     room.Pricing.HourlySecond,
		"hourly_additional": room.Pricing.HourlyAdditional,
		"daily_rate":        room.Pricing.DailyRate,
		"monthly_rate":      room.Pricing.MonthlyRate,
		"updated_at":        now,
	}
	for k, v := range stay {
		values[k] = v
	}

	query, args, err := psqlbuilder.Update("rooms").
		SetMap(values).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRoomNotFound
	}

	room.UpdatedAt = now
	return nil
}

// Delete удаляет комнату
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
