package bill

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

var billColumns = []string{
	"id",
	"room_id",
	"room_number",
	"occupant_name",
	"company_name",
	"guests",
	"check_in_time",
	"check_out_time",
	"duration_hours",
	"duration_days",
	"booking_type",
	"booking_duration",
	"total_cost",
	"created_at",
}

// Repository журнал счетов
// Счета только добавляются, изменение и удаление не поддерживаются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет счёт в журнал
func (r *Repository) Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	guests, err := room.EncodeGuests(bill.Guests)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeGuests, err)
	}

	query, args, err := psqlbuilder.Insert("bills").
		Columns(
			"id",
			"room_id",
			"room_number",
			"occupant_name",
			"company_name",
			"guests",
			"check_in_time",
			"check_out_time",
			"duration_hours",
			"duration_days",
			"booking_type",
			"booking_duration",
			"total_cost",
		).
		Values(
			bill.ID,
			bill.RoomID,
			bill.RoomNumber,
			bill.OccupantName,
			bill.CompanyName,
			guests,
			bill.CheckInTime.UTC(),
			bill.CheckOutTime.UTC(),
			bill.DurationHours,
			bill.DurationDays,
			string(bill.BookingType),
			bill.BookingDuration,
			bill.TotalCost,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	bill.CreatedAt = createdAt.Time

	return bill, nil
}

// GetByID получает счёт по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(billColumns...).
		From("bills").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	bill, err := scanBill(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan bill: %v", ErrScanRow, err)
	}

	return bill, nil
}

// List возвращает счета от новых к старым
// Границы фильтра применяются к фактическому времени выезда, включительно
func (r *Repository) List(ctx context.Context, filter domain.BillFilter) ([]*domain.Bill, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(billColumns...).
		From("bills").
		OrderBy("check_out_time DESC", "created_at DESC")

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"check_out_time": filter.From.UTC()})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"check_out_time": filter.To.UTC()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
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

	bills := make([]*domain.Bill, 0)
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan bill: %v", ErrScanRow, err)
		}
		bills = append(bills, bill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return bills, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBill(row rowScanner) (*domain.Bill, error) {
	var (
		b         domain.Bill
		guests    []byte
		createdAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.RoomID,
		&b.RoomNumber,
		&b.OccupantName,
		&b.CompanyName,
		&guests,
		&b.CheckInTime,
		&b.CheckOutTime,
		&b.DurationHours,
		&b.DurationDays,
		&b.BookingType,
		&b.BookingDuration,
		&b.TotalCost,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.Guests, err = room.DecodeGuests(guests)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}
