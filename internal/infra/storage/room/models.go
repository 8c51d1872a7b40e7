package room

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// guestRow элемент JSONB-колонки guests
type guestRow struct {
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
	IDCard string `json:"idCard,omitempty"`
}

// EncodeGuests сериализует гостей в JSONB
func EncodeGuests(guests []domain.Guest) ([]byte, error) {
	rows := make([]guestRow, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, guestRow{Name: g.Name, Phone: g.Phone, Email: g.Email, IDCard: g.IDCard})
	}
	return json.Marshal(rows)
}

// DecodeGuests разбирает JSONB-колонку guests
func DecodeGuests(data []byte) ([]domain.Guest, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rows []guestRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	guests := make([]domain.Guest, 0, len(rows))
	for _, r := range rows {
		guests = append(guests, domain.Guest{Name: r.Name, Phone: r.Phone, Email: r.Email, IDCard: r.IDCard})
	}
	return guests, nil
}

// roomColumns порядок колонок совпадает с порядком полей в scanRoom
var roomColumns = []string{
	"id",
	"number",
	"type",
	"status",
	"hourly_first",
	"hourly_second",
	"hourly_additional",
	"daily_rate",
	"monthly_rate",
	"occupant_kind",
	"company_name",
	"guests",
	"booking_type",
	"duration",
	"check_in_time",
	"check_out_time",
	"total_cost",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		r            domain.Room
		occupantKind sql.NullString
		companyName  sql.NullString
		guests       []byte
		bookingType  sql.NullString
		duration     sql.NullInt64
		checkIn      sql.NullTime
		checkOut     sql.NullTime
		totalCost    sql.NullInt64
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&r.ID,
		&r.Number,
		&r.Type,
		&r.Status,
		&r.Pricing.HourlyFirst,
		&r.Pricing.HourlySecond,
		&r.Pricing.HourlyAdditional,
		&r.Pricing.DailyRate,
		&r.Pricing.MonthlyRate,
		&occupantKind,
		&companyName,
		&guests,
		&bookingType,
		&duration,
		&checkIn,
		&checkOut,
		&totalCost,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time

	// CHECK-ограничение таблицы гарантирует, что поля проживания заполнены вместе
	if occupantKind.Valid {
		decoded, err := DecodeGuests(guests)
		if err != nil {
			return nil, err
		}
		r.Stay = &domain.Stay{
			Occupant: domain.Occupant{
				Kind:        domain.OccupantKind(occupantKind.String),
				CompanyName: companyName.String,
				Guests:      decoded,
			},
			BookingType:  domain.BookingType(bookingType.String),
			Duration:     int(duration.Int64),
			CheckInTime:  checkIn.Time,
			CheckOutTime: checkOut.Time,
			TotalCost:    totalCost.Int64,
		}
	}

	return &r, nil
}

// stayValues значения колонок проживания; nil для свободной комнаты
func stayValues(stay *domain.Stay) (map[string]interface{}, error) {
	if stay == nil {
		return map[string]interface{}{
			"occupant_kind":  nil,
			"company_name":   nil,
			"guests":         nil,
			"booking_type":   nil,
			"duration":       nil,
			"check_in_time":  nil,
			"check_out_time": nil,
			"total_cost":     nil,
		}, nil
	}

	guests, err := EncodeGuests(stay.Occupant.Guests)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"occupant_kind":  string(stay.Occupant.Kind),
		"company_name":   stay.Occupant.CompanyName,
		"guests":         guests,
		"booking_type":   string(stay.BookingType),
		"duration":       stay.Duration,
		"check_in_time":  stay.CheckInTime.UTC(),
		"check_out_time": stay.CheckOutTime.UTC(),
		"total_cost":     stay.TotalCost,
	}, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
