package domain

import "time"

// Bill represents an immutable settlement record produced by check-out
type Bill struct {
	ID         string
	RoomID     string
	RoomNumber string

	OccupantName string
	CompanyName  string // пусто для частного лица
	Guests       []Guest

	CheckInTime   time.Time
	CheckOutTime  time.Time // фактическое время выезда
	DurationHours int       // округление вверх
	DurationDays  int       // округление вверх

	BookingType     BookingType
	BookingDuration int
	TotalCost       int64

	CreatedAt time.Time
}

// BillFilter фильтр журнала счетов
type BillFilter struct {
	From  *time.Time // по CheckOutTime, включительно
	To    *time.Time // по CheckOutTime, включительно
	Limit int        // 0 = без ограничения
}
