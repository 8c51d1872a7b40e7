package domain

// Default pricing, used when a room is created without an explicit schedule
const (
	DefaultHourlyFirst      int64 = 80000
	DefaultHourlySecond     int64 = 40000
	DefaultHourlyAdditional int64 = 20000
	DefaultDailyRate        int64 = 500000
	DefaultMonthlyRate      int64 = 12000000
)

// Business validation constants
const (
	MinStayDuration   = 1
	MaxRoomNumberLen  = 20
	MaxNameLength     = 200
	DefaultBillsLimit = 50
	MaxBillsLimit     = 1000
)

// Time format constants
const (
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"
)
