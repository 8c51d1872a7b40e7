package domain

// BookingType тариф проживания
type BookingType string

const (
	BookingHourly  BookingType = "hourly"
	BookingDaily   BookingType = "daily"
	BookingMonthly BookingType = "monthly"
)

// IsValid returns true for a known booking type
func (t BookingType) IsValid() bool {
	switch t {
	case BookingHourly, BookingDaily, BookingMonthly:
		return true
	}
	return false
}

// PricingSchedule тарифная сетка комнаты
// Суммы в целых единицах валюты, без дробной части
type PricingSchedule struct {
	HourlyFirst      int64 // первый час
	HourlySecond     int64 // второй час
	HourlyAdditional int64 // каждый час после второго
	DailyRate        int64
	MonthlyRate      int64
}

// PartialSchedule тарифная сетка из запроса, где любое поле может отсутствовать
type PartialSchedule struct {
	HourlyFirst      *int64
	HourlySecond     *int64
	HourlyAdditional *int64
	DailyRate        *int64
	MonthlyRate      *int64
}
