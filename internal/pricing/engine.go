// Package pricing считает стоимость проживания и расчётное время выезда.
// Все функции чистые: результат зависит только от аргументов.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// DefaultSchedule тарифная сетка по умолчанию для новых комнат
func DefaultSchedule() domain.PricingSchedule {
	return domain.PricingSchedule{
		HourlyFirst:      domain.DefaultHourlyFirst,
		HourlySecond:     domain.DefaultHourlySecond,
		HourlyAdditional: domain.DefaultHourlyAdditional,
		DailyRate:        domain.DefaultDailyRate,
		MonthlyRate:      domain.DefaultMonthlyRate,
	}
}

// ComputeCost returns the price of a stay.
//
// Hourly: 1 hour costs HourlyFirst, 2 hours add HourlySecond, every hour
// after the second adds HourlyAdditional. Daily and monthly are linear.
func ComputeCost(schedule domain.PricingSchedule, bookingType domain.BookingType, duration int) (int64, error) {
	if duration < domain.MinStayDuration {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}

	d := int64(duration)
	switch bookingType {
	case domain.BookingHourly:
		switch {
		case d <= 1:
			return schedule.HourlyFirst, nil
		case d <= 2:
			return schedule.HourlyFirst + schedule.HourlySecond, nil
		default:
			return schedule.HourlyFirst + schedule.HourlySecond + (d-2)*schedule.HourlyAdditional, nil
		}
	case domain.BookingDaily:
		return d * schedule.DailyRate, nil
	case domain.BookingMonthly:
		return d * schedule.MonthlyRate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBookingType, bookingType)
	}
}

// AdvanceCheckout returns the estimated check-out time.
//
// Months are added with time.AddDate, so day-of-month overflow rolls into
// the following month: Jan 31 + 1 month is Mar 2 or Mar 3.
func AdvanceCheckout(checkIn time.Time, bookingType domain.BookingType, duration int) (time.Time, error) {
	if duration < domain.MinStayDuration {
		return time.Time{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}

	switch bookingType {
	case domain.BookingHourly:
		return checkIn.Add(time.Duration(duration) * time.Hour), nil
	case domain.BookingDaily:
		return checkIn.AddDate(0, 0, duration), nil
	case domain.BookingMonthly:
		return checkIn.AddDate(0, duration, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBookingType, bookingType)
	}
}

// Elapsed returns the time between from and to in whole hours and whole
// 24h days, both rounded up. A negative interval counts as zero.
func Elapsed(from, to time.Time) (hours, days int) {
	d := to.Sub(from)
	if d <= 0 {
		return 0, 0
	}
	hours = int(math.Ceil(d.Hours()))
	days = int(math.Ceil(d.Hours() / 24))
	return hours, days
}

// ResolveSchedule подставляет значения по умолчанию вместо отсутствующих полей
func ResolveSchedule(p domain.PartialSchedule) domain.PricingSchedule {
	s := DefaultSchedule()
	if p.HourlyFirst != nil {
		s.HourlyFirst = *p.HourlyFirst
	}
	if p.HourlySecond != nil {
		s.HourlySecond = *p.HourlySecond
	}
	if p.HourlyAdditional != nil {
		s.HourlyAdditional = *p.HourlyAdditional
	}
	if p.DailyRate != nil {
		s.DailyRate = *p.DailyRate
	}
	if p.MonthlyRate != nil {
		s.MonthlyRate = *p.MonthlyRate
	}
	return s
}

// ValidateSchedule требует все пять полей, каждое не меньше нуля
func ValidateSchedule(p domain.PartialSchedule) (domain.PricingSchedule, error) {
	fields := []struct {
		name  string
		value *int64
	}{
		{"hourlyFirst", p.HourlyFirst},
		{"hourlySecond", p.HourlySecond},
		{"hourlyAdditional", p.HourlyAdditional},
		{"dailyRate", p.DailyRate},
		{"monthlyRate", p.MonthlyRate},
	}
	for _, f := range fields {
		if f.value == nil {
			return domain.PricingSchedule{}, fmt.Errorf("%w: %s is missing", ErrInvalidPricing, f.name)
		}
		if *f.value < 0 {
			return domain.PricingSchedule{}, fmt.Errorf("%w: %s is negative", ErrInvalidPricing, f.name)
		}
	}

	return domain.PricingSchedule{
		HourlyFirst:      *p.HourlyFirst,
		HourlySecond:     *p.HourlySecond,
		HourlyAdditional: *p.HourlyAdditional,
		DailyRate:        *p.DailyRate,
		MonthlyRate:      *p.MonthlyRate,
	}, nil
}

// ValidatePartial проверяет только присутствующие поля
func ValidatePartial(p domain.PartialSchedule) error {
	for _, v := range []*int64{p.HourlyFirst, p.HourlySecond, p.HourlyAdditional, p.DailyRate, p.MonthlyRate} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: negative rate", ErrInvalidPricing)
		}
	}
	return nil
}
