package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается при неизвестной группировке
	ErrInvalidPeriod = errors.New("reports: invalid period")

	// ErrInvalidTimeRange возвращается, когда начало периода позже конца
	ErrInvalidTimeRange = errors.New("reports: invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
