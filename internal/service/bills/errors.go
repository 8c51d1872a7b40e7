package bills

import "errors"

var (
	// ErrBillNotFound возвращается, когда счёт не найден
	ErrBillNotFound = errors.New("bill not found")

	// ErrInvalidTimeRange возвращается, когда начало периода позже конца
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
