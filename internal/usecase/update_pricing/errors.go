package update_pricing

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("update_pricing: room not found")

	// ErrInvalidPricing возвращается, когда тариф не заполнен или отрицателен
	ErrInvalidPricing = errors.New("update_pricing: invalid pricing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_pricing: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_pricing: internal error")
)
