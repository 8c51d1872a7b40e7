package check_in

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("check_in: room not found")

	// ErrRoomNotAvailable возвращается, когда комната не свободна
	ErrRoomNotAvailable = errors.New("check_in: room is not available")

	// ErrInvalidOccupant возвращается, когда не заполнено имя гостя или название компании
	ErrInvalidOccupant = errors.New("check_in: invalid occupant")

	// ErrInvalidDuration возвращается при длительности меньше единицы
	ErrInvalidDuration = errors.New("check_in: duration must be a positive integer")

	// ErrInvalidBookingType возвращается при неизвестном тарифе
	ErrInvalidBookingType = errors.New("check_in: invalid booking type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
