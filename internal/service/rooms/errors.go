package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNumberExists возвращается при повторном номере комнаты
	ErrRoomNumberExists = errors.New("room number already exists")

	// ErrRoomOccupied возвращается при удалении занятой комнаты
	ErrRoomOccupied = errors.New("room is occupied")

	// ErrRoomNotOccupied возвращается, когда для комнаты нет текущего проживания
	ErrRoomNotOccupied = errors.New("room is not occupied")

	// ErrInvalidStatusTransition возвращается при недопустимой смене статуса
	// Статус occupied устанавливается только заселением и снимается только выселением
	ErrInvalidStatusTransition = errors.New("invalid room status transition")

	// ErrInvalidPricing возвращается при отрицательном тарифе
	ErrInvalidPricing = errors.New("invalid pricing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
