package check_out

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("check_out: room not found")

	// ErrRoomNotOccupied возвращается при выселении из незанятой комнаты
	ErrRoomNotOccupied = errors.New("check_out: room is not occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_out: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)
