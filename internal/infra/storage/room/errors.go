package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrRoomNumberExists возвращается при повторном номере комнаты
	ErrRoomNumberExists = errors.New("room.repository: room number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")

	// ErrEncodeGuests возвращается при ошибке сериализации списка гостей
	ErrEncodeGuests = errors.New("room.repository: failed to encode guests")
)
