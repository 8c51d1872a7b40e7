package check_out

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на выселение
type Request struct {
	RoomID string
}

// Response освобождённая комната и выставленный счёт
type Response struct {
	Room *domain.Room
	Bill *domain.Bill
}
