package check_in

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на заселение
type Request struct {
	RoomID      string
	Kind        domain.OccupantKind // individual или company
	CompanyName string              // только для company
	Guests      []domain.Guest      // для individual используется первый гость
	BookingType domain.BookingType
	Duration    int
}

// Response модель ответа с заселённой комнатой
type Response struct {
	Room *domain.Room
}
