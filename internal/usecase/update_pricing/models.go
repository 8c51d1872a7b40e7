package update_pricing

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request новая тарифная сетка комнаты, все пять полей обязательны
type Request struct {
	RoomID  string
	Pricing domain.PartialSchedule
}

// Response комната с новой тарифной сеткой
type Response struct {
	Room *domain.Room
}
