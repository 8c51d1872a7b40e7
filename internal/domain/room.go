package domain

import "time"

// RoomStatus состояние комнаты
type RoomStatus string

const (
	RoomStatusEmpty    RoomStatus = "empty"
	RoomStatusOccupied RoomStatus = "occupied"
	RoomStatusBooked   RoomStatus = "booked"
)

// IsValid returns true for a known room status
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusEmpty, RoomStatusOccupied, RoomStatusBooked:
		return true
	}
	return false
}

// RoomType тип комнаты
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
)

// IsValid returns true for a known room type
func (t RoomType) IsValid() bool {
	return t == RoomTypeSingle || t == RoomTypeDouble
}

// Room represents a hotel room with its pricing schedule and current stay
type Room struct {
	ID      string
	Number  string
	Type    RoomType
	Status  RoomStatus
	Pricing PricingSchedule

	// Stay заполнен только при Status == RoomStatusOccupied.
	// Все поля проживания присутствуют вместе или отсутствуют вместе
	Stay *Stay

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stay represents an in-progress occupancy of a room
type Stay struct {
	Occupant     Occupant
	BookingType  BookingType
	Duration     int
	CheckInTime  time.Time
	CheckOutTime time.Time // расчётное время выезда, не жёсткий срок
	TotalCost    int64     // оценка, зафиксированная при заселении
}

// IsEmpty returns true if the room is vacant
func (r *Room) IsEmpty() bool {
	return r.Status == RoomStatusEmpty
}

// IsOccupied returns true if the room has a stay in progress
func (r *Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied && r.Stay != nil
}

// CanCheckIn returns true if a new stay can start in the room
func (r *Room) CanCheckIn() bool {
	return r.IsEmpty()
}

// CanCheckOut returns true if the room has a stay to settle
func (r *Room) CanCheckOut() bool {
	return r.IsOccupied()
}

// Occupy starts a stay
func (r *Room) Occupy(stay Stay) {
	r.Status = RoomStatusOccupied
	r.Stay = &stay
}

// Vacate clears the stay and returns the room to empty
func (r *Room) Vacate() {
	r.Status = RoomStatusEmpty
	r.Stay = nil
}

// Clone returns a deep copy of the room
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	if r.Stay != nil {
		stay := *r.Stay
		stay.Occupant = r.Stay.Occupant.Clone()
		c.Stay = &stay
	}
	return &c
}

// RoomFilter фильтр списка комнат
type RoomFilter struct {
	Status *RoomStatus // опционально
	Type   *RoomType   // опционально
}
