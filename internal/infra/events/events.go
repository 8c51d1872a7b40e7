// Package events публикует события жизненного цикла проживания
package events

import (
	"context"
	"time"
)

// Subjects
const (
	SubjectCheckedIn      = "hotel.stay.checked_in"
	SubjectCheckedOut     = "hotel.stay.checked_out"
	SubjectPricingUpdated = "hotel.room.pricing_updated"
)

// StayEvent событие по комнате, публикуется после фиксации транзакции
type StayEvent struct {
	Subject      string    `json:"-"`
	RoomID       string    `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	OccupantName string    `json:"occupantName,omitempty"`
	BookingType  string    `json:"bookingType,omitempty"`
	Duration     int       `json:"duration,omitempty"`
	TotalCost    int64     `json:"totalCost,omitempty"`
	BillID       string    `json:"billId,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NopPublisher отбрасывает события, используется когда events.enabled = false
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(_ context.Context, _ StayEvent) error {
	return nil
}

// Close ничего не делает
func (NopPublisher) Close() error {
	return nil
}
