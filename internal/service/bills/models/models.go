package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// ListBillsRequest фильтр журнала счетов
type ListBillsRequest struct {
	From  *time.Time // по времени выезда, включительно
	To    *time.Time // по времени выезда, включительно
	Limit *int       // по умолчанию domain.DefaultBillsLimit
}

// BillResponse счёт
type BillResponse struct {
	ID              string             `json:"id"`
	RoomID          string             `json:"roomId"`
	RoomNumber      string             `json:"roomNumber"`
	OccupantName    string             `json:"occupantName"`
	CompanyName     string             `json:"companyName,omitempty"`
	Guests          []roomModels.Guest `json:"guests"`
	CheckInTime     time.Time          `json:"checkInTime"`
	CheckOutTime    time.Time          `json:"checkOutTime"`
	DurationHours   int                `json:"durationHours"`
	DurationDays    int                `json:"durationDays"`
	BookingType     string             `json:"bookingType"`
	BookingDuration int                `json:"bookingDuration"`
	TotalCost       int64              `json:"totalCost"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// BillListResponse счета от новых к старым
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
}

// FromDomainBill конвертирует domain модель в DTO
func FromDomainBill(b *domain.Bill) *BillResponse {
	if b == nil {
		return nil
	}
	return &BillResponse{
		ID:              b.ID,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		OccupantName:    b.OccupantName,
		CompanyName:     b.CompanyName,
		Guests:          roomModels.FromDomainGuests(b.Guests),
		CheckInTime:     b.CheckInTime,
		CheckOutTime:    b.CheckOutTime,
		DurationHours:   b.DurationHours,
		DurationDays:    b.DurationDays,
		BookingType:     string(b.BookingType),
		BookingDuration: b.BookingDuration,
		TotalCost:       b.TotalCost,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBillList конвертирует список domain моделей в DTO
func FromDomainBillList(bills []*domain.Bill) *BillListResponse {
	resp := &BillListResponse{
		Bills: make([]BillResponse, 0, len(bills)),
	}
	for _, b := range bills {
		if billResp := FromDomainBill(b); billResp != nil {
			resp.Bills = append(resp.Bills, *billResp)
		}
	}
	return resp
}
