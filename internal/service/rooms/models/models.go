package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// PricingRequest тарифная сетка из запроса; отсутствующие поля = nil
type PricingRequest struct {
	HourlyFirst      *int64 `json:"hourlyFirst"`
	HourlySecond     *int64 `json:"hourlySecond"`
	HourlyAdditional *int64 `json:"hourlyAdditional"`
	DailyRate        *int64 `json:"dailyRate"`
	MonthlyRate      *int64 `json:"monthlyRate"`
}

// ToDomain конвертирует запрос в частичную тарифную сетку
func (p *PricingRequest) ToDomain() domain.PartialSchedule {
	if p == nil {
		return domain.PartialSchedule{}
	}
	return domain.PartialSchedule{
		HourlyFirst:      p.HourlyFirst,
		HourlySecond:     p.HourlySecond,
		HourlyAdditional: p.HourlyAdditional,
		DailyRate:        p.DailyRate,
		MonthlyRate:      p.MonthlyRate,
	}
}

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Number  string          `json:"number"`
	Type    string          `json:"type"`
	Pricing *PricingRequest `json:"pricing,omitempty"` // по умолчанию стандартная сетка
}

// UpdateStatusRequest запрос на смену статуса комнаты
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// PricingResponse тарифная сетка комнаты
type PricingResponse struct {
	HourlyFirst      int64 `json:"hourlyFirst"`
	HourlySecond     int64 `json:"hourlySecond"`
	HourlyAdditional int64 `json:"hourlyAdditional"`
	DailyRate        int64 `json:"dailyRate"`
	MonthlyRate      int64 `json:"monthlyRate"`
}

// Guest гость в запросах и ответах
type Guest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
	IDCard string `json:"idCard,omitempty"`
}

// RoomResponse ответ с данными комнаты
// Поля проживания заполнены только для занятой комнаты
type RoomResponse struct {
	ID      string          `json:"id"`
	Number  string          `json:"number"`
	Type    string          `json:"type"`
	Status  string          `json:"status"`
	Pricing PricingResponse `json:"pricing"`

	OccupantType string     `json:"occupantType,omitempty"` // individual | company
	GuestName    string     `json:"guestName,omitempty"`
	CompanyName  string     `json:"companyName,omitempty"`
	Guests       []Guest    `json:"guests,omitempty"`
	BookingType  string     `json:"bookingType,omitempty"`
	Duration     int        `json:"duration,omitempty"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"` // расчётное
	TotalCost    *int64     `json:"totalCost,omitempty"`    // оценка при заселении

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// RoomGuestsResponse проживающие в комнате
type RoomGuestsResponse struct {
	RoomID      string  `json:"roomId"`
	RoomNumber  string  `json:"roomNumber"`
	Status      string  `json:"status"`
	CompanyName string  `json:"companyName,omitempty"`
	Guests      []Guest `json:"guests"`
}

// CurrentCostResponse текущая стоимость проживания
type CurrentCostResponse struct {
	RoomID              string    `json:"roomId"`
	RoomNumber          string    `json:"roomNumber"`
	OccupantName        string    `json:"occupantName"`
	BookingType         string    `json:"bookingType"`
	CheckInTime         time.Time `json:"checkInTime"`
	CurrentTime         time.Time `json:"currentTime"`
	PlannedCheckOutTime time.Time `json:"plannedCheckOutTime"`
	ElapsedHours        int       `json:"elapsedHours"`
	ElapsedDays         int       `json:"elapsedDays"`
	IsRealTime          bool      `json:"isRealTime"` // true: почасовой тариф пересчитан по факту
	EstimatedCost       int64     `json:"estimatedCost"`
	CurrentCost         int64     `json:"currentCost"`
}

// Методы конвертации

// FromDomainPricing конвертирует тарифную сетку в DTO
func FromDomainPricing(p domain.PricingSchedule) PricingResponse {
	return PricingResponse{
		HourlyFirst:      p.HourlyFirst,
		HourlySecond:     p.HourlySecond,
		HourlyAdditional: p.HourlyAdditional,
		DailyRate:        p.DailyRate,
		MonthlyRate:      p.MonthlyRate,
	}
}

// FromDomainGuests конвертирует гостей в DTO; всегда возвращает не-nil слайс
func FromDomainGuests(guests []domain.Guest) []Guest {
	resp := make([]Guest, 0, len(guests))
	for _, g := range guests {
		resp = append(resp, Guest{Name: g.Name, Phone: g.Phone, Email: g.Email, IDCard: g.IDCard})
	}
	return resp
}

// ToDomainGuests конвертирует гостей из запроса
func ToDomainGuests(guests []Guest) []domain.Guest {
	result := make([]domain.Guest, 0, len(guests))
	for _, g := range guests {
		result = append(result, domain.Guest{Name: g.Name, Phone: g.Phone, Email: g.Email, IDCard: g.IDCard})
	}
	return result
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	resp := &RoomResponse{
		ID:        r.ID,
		Number:    r.Number,
		Type:      string(r.Type),
		Status:    string(r.Status),
		Pricing:   FromDomainPricing(r.Pricing),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if stay := r.Stay; stay != nil {
		checkIn := stay.CheckInTime
		checkOut := stay.CheckOutTime
		cost := stay.TotalCost

		resp.OccupantType = string(stay.Occupant.Kind)
		resp.CompanyName = stay.Occupant.CompanyName
		if !stay.Occupant.IsCompany() {
			resp.GuestName = stay.Occupant.DisplayName()
		}
		resp.Guests = FromDomainGuests(stay.Occupant.Guests)
		resp.BookingType = string(stay.BookingType)
		resp.Duration = stay.Duration
		resp.CheckInTime = &checkIn
		resp.CheckOutTime = &checkOut
		resp.TotalCost = &cost
	}

	return resp
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, r := range rooms {
		if roomResp := FromDomainRoom(r); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}
