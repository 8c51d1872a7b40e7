package check_in

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
)

// IndividualCheckInRequest заселение частного лица
type IndividualCheckInRequest struct {
	GuestName   string `json:"guestName"`
	GuestPhone  string `json:"guestPhone,omitempty"`
	GuestEmail  string `json:"guestEmail,omitempty"`
	GuestIDCard string `json:"guestIdCard,omitempty"`
	BookingType string `json:"bookingType"` // hourly | daily | monthly
	Duration    int    `json:"duration"`
}

// CompanyCheckInRequest заселение сотрудников компании
type CompanyCheckInRequest struct {
	CompanyName string             `json:"companyName"`
	Guests      []roomModels.Guest `json:"guests"`
	BookingType string             `json:"bookingType"`
	Duration    int                `json:"duration"`
}

func (r *IndividualCheckInRequest) ToUseCaseRequest(roomID string) *checkIn.Request {
	return &checkIn.Request{
		RoomID: roomID,
		Kind:   domain.OccupantIndividual,
		Guests: []domain.Guest{{
			Name:   r.GuestName,
			Phone:  r.GuestPhone,
			Email:  r.GuestEmail,
			IDCard: r.GuestIDCard,
		}},
		BookingType: domain.BookingType(r.BookingType),
		Duration:    r.Duration,
	}
}

func (r *CompanyCheckInRequest) ToUseCaseRequest(roomID string) *checkIn.Request {
	return &checkIn.Request{
		RoomID:      roomID,
		Kind:        domain.OccupantCompany,
		CompanyName: r.CompanyName,
		Guests:      roomModels.ToDomainGuests(r.Guests),
		BookingType: domain.BookingType(r.BookingType),
		Duration:    r.Duration,
	}
}
