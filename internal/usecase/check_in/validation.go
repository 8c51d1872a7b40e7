package check_in

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest проверяет адресацию запроса; до блокировки комнаты
func validateRequest(req *Request) error {
	if req == nil || strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	return nil
}

// validateStay проверяет тариф, длительность и проживающего.
// Вызывается после проверки статуса: занятая комната важнее ошибок в данных
func validateStay(req *Request) (domain.Occupant, error) {
	if !req.BookingType.IsValid() {
		return domain.Occupant{}, fmt.Errorf("%w: %q", ErrInvalidBookingType, req.BookingType)
	}

	if req.Duration < domain.MinStayDuration {
		return domain.Occupant{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, req.Duration)
	}

	return buildOccupant(req)
}

// buildOccupant проверяет имена и отбрасывает гостей компании без имени
func buildOccupant(req *Request) (domain.Occupant, error) {
	switch req.Kind {
	case domain.OccupantIndividual:
		if len(req.Guests) == 0 || strings.TrimSpace(req.Guests[0].Name) == "" {
			return domain.Occupant{}, fmt.Errorf("%w: guest name is required", ErrInvalidOccupant)
		}
		guest := req.Guests[0]
		if len(guest.Name) > domain.MaxNameLength {
			return domain.Occupant{}, fmt.Errorf("%w: guest name is too long", ErrInvalidOccupant)
		}
		return domain.NewIndividual(guest), nil

	case domain.OccupantCompany:
		if strings.TrimSpace(req.CompanyName) == "" {
			return domain.Occupant{}, fmt.Errorf("%w: company name is required", ErrInvalidOccupant)
		}
		if len(req.CompanyName) > domain.MaxNameLength {
			return domain.Occupant{}, fmt.Errorf("%w: company name is too long", ErrInvalidOccupant)
		}

		occupant := domain.NewCompany(req.CompanyName, req.Guests)
		occupant.Guests = occupant.NamedGuests()
		if len(occupant.Guests) == 0 {
			return domain.Occupant{}, fmt.Errorf("%w: at least one named guest is required", ErrInvalidOccupant)
		}
		return occupant, nil

	default:
		return domain.Occupant{}, fmt.Errorf("%w: unknown occupant kind %q", ErrInvalidOccupant, req.Kind)
	}
}
