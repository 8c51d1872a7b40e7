package update_pricing

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/pricing"
)

func validateRequest(req *Request) (domain.PricingSchedule, error) {
	if req == nil || strings.TrimSpace(req.RoomID) == "" {
		return domain.PricingSchedule{}, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}

	schedule, err := pricing.ValidateSchedule(req.Pricing)
	if err != nil {
		return domain.PricingSchedule{}, fmt.Errorf("%w: %v", ErrInvalidPricing, err)
	}
	return schedule, nil
}
