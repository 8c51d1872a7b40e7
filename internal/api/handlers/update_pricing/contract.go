package update_pricing

import (
	"context"

	updatePricing "github.com/m04kA/SMC-HotelService/internal/usecase/update_pricing"
)

type UpdatePricingUseCase interface {
	Execute(ctx context.Context, req *updatePricing.Request) (*updatePricing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
