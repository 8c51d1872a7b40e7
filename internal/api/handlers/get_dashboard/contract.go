package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/dashboard"
)

type DashboardService interface {
	Stats(ctx context.Context) (*dashboard.Stats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
