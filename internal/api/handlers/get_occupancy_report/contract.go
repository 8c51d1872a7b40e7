package get_occupancy_report

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/reports"
)

type ReportService interface {
	Occupancy(ctx context.Context) (*reports.OccupancyReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
