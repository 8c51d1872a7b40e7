package get_revenue_report

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/reports"
)

type ReportService interface {
	Revenue(ctx context.Context, req *reports.RevenueRequest) (*reports.RevenueReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
