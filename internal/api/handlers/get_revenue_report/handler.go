package get_revenue_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/reports"
)

const (
	msgInvalidParams    = "некорректные параметры запроса"
	msgInvalidPeriod    = "некорректная группировка, ожидается daily, weekly или monthly"
	msgInvalidTimeRange = "начало периода позже его конца"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/revenue
// Query params: period (daily|weekly|monthly), from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryTime(r, "from", false)
	if err != nil {
		h.logger.Warn("GET /reports/revenue - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	to, err := handlers.QueryTime(r, "to", true)
	if err != nil {
		h.logger.Warn("GET /reports/revenue - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &reports.RevenueRequest{
		Period: r.URL.Query().Get("period"),
		From:   from,
		To:     to,
	}

	report, err := h.service.Revenue(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/revenue - Invalid period: %q", req.Period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reports.ErrInvalidTimeRange):
			h.logger.Warn("GET /reports/revenue - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /reports/revenue - Failed to build report: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/revenue - Report built: period=%s, total=%d, bills=%d",
		report.Period, report.TotalRevenue, report.TotalBills)
	handlers.RespondJSON(w, http.StatusOK, report)
}
