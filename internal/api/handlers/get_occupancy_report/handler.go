package get_occupancy_report

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
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

// Handle GET /api/v1/reports/room-occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Occupancy(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/room-occupancy - Failed to build report: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/room-occupancy - Report built: types=%d", len(report.RoomOccupancy))
	handlers.RespondJSON(w, http.StatusOK, report)
}
