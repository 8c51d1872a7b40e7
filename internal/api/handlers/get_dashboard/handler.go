package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to compute stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/stats - Stats computed: total=%d, occupied=%d, revenue=%d",
		stats.TotalRooms, stats.OccupiedRooms, stats.TodayRevenue)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
