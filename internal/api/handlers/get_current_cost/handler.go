package get_current_cost

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgNotFound        = "комната не найдена"
	msgRoomNotOccupied = "комната не занята"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/current-cost
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/current-cost - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	cost, err := h.service.CurrentCost(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/current-cost - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrRoomNotOccupied):
			h.logger.Warn("GET /rooms/{id}/current-cost - Room not occupied: room_id=%s", roomID)
			handlers.RespondConflict(w, msgRoomNotOccupied)

		default:
			h.logger.Error("GET /rooms/{id}/current-cost - Failed to compute cost: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/current-cost - Cost computed: room_id=%s, current=%d, estimated=%d",
		roomID, cost.CurrentCost, cost.EstimatedCost)
	handlers.RespondJSON(w, http.StatusOK, cost)
}
