package get_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgNotFound      = "комната не найдена"
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

// Handle GET /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /rooms/{id} - Failed to get room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id} - Room retrieved successfully: room_id=%s", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
