package delete_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgNotFound      = "комната не найдена"
	msgRoomOccupied  = "нельзя удалить занятую комнату, сначала выселите гостей"
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

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrRoomOccupied):
			h.logger.Warn("DELETE /rooms/{id} - Room is occupied: room_id=%s", roomID)
			handlers.RespondConflict(w, msgRoomOccupied)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed to delete room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted successfully: room_id=%s", roomID)
	handlers.RespondNoContent(w)
}
