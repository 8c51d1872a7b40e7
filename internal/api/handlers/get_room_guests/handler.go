package get_room_guests

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

// Handle GET /api/v1/rooms/{roomId}/guests
// Для свободной комнаты возвращается пустой список гостей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/guests - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.service.GetGuests(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{id}/guests - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /rooms/{id}/guests - Failed to get guests: room_id=%s, error=%v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/{id}/guests - Guests retrieved: room_id=%s, count=%d", roomID, len(result.Guests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
