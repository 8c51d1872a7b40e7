package update_room_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, допускается empty или booked"
	msgNotFound           = "комната не найдена"
	msgInvalidTransition  = "статус занятой комнаты меняется только заселением и выселением"
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

// Handle PATCH /api/v1/rooms/{roomId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/status - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.UpdateStatus(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/status - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PATCH /rooms/{id}/status - Invalid status: room_id=%s, status=%q", roomID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, rooms.ErrInvalidStatusTransition):
			h.logger.Warn("PATCH /rooms/{id}/status - Invalid transition: room_id=%s, status=%q", roomID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /rooms/{id}/status - Failed to update status: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/status - Status updated: room_id=%s, status=%s", roomID, room.Status)
	handlers.RespondJSON(w, http.StatusOK, room)
}
