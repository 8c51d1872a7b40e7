package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoom        = "некорректные данные комнаты: нужен номер и тип single или double"
	msgInvalidPricing     = "тарифы не могут быть отрицательными"
	msgNumberExists       = "комната с таким номером уже существует"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNumberExists):
			h.logger.Warn("POST /rooms - Room number already exists: number=%s", req.Number)
			handlers.RespondConflict(w, msgNumberExists)

		case errors.Is(err, rooms.ErrInvalidPricing):
			h.logger.Warn("POST /rooms - Invalid pricing: number=%s, error=%v", req.Number, err)
			handlers.RespondBadRequest(w, msgInvalidPricing)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid room: number=%q, type=%q", req.Number, req.Type)
			handlers.RespondBadRequest(w, msgInvalidRoom)

		default:
			h.logger.Error("POST /rooms - Failed to create room: number=%s, error=%v", req.Number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%s, number=%s", room.ID, room.Number)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
