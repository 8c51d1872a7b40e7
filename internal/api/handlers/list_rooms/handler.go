package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

const (
	msgInvalidStatus = "некорректный статус комнаты, ожидается empty, occupied или booked"
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

// Handle GET /api/v1/rooms
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := handlers.QueryString(r, "status")

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid status: %q", ptr.Value(status))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result.Rooms)
}
