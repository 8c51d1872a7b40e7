package check_out

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	checkOut "github.com/m04kA/SMC-HotelService/internal/usecase/check_out"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgNotFound        = "комната не найдена"
	msgRoomNotOccupied = "комната не занята"
)

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/checkout - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkOut.Request{RoomID: roomID})
	if err != nil {
		switch {
		case errors.Is(err, checkOut.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/checkout - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkOut.ErrRoomNotOccupied):
			h.logger.Warn("POST /rooms/{id}/checkout - Room not occupied: room_id=%s", roomID)
			handlers.RespondConflict(w, msgRoomNotOccupied)

		default:
			h.logger.Error("POST /rooms/{id}/checkout - Failed to check out: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/checkout - Checked out: room_id=%s, bill_id=%s, total=%d",
		roomID, result.Bill.ID, result.Bill.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
