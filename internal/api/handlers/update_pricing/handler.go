package update_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	updatePricing "github.com/m04kA/SMC-HotelService/internal/usecase/update_pricing"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "комната не найдена"
	msgInvalidPricing     = "все пять тарифов обязательны и не могут быть отрицательными"
)

type Handler struct {
	useCase UpdatePricingUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePricingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rooms/{roomId}/pricing
// Новые тарифы действуют для следующих заселений, текущая оценка не пересчитывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("PUT /rooms/{id}/pricing - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req roomModels.PricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id}/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updatePricing.Request{
		RoomID:  roomID,
		Pricing: req.ToDomain(),
	})
	if err != nil {
		switch {
		case errors.Is(err, updatePricing.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id}/pricing - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updatePricing.ErrInvalidPricing), errors.Is(err, updatePricing.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id}/pricing - Invalid pricing: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidPricing)

		default:
			h.logger.Error("PUT /rooms/{id}/pricing - Failed to update pricing: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id}/pricing - Pricing updated: room_id=%s", roomID)
	handlers.RespondJSON(w, http.StatusOK, roomModels.FromDomainRoom(result.Room))
}
