package check_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
)

const (
	msgInvalidRoomID       = "некорректный ID комнаты"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "комната не найдена"
	msgRoomNotAvailable    = "комната недоступна для заселения"
	msgInvalidGuest        = "укажите имя гостя"
	msgInvalidCompany      = "укажите название компании и хотя бы одного гостя"
	msgInvalidDuration     = "длительность должна быть положительным целым числом"
	msgInvalidBookingType  = "некорректный тип бронирования, ожидается hourly, daily или monthly"
	msgInvalidCheckInInput = "некорректные данные заселения"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleIndividual POST /api/v1/rooms/{roomId}/checkin
func (h *Handler) HandleIndividual(w http.ResponseWriter, r *http.Request) {
	const route = "POST /rooms/{id}/checkin"

	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("%s - Invalid room ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req IndividualCheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.execute(w, r, route, req.ToUseCaseRequest(roomID), msgInvalidGuest)
}

// HandleCompany POST /api/v1/rooms/{roomId}/checkin-company
func (h *Handler) HandleCompany(w http.ResponseWriter, r *http.Request) {
	const route = "POST /rooms/{id}/checkin-company"

	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("%s - Invalid room ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req CompanyCheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.execute(w, r, route, req.ToUseCaseRequest(roomID), msgInvalidCompany)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *checkIn.Request, msgInvalidOccupant string) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrRoomNotFound):
			h.logger.Warn("%s - Room not found: room_id=%s", route, req.RoomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkIn.ErrRoomNotAvailable):
			h.logger.Warn("%s - Room not available: room_id=%s", route, req.RoomID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, checkIn.ErrInvalidOccupant):
			h.logger.Warn("%s - Invalid occupant: room_id=%s, error=%v", route, req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidOccupant)

		case errors.Is(err, checkIn.ErrInvalidDuration):
			h.logger.Warn("%s - Invalid duration: room_id=%s, duration=%d", route, req.RoomID, req.Duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, checkIn.ErrInvalidBookingType):
			h.logger.Warn("%s - Invalid booking type: room_id=%s, type=%q", route, req.RoomID, req.BookingType)
			handlers.RespondBadRequest(w, msgInvalidBookingType)

		case errors.Is(err, checkIn.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: room_id=%s, error=%v", route, req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidCheckInInput)

		default:
			h.logger.Error("%s - Failed to check in: room_id=%s, error=%v", route, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	room := result.Room
	h.logger.Info("%s - Checked in: room_id=%s, number=%s, occupant=%s, type=%s, duration=%d, total=%d",
		route, room.ID, room.Number, room.Stay.Occupant.DisplayName(), room.Stay.BookingType,
		room.Stay.Duration, room.Stay.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, roomModels.FromDomainRoom(room))
}
