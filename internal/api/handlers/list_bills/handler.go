package list_bills

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/bills"
	"github.com/m04kA/SMC-HotelService/internal/service/bills/models"
)

const (
	msgInvalidParams    = "некорректные параметры запроса"
	msgInvalidTimeRange = "начало периода позже его конца"
	msgInvalidLimit     = "limit должен быть от 1 до 1000"
)

type Handler struct {
	service BillService
	logger  Logger
}

func NewHandler(service BillService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bills
// Query params: from, to (RFC3339 или YYYY-MM-DD), limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		h.logger.Warn("GET /bills - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bills.ErrInvalidTimeRange):
			h.logger.Warn("GET /bills - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bills.ErrInvalidInput):
			h.logger.Warn("GET /bills - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /bills - Failed to list bills: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bills - Bills retrieved successfully: count=%d", len(result.Bills))
	handlers.RespondJSON(w, http.StatusOK, result.Bills)
}

func parseRequest(r *http.Request) (*models.ListBillsRequest, error) {
	from, err := handlers.QueryTime(r, "from", false)
	if err != nil {
		return nil, err
	}
	to, err := handlers.QueryTime(r, "to", true)
	if err != nil {
		return nil, err
	}
	limit, err := handlers.QueryInt(r, "limit")
	if err != nil {
		return nil, err
	}
	return &models.ListBillsRequest{From: from, To: to, Limit: limit}, nil
}
