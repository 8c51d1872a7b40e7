package get_bill

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/bills"
)

const (
	msgInvalidBillID = "некорректный ID счёта"
	msgNotFound      = "счёт не найден"
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

// Handle GET /api/v1/bills/{billId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	billID, err := handlers.PathID(r, "billId")
	if err != nil {
		h.logger.Warn("GET /bills/{id} - Invalid bill ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBillID)
		return
	}

	bill, err := h.service.GetByID(r.Context(), billID)
	if err != nil {
		if errors.Is(err, bills.ErrBillNotFound) {
			h.logger.Warn("GET /bills/{id} - Bill not found: bill_id=%s", billID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /bills/{id} - Failed to get bill: bill_id=%s, error=%v", billID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bills/{id} - Bill retrieved successfully: bill_id=%s", billID)
	handlers.RespondJSON(w, http.StatusOK, bill)
}
