package get_bill

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/bills/models"
)

type BillService interface {
	GetByID(ctx context.Context, id string) (*models.BillResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
