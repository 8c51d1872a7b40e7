package list_bills

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/bills/models"
)

type BillService interface {
	List(ctx context.Context, req *models.ListBillsRequest) (*models.BillListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
