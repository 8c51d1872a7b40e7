package bills

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BillRepository интерфейс журнала счетов
type BillRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	List(ctx context.Context, filter domain.BillFilter) ([]*domain.Bill, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
