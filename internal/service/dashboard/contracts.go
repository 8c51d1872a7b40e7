package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс чтения комнат
type RoomRepository interface {
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
}

// BillRepository интерфейс чтения журнала счетов
type BillRepository interface {
	List(ctx context.Context, filter domain.BillFilter) ([]*domain.Bill, error)
}

// TransactionManager снимок комнат и счетов в одной транзакции
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
