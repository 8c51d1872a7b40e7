package check_in

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/events"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// RoomLocker блокировка комнаты на время операции
type RoomLocker interface {
	Lock(key string) func()
}

// EventPublisher публикует события проживания
type EventPublisher interface {
	Publish(ctx context.Context, event events.StayEvent) error
}

// Metrics счётчики заселений
type Metrics interface {
	IncCheckIn(bookingType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
