package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/events"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/pricing"
)

// UseCase use case заселения в комнату
type UseCase struct {
	roomRepo     RoomRepository
	txManager    TransactionManager
	locker       RoomLocker
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	txManager TransactionManager,
	locker RoomLocker,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		txManager:    txManager,
		locker:       locker,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет заселение
// Блокировка комнаты и сериализуемая транзакция гарантируют,
// что из двух одновременных заселений успешно только одно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация адресации; данные проживания проверяются после статуса комнаты
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckIn: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckIn: room=%s, kind=%s, booking=%s x%d",
		req.RoomID, req.Kind, req.BookingType, req.Duration)

	// 2. Блокируем комнату
	unlock := uc.locker.Lock(req.RoomID)
	defer unlock()

	now := uc.timeProvider.Now()
	var (
		result   *domain.Room
		occupant domain.Occupant
	)

	// 3. Проверяем статус и сохраняем проживание в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CheckIn: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CheckIn: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.CanCheckIn() {
			uc.logger.Warn("CheckIn: room %s is %s", room.Number, room.Status)
			return ErrRoomNotAvailable
		}

		occupant, err = validateStay(req)
		if err != nil {
			uc.logger.Warn("CheckIn: validation failed for room %s: %v", room.Number, err)
			return err
		}

		cost, err := pricing.ComputeCost(room.Pricing, req.BookingType, req.Duration)
		if err != nil {
			return mapPricingError(err)
		}

		checkOut, err := pricing.AdvanceCheckout(now, req.BookingType, req.Duration)
		if err != nil {
			return mapPricingError(err)
		}

		room.Occupy(domain.Stay{
			Occupant:     occupant,
			BookingType:  req.BookingType,
			Duration:     req.Duration,
			CheckInTime:  now,
			CheckOutTime: checkOut,
			TotalCost:    cost,
		})

		if err := uc.roomRepo.Update(txCtx, room); err != nil {
			uc.logger.Error("CheckIn: failed to update room id=%s: %v", room.ID, err)
			return fmt.Errorf("%w: failed to update room: %v", ErrInternal, err)
		}

		result = room
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckIn: room %s occupied until %s, estimate %d",
		result.Number, result.Stay.CheckOutTime.Format("2006-01-02 15:04"), result.Stay.TotalCost)

	// 4. После фиксации: метрики и событие
	uc.metrics.IncCheckIn(string(req.BookingType))

	event := events.StayEvent{
		Subject:      events.SubjectCheckedIn,
		RoomID:       result.ID,
		RoomNumber:   result.Number,
		OccupantName: occupant.DisplayName(),
		BookingType:  string(req.BookingType),
		Duration:     req.Duration,
		TotalCost:    result.Stay.TotalCost,
		OccurredAt:   now,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CheckIn: failed to publish event for room %s: %v", result.Number, err)
	}

	return &Response{Room: result}, nil
}

func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidDuration):
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	case errors.Is(err, pricing.ErrInvalidBookingType):
		return fmt.Errorf("%w: %v", ErrInvalidBookingType, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
