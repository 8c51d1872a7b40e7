package update_pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/events"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case замены тарифной сетки комнаты
type UseCase struct {
	roomRepo     RoomRepository
	txManager    TransactionManager
	locker       RoomLocker
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	txManager TransactionManager,
	locker RoomLocker,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		txManager:    txManager,
		locker:       locker,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute заменяет тарифную сетку целиком
// Допустимо в любом статусе; стоимость текущего проживания не пересчитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	schedule, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdatePricing: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdatePricing: room=%s, hourly=%d/%d/%d, daily=%d, monthly=%d",
		req.RoomID, schedule.HourlyFirst, schedule.HourlySecond, schedule.HourlyAdditional,
		schedule.DailyRate, schedule.MonthlyRate)

	unlock := uc.locker.Lock(req.RoomID)
	defer unlock()

	var result *domain.Room

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdatePricing: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdatePricing: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		room.Pricing = schedule
		if err := uc.roomRepo.Update(txCtx, room); err != nil {
			uc.logger.Error("UpdatePricing: failed to update room id=%s: %v", room.ID, err)
			return fmt.Errorf("%w: failed to update room: %v", ErrInternal, err)
		}

		result = room
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdatePricing: room %s pricing updated", result.Number)

	event := events.StayEvent{
		Subject:    events.SubjectPricingUpdated,
		RoomID:     result.ID,
		RoomNumber: result.Number,
		OccurredAt: uc.timeProvider.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("UpdatePricing: failed to publish event for room %s: %v", result.Number, err)
	}

	return &Response{Room: result}, nil
}
