package check_out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/events"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/pricing"
)

// UseCase use case выселения и расчёта
type UseCase struct {
	roomRepo     RoomRepository
	billRepo     BillRepository
	txManager    TransactionManager
	locker       RoomLocker
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	billRepo BillRepository,
	txManager TransactionManager,
	locker RoomLocker,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		billRepo:     billRepo,
		txManager:    txManager,
		locker:       locker,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выселяет гостей и выставляет счёт
// К оплате идёт оценка, зафиксированная при заселении, а не фактическое время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckOut: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckOut: room=%s", req.RoomID)

	unlock := uc.locker.Lock(req.RoomID)
	defer unlock()

	now := uc.timeProvider.Now()
	var result Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CheckOut: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CheckOut: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.CanCheckOut() {
			uc.logger.Warn("CheckOut: room %s is %s", room.Number, room.Status)
			return ErrRoomNotOccupied
		}

		bill := settle(room, now, uc.newID())

		room.Vacate()
		if err := uc.roomRepo.Update(txCtx, room); err != nil {
			uc.logger.Error("CheckOut: failed to update room id=%s: %v", room.ID, err)
			return fmt.Errorf("%w: failed to update room: %v", ErrInternal, err)
		}

		created, err := uc.billRepo.Create(txCtx, bill)
		if err != nil {
			uc.logger.Error("CheckOut: failed to create bill for room id=%s: %v", room.ID, err)
			return fmt.Errorf("%w: failed to create bill: %v", ErrInternal, err)
		}

		result = Response{Room: room, Bill: created}
		return nil
	})

	if err != nil {
		return nil, err
	}

	bill := result.Bill
	uc.logger.Info("CheckOut: room %s settled, bill id=%s, total %d, elapsed %dh/%dd",
		bill.RoomNumber, bill.ID, bill.TotalCost, bill.DurationHours, bill.DurationDays)

	uc.metrics.IncCheckOut(string(bill.BookingType), bill.TotalCost)

	event := events.StayEvent{
		Subject:      events.SubjectCheckedOut,
		RoomID:       bill.RoomID,
		RoomNumber:   bill.RoomNumber,
		OccupantName: bill.OccupantName,
		BookingType:  string(bill.BookingType),
		Duration:     bill.BookingDuration,
		TotalCost:    bill.TotalCost,
		BillID:       bill.ID,
		OccurredAt:   now,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CheckOut: failed to publish event for room %s: %v", bill.RoomNumber, err)
	}

	return &result, nil
}

// settle собирает счёт по текущему проживанию комнаты
func settle(room *domain.Room, now time.Time, id string) *domain.Bill {
	stay := room.Stay
	hours, days := pricing.Elapsed(stay.CheckInTime, now)

	return &domain.Bill{
		ID:              id,
		RoomID:          room.ID,
		RoomNumber:      room.Number,
		OccupantName:    stay.Occupant.DisplayName(),
		CompanyName:     stay.Occupant.CompanyName,
		Guests:          append([]domain.Guest(nil), stay.Occupant.Guests...),
		CheckInTime:     stay.CheckInTime,
		CheckOutTime:    now,
		DurationHours:   hours,
		DurationDays:    days,
		BookingType:     stay.BookingType,
		BookingDuration: stay.Duration,
		TotalCost:       stay.TotalCost,
	}
}
