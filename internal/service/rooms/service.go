package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/pricing"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

// Service сервис справочника комнат
type Service struct {
	roomRepo     RoomRepository
	txManager    TransactionManager
	locker       RoomLocker
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	txManager TransactionManager,
	locker RoomLocker,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		txManager:    txManager,
		locker:       locker,
		timeProvider: realTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// List возвращает комнаты, опционально с фильтром по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms, status=%q", ptr.Value(status))

	var filter domain.RoomFilter
	if status != nil {
		st := domain.RoomStatus(*status)
		if !st.IsValid() {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *status)
		}
		filter.Status = &st
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	room, err := s.getRoom(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// Create создает свободную комнату
// Отсутствующие поля тарифной сетки заполняются значениями по умолчанию
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	number := strings.TrimSpace(req.Number)
	s.logger.Info("Create: number=%s, type=%s", number, req.Type)

	if number == "" {
		return nil, fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if len(number) > domain.MaxRoomNumberLen {
		return nil, fmt.Errorf("%w: room number is too long", ErrInvalidInput)
	}

	roomType := domain.RoomType(req.Type)
	if !roomType.IsValid() {
		return nil, fmt.Errorf("%w: invalid room type %q", ErrInvalidInput, req.Type)
	}

	partial := req.Pricing.ToDomain()
	if err := pricing.ValidatePartial(partial); err != nil {
		s.logger.Warn("Create: invalid pricing: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPricing, err)
	}

	room := &domain.Room{
		ID:      s.newID(),
		Number:  number,
		Type:    roomType,
		Status:  domain.RoomStatusEmpty,
		Pricing: pricing.ResolveSchedule(partial),
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberExists) {
			s.logger.Warn("Create: room number %s already exists", number)
			return nil, ErrRoomNumberExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room %s created, id=%s", created.Number, created.ID)
	return models.FromDomainRoom(created), nil
}

// Delete удаляет комнату; занятую комнату удалить нельзя
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: room id=%s", id)

	unlock := s.locker.Lock(id)
	defer unlock()

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := s.getRoom(txCtx, "Delete", id)
		if err != nil {
			return err
		}

		if room.IsOccupied() {
			s.logger.Warn("Delete: room %s is occupied", room.Number)
			return ErrRoomOccupied
		}

		if err := s.roomRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			s.logger.Error("Delete: repository error for room id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Delete: room %s deleted", room.Number)
		return nil
	})
}

// UpdateStatus переводит комнату между empty и booked
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.RoomResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	target := domain.RoomStatus(req.Status)
	s.logger.Info("UpdateStatus: room id=%s, status=%s", id, target)

	if !target.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}
	if target == domain.RoomStatusOccupied {
		return nil, fmt.Errorf("%w: use check-in to occupy a room", ErrInvalidStatusTransition)
	}

	unlock := s.locker.Lock(id)
	defer unlock()

	var result *domain.Room
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := s.getRoom(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		if room.Status == domain.RoomStatusOccupied {
			s.logger.Warn("UpdateStatus: room %s is occupied", room.Number)
			return fmt.Errorf("%w: use check-out to release a room", ErrInvalidStatusTransition)
		}

		if room.Status != target {
			room.Status = target
			if err := s.roomRepo.Update(txCtx, room); err != nil {
				s.logger.Error("UpdateStatus: repository error for room id=%s: %v", id, err)
				return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
			}
		}

		result = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: room %s is %s", result.Number, result.Status)
	return models.FromDomainRoom(result), nil
}

// GetGuests возвращает проживающих; для свободной комнаты список пуст
func (s *Service) GetGuests(ctx context.Context, id string) (*models.RoomGuestsResponse, error) {
	room, err := s.getRoom(ctx, "GetGuests", id)
	if err != nil {
		return nil, err
	}

	resp := &models.RoomGuestsResponse{
		RoomID:     room.ID,
		RoomNumber: room.Number,
		Status:     string(room.Status),
		Guests:     []models.Guest{},
	}
	if room.Stay != nil {
		resp.CompanyName = room.Stay.Occupant.CompanyName
		resp.Guests = models.FromDomainGuests(room.Stay.Occupant.Guests)
	}
	return resp, nil
}

// CurrentCost текущая стоимость проживания
// Почасовое проживание пересчитывается по фактически прошедшим часам (минимум один),
// для посуточного и помесячного возвращается оценка при заселении.
// Значение справочное: при выселении к оплате идёт оценка
func (s *Service) CurrentCost(ctx context.Context, id string) (*models.CurrentCostResponse, error) {
	room, err := s.getRoom(ctx, "CurrentCost", id)
	if err != nil {
		return nil, err
	}

	if !room.IsOccupied() {
		s.logger.Warn("CurrentCost: room %s is %s", room.Number, room.Status)
		return nil, ErrRoomNotOccupied
	}

	stay := room.Stay
	now := s.timeProvider.Now()
	hours, days := pricing.Elapsed(stay.CheckInTime, now)

	resp := &models.CurrentCostResponse{
		RoomID:              room.ID,
		RoomNumber:          room.Number,
		OccupantName:        stay.Occupant.DisplayName(),
		BookingType:         string(stay.BookingType),
		CheckInTime:         stay.CheckInTime,
		CurrentTime:         now,
		PlannedCheckOutTime: stay.CheckOutTime,
		ElapsedHours:        hours,
		ElapsedDays:         days,
		EstimatedCost:       stay.TotalCost,
		CurrentCost:         stay.TotalCost,
	}

	if stay.BookingType == domain.BookingHourly {
		billable := hours
		if billable < 1 {
			billable = 1
		}
		cost, err := pricing.ComputeCost(room.Pricing, domain.BookingHourly, billable)
		if err != nil {
			s.logger.Error("CurrentCost: failed to compute cost for room %s: %v", room.Number, err)
			return nil, fmt.Errorf("%w: CurrentCost - compute cost: %v", ErrInternal, err)
		}
		resp.IsRealTime = true
		resp.CurrentCost = cost
	}

	return resp, nil
}

func (s *Service) getRoom(ctx context.Context, op, id string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%s not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}
