package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Service статистика дашборда, пересчитывается из комнат и счетов при каждом запросе
type Service struct {
	roomRepo     RoomRepository
	billRepo     BillRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(roomRepo RoomRepository, billRepo BillRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		roomRepo:     roomRepo,
		billRepo:     billRepo,
		txManager:    txManager,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Stats собирает статистику на текущий момент
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	now := s.timeProvider.Now()

	var (
		rooms []*domain.Room
		bills []*domain.Bill
	)
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		rooms, err = s.roomRepo.List(ctx, domain.RoomFilter{})
		if err != nil {
			return fmt.Errorf("list rooms: %w", err)
		}

		from := StartOfDay(now)
		bills, err = s.billRepo.List(ctx, domain.BillFilter{From: &from, To: &now})
		if err != nil {
			return fmt.Errorf("list bills: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Stats: failed to read snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	stats := ComputeStats(rooms, bills, now)
	s.logger.Info("Stats: rooms=%d occupied=%d rate=%d%% revenue=%d",
		stats.TotalRooms, stats.OccupiedRooms, stats.OccupancyRate, stats.TodayRevenue)
	return &stats, nil
}

// ComputeStats считает статистику по комнатам и счетам.
// В выручку за сегодня попадают счета с временем выезда от начала дня now до now
func ComputeStats(rooms []*domain.Room, bills []*domain.Bill, now time.Time) Stats {
	var stats Stats

	stats.TotalRooms = len(rooms)
	for _, r := range rooms {
		switch r.Status {
		case domain.RoomStatusEmpty:
			stats.EmptyRooms++
		case domain.RoomStatusOccupied:
			stats.OccupiedRooms++
		case domain.RoomStatusBooked:
			stats.BookedRooms++
		}
	}

	if stats.TotalRooms > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100))
	}

	from := StartOfDay(now)
	for _, b := range bills {
		if b.CheckOutTime.Before(from) || b.CheckOutTime.After(now) {
			continue
		}
		stats.TodayRevenue += b.TotalCost
		stats.TodayCheckOuts++
	}

	return stats
}

// StartOfDay полночь того же дня в часовом поясе t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
