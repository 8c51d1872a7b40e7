package reports

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Service отчёты по выручке и загрузке номерного фонда
type Service struct {
	roomRepo     RoomRepository
	billRepo     BillRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(roomRepo RoomRepository, billRepo BillRepository, logger Logger) *Service {
	return &Service{
		roomRepo:     roomRepo,
		billRepo:     billRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Revenue выручка по счетам за период с группировкой по дням, неделям или месяцам
func (s *Service) Revenue(ctx context.Context, req *RevenueRequest) (*RevenueReport, error) {
	if req == nil {
		req = &RevenueRequest{}
	}

	period := Period(req.Period)
	if period == "" {
		period = PeriodDaily
	}
	if period != PeriodDaily && period != PeriodWeekly && period != PeriodMonthly {
		s.logger.Warn("Revenue: invalid period=%s", req.Period)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, req.Period)
	}

	now := s.timeProvider.Now()
	from := startOfDay(now)
	if req.From != nil {
		from = *req.From
	}
	to := now
	if req.To != nil {
		to = *req.To
	}
	if from.After(to) {
		return nil, ErrInvalidTimeRange
	}

	s.logger.Info("Revenue: period=%s, from=%s, to=%s", period, from.Format(time.RFC3339), to.Format(time.RFC3339))

	bills, err := s.billRepo.List(ctx, domain.BillFilter{From: &from, To: &to})
	if err != nil {
		s.logger.Error("Revenue: failed to list bills: %v", err)
		return nil, fmt.Errorf("%w: list bills: %v", ErrInternal, err)
	}

	report := GroupRevenue(bills, period)
	report.From = from
	report.To = to
	return report, nil
}

// Occupancy загрузка по типам комнат
func (s *Service) Occupancy(ctx context.Context) (*OccupancyReport, error) {
	rooms, err := s.roomRepo.List(ctx, domain.RoomFilter{})
	if err != nil {
		s.logger.Error("Occupancy: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: list rooms: %v", ErrInternal, err)
	}

	return ComputeOccupancy(rooms), nil
}

// GroupRevenue группирует счета по времени выезда; периоды отсортированы по возрастанию
func GroupRevenue(bills []*domain.Bill, period Period) *RevenueReport {
	report := &RevenueReport{
		Period:   string(period),
		ByPeriod: []PeriodRevenue{},
	}

	index := make(map[string]int)
	for _, b := range bills {
		key := periodKey(b.CheckOutTime, period)
		i, ok := index[key]
		if !ok {
			i = len(report.ByPeriod)
			index[key] = i
			report.ByPeriod = append(report.ByPeriod, PeriodRevenue{Period: key})
		}
		report.ByPeriod[i].Revenue += b.TotalCost
		report.ByPeriod[i].Bills++
		report.TotalRevenue += b.TotalCost
		report.TotalBills++
	}

	sort.Slice(report.ByPeriod, func(i, j int) bool {
		return report.ByPeriod[i].Period < report.ByPeriod[j].Period
	})
	return report
}

// ComputeOccupancy считает загрузку по типам комнат, типы отсортированы по имени
func ComputeOccupancy(rooms []*domain.Room) *OccupancyReport {
	byType := make(map[domain.RoomType]*TypeOccupancy)
	for _, r := range rooms {
		item, ok := byType[r.Type]
		if !ok {
			item = &TypeOccupancy{Type: string(r.Type)}
			byType[r.Type] = item
		}
		item.TotalRooms++
		switch r.Status {
		case domain.RoomStatusOccupied:
			item.OccupiedRooms++
		case domain.RoomStatusEmpty:
			item.EmptyRooms++
		case domain.RoomStatusBooked:
			item.BookedRooms++
		}
	}

	report := &OccupancyReport{RoomOccupancy: make([]TypeOccupancy, 0, len(byType))}
	for _, item := range byType {
		item.OccupancyRate = math.Round(float64(item.OccupiedRooms)/float64(item.TotalRooms)*1000) / 10
		report.RoomOccupancy = append(report.RoomOccupancy, *item)
	}

	sort.Slice(report.RoomOccupancy, func(i, j int) bool {
		return report.RoomOccupancy[i].Type < report.RoomOccupancy[j].Type
	})
	return report
}

func periodKey(t time.Time, period Period) string {
	switch period {
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case PeriodMonthly:
		return t.Format(domain.MonthFormat)
	default:
		return t.Format(domain.DateFormat)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
