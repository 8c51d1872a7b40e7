package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func bill(at time.Time, cost int64) *domain.Bill {
	return &domain.Bill{CheckOutTime: at, TotalCost: cost}
}

func TestGroupRevenue(t *testing.T) {
	bills := []*domain.Bill{
		bill(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), 100),
		bill(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), 50),
		bill(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), 25),
		bill(time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), 1000),
	}

	daily := GroupRevenue(bills, PeriodDaily)
	assert.Equal(t, int64(1175), daily.TotalRevenue)
	assert.Equal(t, 4, daily.TotalBills)
	assert.Equal(t, []PeriodRevenue{
		{Period: "2024-01-01", Revenue: 50, Bills: 1},
		{Period: "2024-01-02", Revenue: 125, Bills: 2},
		{Period: "2024-02-10", Revenue: 1000, Bills: 1},
	}, daily.ByPeriod)

	weekly := GroupRevenue(bills, PeriodWeekly)
	assert.Equal(t, []PeriodRevenue{
		{Period: "2024-W01", Revenue: 175, Bills: 3},
		{Period: "2024-W06", Revenue: 1000, Bills: 1},
	}, weekly.ByPeriod)

	monthly := GroupRevenue(bills, PeriodMonthly)
	assert.Equal(t, []PeriodRevenue{
		{Period: "2024-01", Revenue: 175, Bills: 3},
		{Period: "2024-02", Revenue: 1000, Bills: 1},
	}, monthly.ByPeriod)

	empty := GroupRevenue(nil, PeriodDaily)
	assert.NotNil(t, empty.ByPeriod)
	assert.Zero(t, empty.TotalRevenue)
}

func TestComputeOccupancy(t *testing.T) {
	rooms := []*domain.Room{
		{Type: domain.RoomTypeSingle, Status: domain.RoomStatusOccupied},
		{Type: domain.RoomTypeSingle, Status: domain.RoomStatusEmpty},
		{Type: domain.RoomTypeSingle, Status: domain.RoomStatusEmpty},
		{Type: domain.RoomTypeDouble, Status: domain.RoomStatusOccupied},
		{Type: domain.RoomTypeDouble, Status: domain.RoomStatusBooked},
	}

	report := ComputeOccupancy(rooms)
	require.Len(t, report.RoomOccupancy, 2)

	double := report.RoomOccupancy[0]
	assert.Equal(t, "double", double.Type)
	assert.Equal(t, 2, double.TotalRooms)
	assert.Equal(t, 1, double.BookedRooms)
	assert.Equal(t, 50.0, double.OccupancyRate)

	single := report.RoomOccupancy[1]
	assert.Equal(t, "single", single.Type)
	assert.Equal(t, 2, single.EmptyRooms)
	assert.Equal(t, 33.3, single.OccupancyRate)
}

func TestService_Revenue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)

	store := memory.New()
	for i, at := range []time.Time{now.Add(-time.Hour), now.Add(-2 * time.Hour), now.AddDate(0, 0, -3)} {
		_, err := store.Bills().Create(ctx, &domain.Bill{ID: string(rune('a' + i)), CheckOutTime: at, TotalCost: 100})
		require.NoError(t, err)
	}

	svc := NewService(store.Rooms(), store.Bills(), logger.NewNop())
	svc.timeProvider = fixedTime{t: now}

	today, err := svc.Revenue(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "daily", today.Period)
	assert.Equal(t, int64(200), today.TotalRevenue)
	assert.True(t, startOfDay(now).Equal(today.From))

	week, err := svc.Revenue(ctx, &RevenueRequest{Period: "monthly", From: ptr.Ptr(now.AddDate(0, 0, -7))})
	require.NoError(t, err)
	assert.Equal(t, int64(300), week.TotalRevenue)
	require.Len(t, week.ByPeriod, 1)
	assert.Equal(t, "2024-06", week.ByPeriod[0].Period)

	_, err = svc.Revenue(ctx, &RevenueRequest{Period: "yearly"})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.Revenue(ctx, &RevenueRequest{From: ptr.Ptr(now), To: ptr.Ptr(now.Add(-time.Hour))})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestService_Occupancy(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_, err := store.Rooms().Create(ctx, &domain.Room{ID: "a", Number: "101", Type: domain.RoomTypeSingle, Status: domain.RoomStatusOccupied})
	require.NoError(t, err)

	svc := NewService(store.Rooms(), store.Bills(), logger.NewNop())
	report, err := svc.Occupancy(ctx)
	require.NoError(t, err)
	require.Len(t, report.RoomOccupancy, 1)
	assert.Equal(t, 100.0, report.RoomOccupancy[0].OccupancyRate)
}
