package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelService/internal/pricing"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelService/pkg/keylock"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewService(store.Rooms(), store, keylock.New(), logger.NewNop()), store
}

func seedOccupied(t *testing.T, store *memory.Store, bt domain.BookingType, duration int, checkIn time.Time) *domain.Room {
	t.Helper()

	room := &domain.Room{ID: "occ", Number: "301", Type: domain.RoomTypeDouble, Status: domain.RoomStatusEmpty, Pricing: pricing.DefaultSchedule()}
	cost, err := pricing.ComputeCost(room.Pricing, bt, duration)
	require.NoError(t, err)
	checkOut, err := pricing.AdvanceCheckout(checkIn, bt, duration)
	require.NoError(t, err)

	room.Occupy(domain.Stay{
		Occupant:     domain.NewCompany("Acme", []domain.Guest{{Name: "A", Phone: "1"}, {Name: "B"}}),
		BookingType:  bt,
		Duration:     duration,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		TotalCost:    cost,
	})
	_, err = store.Rooms().Create(context.Background(), room)
	require.NoError(t, err)
	return room
}

func TestService_Create(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, &models.CreateRoomRequest{Number: " 101 ", Type: "single"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "101", resp.Number)
	assert.Equal(t, "empty", resp.Status)
	assert.Equal(t, models.FromDomainPricing(pricing.DefaultSchedule()), resp.Pricing)
	assert.Nil(t, resp.TotalCost)

	resp, err = svc.Create(ctx, &models.CreateRoomRequest{
		Number:  "102",
		Type:    "double",
		Pricing: &models.PricingRequest{DailyRate: ptr.Ptr(int64(700000))},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(700000), resp.Pricing.DailyRate)
	assert.Equal(t, domain.DefaultHourlyFirst, resp.Pricing.HourlyFirst)
}

func TestService_Create_Errors(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Type: "single"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     *models.CreateRoomRequest
		wantErr error
	}{
		{"nil", nil, ErrInvalidInput},
		{"blank number", &models.CreateRoomRequest{Number: "  ", Type: "single"}, ErrInvalidInput},
		{"long number", &models.CreateRoomRequest{Number: "123456789012345678901", Type: "single"}, ErrInvalidInput},
		{"bad type", &models.CreateRoomRequest{Number: "102", Type: "suite"}, ErrInvalidInput},
		{"negative rate", &models.CreateRoomRequest{Number: "102", Type: "single", Pricing: &models.PricingRequest{MonthlyRate: ptr.Ptr(int64(-1))}}, ErrInvalidPricing},
		{"duplicate", &models.CreateRoomRequest{Number: "101", Type: "double"}, ErrRoomNumberExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_List(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "102", Type: "single"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Type: "single"})
	require.NoError(t, err)
	seedOccupied(t, store, domain.BookingDaily, 1, time.Now())

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all.Rooms, 3)
	assert.Equal(t, "101", all.Rooms[0].Number)

	occupied, err := svc.List(ctx, ptr.Ptr("occupied"))
	require.NoError(t, err)
	require.Len(t, occupied.Rooms, 1)
	assert.Equal(t, "Acme", occupied.Rooms[0].CompanyName)
	assert.Empty(t, occupied.Rooms[0].GuestName)
	assert.NotNil(t, occupied.Rooms[0].TotalCost)

	_, err = svc.List(ctx, ptr.Ptr("dirty"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Type: "single"})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Status: "booked"})
	require.NoError(t, err)
	assert.Equal(t, "booked", resp.Status)

	resp, err = svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Status: "empty"})
	require.NoError(t, err)
	assert.Equal(t, "empty", resp.Status)

	_, err = svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Status: "occupied"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	_, err = svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Status: "dirty"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	occ := seedOccupied(t, store, domain.BookingDaily, 1, time.Now())
	_, err = svc.UpdateStatus(ctx, occ.ID, &models.UpdateStatusRequest{Status: "empty"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	stored, err := store.Rooms().GetByID(ctx, occ.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusOccupied, stored.Status)
	assert.NotNil(t, stored.Stay)

	_, err = svc.UpdateStatus(ctx, "missing", &models.UpdateStatusRequest{Status: "booked"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Type: "single"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrRoomNotFound)

	occ := seedOccupied(t, store, domain.BookingHourly, 2, time.Now())
	assert.ErrorIs(t, svc.Delete(ctx, occ.ID), ErrRoomOccupied)
}

func TestService_GetGuests(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Type: "single"})
	require.NoError(t, err)

	empty, err := svc.GetGuests(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "empty", empty.Status)
	assert.NotNil(t, empty.Guests)
	assert.Empty(t, empty.Guests)

	occ := seedOccupied(t, store, domain.BookingDaily, 1, time.Now())
	guests, err := svc.GetGuests(ctx, occ.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", guests.CompanyName)
	require.Len(t, guests.Guests, 2)
	assert.Equal(t, "1", guests.Guests[0].Phone)
}

func TestService_CurrentCost(t *testing.T) {
	checkIn := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		bookingType  domain.BookingType
		duration     int
		elapsed      time.Duration
		wantRealTime bool
		wantCost     int64
		wantHours    int
	}{
		{"hourly just started", domain.BookingHourly, 3, 0, true, 80000, 0},
		{"hourly 10 minutes", domain.BookingHourly, 3, 10 * time.Minute, true, 80000, 1},
		{"hourly overstay", domain.BookingHourly, 2, 4*time.Hour + time.Minute, true, 180000, 5},
		{"daily keeps estimate", domain.BookingDaily, 2, 60 * time.Hour, false, 1000000, 60},
		{"monthly keeps estimate", domain.BookingMonthly, 1, time.Hour, false, 12000000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService(t)
			svc.timeProvider = fixedTime{t: checkIn.Add(tt.elapsed)}
			room := seedOccupied(t, store, tt.bookingType, tt.duration, checkIn)

			resp, err := svc.CurrentCost(context.Background(), room.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRealTime, resp.IsRealTime)
			assert.Equal(t, tt.wantCost, resp.CurrentCost)
			assert.Equal(t, tt.wantHours, resp.ElapsedHours)
			assert.Equal(t, "Acme", resp.OccupantName)
		})
	}
}

func TestService_CurrentCost_NotOccupied(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRoomRequest{Number: "101", Type: "single"})
	require.NoError(t, err)

	_, err = svc.CurrentCost(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRoomNotOccupied)

	_, err = svc.CurrentCost(ctx, "missing")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
