package update_pricing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/events"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HotelService/internal/pricing"
	"github.com/m04kA/SMC-HotelService/pkg/keylock"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.StayEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e events.StayEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func fullPricing() domain.PartialSchedule {
	return domain.PartialSchedule{
		HourlyFirst:      ptr.Ptr(int64(100)),
		HourlySecond:     ptr.Ptr(int64(50)),
		HourlyAdditional: ptr.Ptr(int64(25)),
		DailyRate:        ptr.Ptr(int64(1000)),
		MonthlyRate:      ptr.Ptr(int64(20000)),
	}
}

func newUseCase(t *testing.T, rooms ...*domain.Room) (*UseCase, *memory.Store) {
	t.Helper()

	store := memory.New()
	for _, r := range rooms {
		_, err := store.Rooms().Create(context.Background(), r)
		require.NoError(t, err)
	}
	return NewUseCase(store.Rooms(), store, keylock.New(), events.NopPublisher{}, logger.NewNop()), store
}

func TestUseCase_Execute(t *testing.T) {
	uc, store := newUseCase(t, &domain.Room{ID: "r1", Number: "101", Type: domain.RoomTypeSingle, Status: domain.RoomStatusEmpty, Pricing: pricing.DefaultSchedule()})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "r1", Pricing: fullPricing()})
	require.NoError(t, err)
	assert.Equal(t, domain.PricingSchedule{HourlyFirst: 100, HourlySecond: 50, HourlyAdditional: 25, DailyRate: 1000, MonthlyRate: 20000}, resp.Room.Pricing)

	stored, err := store.Rooms().GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(20000), stored.Pricing.MonthlyRate)
}

func TestUseCase_Execute_DoesNotReRateStay(t *testing.T) {
	room := &domain.Room{ID: "r1", Number: "101", Type: domain.RoomTypeSingle, Status: domain.RoomStatusEmpty, Pricing: pricing.DefaultSchedule()}
	room.Occupy(domain.Stay{
		Occupant:     domain.NewIndividual(domain.Guest{Name: "Alice"}),
		BookingType:  domain.BookingDaily,
		Duration:     2,
		CheckInTime:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		CheckOutTime: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
		TotalCost:    1000000,
	})
	uc, store := newUseCase(t, room)

	_, err := uc.Execute(context.Background(), &Request{RoomID: "r1", Pricing: fullPricing()})
	require.NoError(t, err)

	stored, err := store.Rooms().GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusOccupied, stored.Status)
	require.NotNil(t, stored.Stay)
	assert.Equal(t, int64(1000000), stored.Stay.TotalCost)
	assert.Equal(t, int64(1000), stored.Pricing.DailyRate)
}

func TestUseCase_Execute_InvalidPricing(t *testing.T) {
	uc, store := newUseCase(t, &domain.Room{ID: "r1", Number: "101", Type: domain.RoomTypeSingle, Status: domain.RoomStatusEmpty, Pricing: pricing.DefaultSchedule()})

	missing := fullPricing()
	missing.DailyRate = nil
	_, err := uc.Execute(context.Background(), &Request{RoomID: "r1", Pricing: missing})
	assert.ErrorIs(t, err, ErrInvalidPricing)

	negative := fullPricing()
	negative.HourlyFirst = ptr.Ptr(int64(-1))
	_, err = uc.Execute(context.Background(), &Request{RoomID: "r1", Pricing: negative})
	assert.ErrorIs(t, err, ErrInvalidPricing)

	stored, err := store.Rooms().GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultSchedule(), stored.Pricing)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{RoomID: "missing", Pricing: fullPricing()})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(context.Background(), &Request{Pricing: fullPricing()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_PublishesEventAtProviderTime(t *testing.T) {
	store := memory.New()
	_, err := store.Rooms().Create(context.Background(), &domain.Room{ID: "r1", Number: "101", Type: domain.RoomTypeSingle, Status: domain.RoomStatusEmpty, Pricing: pricing.DefaultSchedule()})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	uc := NewUseCase(store.Rooms(), store, keylock.New(), publisher, logger.NewNop())
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	uc.timeProvider = fixedTime{t: now}

	_, err = uc.Execute(context.Background(), &Request{RoomID: "r1", Pricing: fullPricing()})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, events.SubjectPricingUpdated, event.Subject)
	assert.Equal(t, "101", event.RoomNumber)
	assert.True(t, now.Equal(event.OccurredAt))
}
