package check_in

import (
	"context"
	"errors"
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
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.StayEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.StayEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *countingMetrics) IncCheckIn(bookingType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[bookingType]++
}

var testNow = time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

type fixture struct {
	uc        *UseCase
	store     *memory.Store
	publisher *recordingPublisher
	metrics   *countingMetrics
}

func newFixture(t *testing.T, rooms ...*domain.Room) *fixture {
	t.Helper()

	store := memory.New()
	for _, r := range rooms {
		_, err := store.Rooms().Create(context.Background(), r)
		require.NoError(t, err)
	}

	publisher := &recordingPublisher{}
	metrics := &countingMetrics{}
	uc := NewUseCase(store.Rooms(), store, keylock.New(), publisher, metrics, logger.NewNop())
	uc.timeProvider = fixedTime{t: testNow}

	return &fixture{uc: uc, store: store, publisher: publisher, metrics: metrics}
}

func emptyRoom(id, number string) *domain.Room {
	return &domain.Room{
		ID:      id,
		Number:  number,
		Type:    domain.RoomTypeSingle,
		Status:  domain.RoomStatusEmpty,
		Pricing: pricing.DefaultSchedule(),
	}
}

func individual(roomID string, bt domain.BookingType, duration int) *Request {
	return &Request{
		RoomID:      roomID,
		Kind:        domain.OccupantIndividual,
		Guests:      []domain.Guest{{Name: "Alice", Phone: "+79990000000"}},
		BookingType: bt,
		Duration:    duration,
	}
}

func TestUseCase_Execute_Individual(t *testing.T) {
	f := newFixture(t, emptyRoom("r1", "101"))

	resp, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingHourly, 3))
	require.NoError(t, err)

	room := resp.Room
	require.NotNil(t, room.Stay)
	assert.Equal(t, domain.RoomStatusOccupied, room.Status)
	assert.Equal(t, int64(140000), room.Stay.TotalCost)
	assert.True(t, testNow.Equal(room.Stay.CheckInTime))
	assert.True(t, testNow.Add(3*time.Hour).Equal(room.Stay.CheckOutTime))
	assert.Equal(t, "Alice", room.Stay.Occupant.DisplayName())
	assert.Empty(t, room.Stay.Occupant.CompanyName)

	stored, err := f.store.Rooms().GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusOccupied, stored.Status)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.SubjectCheckedIn, f.publisher.events[0].Subject)
	assert.Equal(t, 1, f.metrics.counts["hourly"])
}

func TestUseCase_Execute_Daily(t *testing.T) {
	f := newFixture(t, emptyRoom("r1", "101"))

	resp, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingDaily, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(1500000), resp.Room.Stay.TotalCost)
	assert.True(t, time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC).Equal(resp.Room.Stay.CheckOutTime))
}

func TestUseCase_Execute_CompanyDropsUnnamedGuests(t *testing.T) {
	f := newFixture(t, emptyRoom("r1", "101"))

	resp, err := f.uc.Execute(context.Background(), &Request{
		RoomID:      "r1",
		Kind:        domain.OccupantCompany,
		CompanyName: "Acme",
		Guests:      []domain.Guest{{Name: "A"}, {Name: ""}, {Name: "B"}},
		BookingType: domain.BookingMonthly,
		Duration:    1,
	})
	require.NoError(t, err)

	occupant := resp.Room.Stay.Occupant
	assert.Equal(t, "Acme", occupant.DisplayName())
	assert.Equal(t, []domain.Guest{{Name: "A"}, {Name: "B"}}, occupant.Guests)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"nil request", nil, ErrInvalidInput},
		{"empty room id", individual("", domain.BookingDaily, 1), ErrInvalidInput},
		{"zero duration", individual("r1", domain.BookingDaily, 0), ErrInvalidDuration},
		{"negative duration", individual("r1", domain.BookingHourly, -2), ErrInvalidDuration},
		{"unknown booking type", individual("r1", "weekly", 1), ErrInvalidBookingType},
		{"blank guest name", &Request{RoomID: "r1", Kind: domain.OccupantIndividual, Guests: []domain.Guest{{Name: "  "}}, BookingType: domain.BookingDaily, Duration: 1}, ErrInvalidOccupant},
		{"no guests", &Request{RoomID: "r1", Kind: domain.OccupantIndividual, BookingType: domain.BookingDaily, Duration: 1}, ErrInvalidOccupant},
		{"blank company", &Request{RoomID: "r1", Kind: domain.OccupantCompany, Guests: []domain.Guest{{Name: "A"}}, BookingType: domain.BookingDaily, Duration: 1}, ErrInvalidOccupant},
		{"company without named guests", &Request{RoomID: "r1", Kind: domain.OccupantCompany, CompanyName: "Acme", Guests: []domain.Guest{{Name: ""}}, BookingType: domain.BookingDaily, Duration: 1}, ErrInvalidOccupant},
		{"unknown kind", &Request{RoomID: "r1", Kind: "robot", Guests: []domain.Guest{{Name: "A"}}, BookingType: domain.BookingDaily, Duration: 1}, ErrInvalidOccupant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, emptyRoom("r1", "101"))

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			room, err := f.store.Rooms().GetByID(context.Background(), "r1")
			require.NoError(t, err)
			assert.Equal(t, domain.RoomStatusEmpty, room.Status)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), individual("missing", domain.BookingDaily, 1))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_TwiceFails(t *testing.T) {
	f := newFixture(t, emptyRoom("r1", "101"))

	_, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingDaily, 1))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), individual("r1", domain.BookingDaily, 1))
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
}

func TestUseCase_Execute_BookedRoomNotAvailable(t *testing.T) {
	room := emptyRoom("r1", "101")
	room.Status = domain.RoomStatusBooked
	f := newFixture(t, room)

	_, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingDaily, 1))
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
}

func TestUseCase_Execute_UnavailableRoomWinsOverBadRequest(t *testing.T) {
	badRequests := []struct {
		name string
		req  *Request
	}{
		{"company without named guests", &Request{RoomID: "r1", Kind: domain.OccupantCompany, CompanyName: "Acme", Guests: []domain.Guest{{Name: ""}}, BookingType: domain.BookingDaily, Duration: 1}},
		{"blank guest name", &Request{RoomID: "r1", Kind: domain.OccupantIndividual, Guests: []domain.Guest{{Name: " "}}, BookingType: domain.BookingDaily, Duration: 1}},
		{"zero duration", individual("r1", domain.BookingDaily, 0)},
		{"unknown booking type", individual("r1", "weekly", 1)},
	}

	for _, tt := range badRequests {
		t.Run("occupied/"+tt.name, func(t *testing.T) {
			f := newFixture(t, emptyRoom("r1", "101"))
			_, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingHourly, 2))
			require.NoError(t, err)

			_, err = f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrRoomNotAvailable)

			room, err := f.store.Rooms().GetByID(context.Background(), "r1")
			require.NoError(t, err)
			require.NotNil(t, room.Stay)
			assert.Equal(t, domain.RoomStatusOccupied, room.Status)
			assert.Equal(t, "Alice", room.Stay.Occupant.DisplayName())
			assert.Equal(t, domain.BookingHourly, room.Stay.BookingType)
			assert.Len(t, f.publisher.events, 1)
		})

		t.Run("booked/"+tt.name, func(t *testing.T) {
			booked := emptyRoom("r1", "101")
			booked.Status = domain.RoomStatusBooked
			f := newFixture(t, booked)

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrRoomNotAvailable)

			room, err := f.store.Rooms().GetByID(context.Background(), "r1")
			require.NoError(t, err)
			assert.Equal(t, domain.RoomStatusBooked, room.Status)
			assert.Nil(t, room.Stay)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestUseCase_Execute_LongStay(t *testing.T) {
	f := newFixture(t, emptyRoom("r1", "101"))

	resp, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingHourly, 10001))
	require.NoError(t, err)
	assert.Equal(t, int64(120000+9999*20000), resp.Room.Stay.TotalCost)
	assert.True(t, testNow.Add(10001*time.Hour).Equal(resp.Room.Stay.CheckOutTime))
}

func TestUseCase_Execute_ConcurrentCheckIns(t *testing.T) {
	f := newFixture(t, emptyRoom("r1", "101"))

	const workers = 16
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		successes    int
		notAvailable int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingHourly, 1))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrRoomNotAvailable):
				notAvailable++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, notAvailable)
}

func TestUseCase_Execute_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t, emptyRoom("r1", "101"))
	f.publisher.err = errors.New("nats down")

	resp, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingDaily, 1))
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusOccupied, resp.Room.Status)
}

func TestUseCase_Execute_UsesRoomPricing(t *testing.T) {
	room := emptyRoom("r1", "101")
	room.Pricing = domain.PricingSchedule{HourlyFirst: 10, HourlySecond: 5, HourlyAdditional: 1, DailyRate: 100, MonthlyRate: 1000}
	f := newFixture(t, room)

	resp, err := f.uc.Execute(context.Background(), individual("r1", domain.BookingHourly, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(18), resp.Room.Stay.TotalCost)
}
