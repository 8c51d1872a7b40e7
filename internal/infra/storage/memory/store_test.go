package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/bill"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

func newRoom(id, number string) *domain.Room {
	return &domain.Room{ID: id, Number: number, Type: domain.RoomTypeSingle, Status: domain.RoomStatusEmpty}
}

func TestRoomRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	store := New()
	rooms := store.Rooms()

	_, err := rooms.Create(ctx, newRoom("b", "102"))
	require.NoError(t, err)
	_, err = rooms.Create(ctx, newRoom("a", "101"))
	require.NoError(t, err)

	_, err = rooms.Create(ctx, newRoom("c", "101"))
	assert.ErrorIs(t, err, room.ErrRoomNumberExists)

	list, err := rooms.List(ctx, domain.RoomFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "101", list[0].Number)

	got, err := rooms.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Status = domain.RoomStatusBooked
	require.NoError(t, rooms.Update(ctx, got))

	booked := domain.RoomStatusBooked
	list, err = rooms.List(ctx, domain.RoomFilter{Status: &booked})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)

	require.NoError(t, rooms.Delete(ctx, "a"))
	_, err = rooms.GetByID(ctx, "a")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
	assert.ErrorIs(t, rooms.Delete(ctx, "a"), room.ErrRoomNotFound)
	assert.ErrorIs(t, rooms.Update(ctx, newRoom("a", "101")), room.ErrRoomNotFound)

	// номер освобождается после удаления
	_, err = rooms.Create(ctx, newRoom("d", "101"))
	assert.NoError(t, err)
}

func TestRoomRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Rooms().Create(ctx, newRoom("a", "101"))
	require.NoError(t, err)

	got, err := store.Rooms().GetByID(ctx, "a")
	require.NoError(t, err)
	got.Status = domain.RoomStatusOccupied

	again, err := store.Rooms().GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusEmpty, again.Status)
}

func TestStore_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, err := store.Rooms().Create(ctx, newRoom("a", "101"))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.DoSerializable(ctx, func(ctx context.Context) error {
		rm, err := store.Rooms().GetByID(ctx, "a")
		if err != nil {
			return err
		}
		rm.Occupy(domain.Stay{Occupant: domain.NewIndividual(domain.Guest{Name: "Alice"}), BookingType: domain.BookingDaily, Duration: 1})
		if err := store.Rooms().Update(ctx, rm); err != nil {
			return err
		}
		if _, err := store.Bills().Create(ctx, &domain.Bill{ID: "b1", RoomID: "a"}); err != nil {
			return err
		}
		if _, err := store.Rooms().Create(ctx, newRoom("x", "999")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	rm, err := store.Rooms().GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusEmpty, rm.Status)
	assert.Nil(t, rm.Stay)

	_, err = store.Bills().GetByID(ctx, "b1")
	assert.ErrorIs(t, err, bill.ErrBillNotFound)

	_, err = store.Rooms().GetByID(ctx, "x")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestStore_RollbackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := New()

	assert.Panics(t, func() {
		_ = store.Do(ctx, func(ctx context.Context) error {
			_, _ = store.Rooms().Create(ctx, newRoom("a", "101"))
			panic("boom")
		})
	})

	_, err := store.Rooms().GetByID(ctx, "a")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestStore_NestedReusesTransaction(t *testing.T) {
	ctx := context.Background()
	store := New()

	err := store.DoSerializable(ctx, func(ctx context.Context) error {
		return store.Do(ctx, func(ctx context.Context) error {
			_, err := store.Rooms().Create(ctx, newRoom("a", "101"))
			return err
		})
	})
	require.NoError(t, err)

	_, err = store.Rooms().GetByID(ctx, "a")
	assert.NoError(t, err)
}

func TestStore_TransactionsAreSerialized(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, err := store.Rooms().Create(ctx, newRoom("a", "101"))
	require.NoError(t, err)

	const workers = 20
	var (
		wg        sync.WaitGroup
		successMu sync.Mutex
		successes int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.DoSerializable(ctx, func(ctx context.Context) error {
				rm, err := store.Rooms().GetByID(ctx, "a")
				if err != nil {
					return err
				}
				if !rm.CanCheckIn() {
					return errors.New("taken")
				}
				rm.Occupy(domain.Stay{BookingType: domain.BookingHourly, Duration: 1})
				return store.Rooms().Update(ctx, rm)
			})
			if err == nil {
				successMu.Lock()
				successes++
				successMu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestBillRepository_List(t *testing.T) {
	ctx := context.Background()
	store := New()
	bills := store.Bills()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"b1", "b2", "b3", "b4"} {
		_, err := bills.Create(ctx, &domain.Bill{
			ID:           id,
			CheckOutTime: base.Add(time.Duration(i) * time.Hour),
			Guests:       []domain.Guest{{Name: id}},
		})
		require.NoError(t, err)
	}

	all, err := bills.List(ctx, domain.BillFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "b4", all[0].ID)
	assert.Equal(t, "b1", all[3].ID)

	limited, err := bills.List(ctx, domain.BillFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "b3", limited[1].ID)

	from := base.Add(time.Hour)
	to := base.Add(2 * time.Hour)
	ranged, err := bills.List(ctx, domain.BillFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "b3", ranged[0].ID)
	assert.Equal(t, "b2", ranged[1].ID)

	got, err := bills.GetByID(ctx, "b2")
	require.NoError(t, err)
	got.Guests[0].Name = "changed"
	again, err := bills.GetByID(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, "b2", again.Guests[0].Name)
}
