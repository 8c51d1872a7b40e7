package room

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type fakeRow struct {
	values []interface{}
}

func (f fakeRow) Scan(dest ...interface{}) error {
	if len(dest) != len(f.values) {
		return errors.New("column count mismatch")
	}
	for i, v := range f.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *domain.RoomType:
			*d = domain.RoomType(v.(string))
		case *domain.RoomStatus:
			*d = domain.RoomStatus(v.(string))
		case *int64:
			*d = v.(int64)
		case *[]byte:
			if v != nil {
				*d = v.([]byte)
			}
		case *sql.NullString:
			if err := d.Scan(v); err != nil {
				return err
			}
		case *sql.NullInt64:
			if err := d.Scan(v); err != nil {
				return err
			}
		case *sql.NullTime:
			if err := d.Scan(v); err != nil {
				return err
			}
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func TestGuestsRoundTrip(t *testing.T) {
	guests := []domain.Guest{{Name: "Alice", Phone: "+7"}, {Name: "Bob", IDCard: "X1"}}

	data, err := EncodeGuests(guests)
	require.NoError(t, err)

	decoded, err := DecodeGuests(data)
	require.NoError(t, err)
	assert.Equal(t, guests, decoded)

	empty, err := DecodeGuests(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestScanRoom_Empty(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	row := fakeRow{values: []interface{}{
		"id-1", "101", "single", "empty",
		int64(1), int64(2), int64(3), int64(4), int64(5),
		nil, nil, nil, nil, nil, nil, nil, nil,
		created, created,
	}}

	room, err := scanRoom(row)
	require.NoError(t, err)
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, domain.RoomStatusEmpty, room.Status)
	assert.Equal(t, int64(5), room.Pricing.MonthlyRate)
	assert.Nil(t, room.Stay)
}

func TestScanRoom_Occupied(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	guests, err := EncodeGuests([]domain.Guest{{Name: "Alice"}})
	require.NoError(t, err)

	row := fakeRow{values: []interface{}{
		"id-1", "101", "double", "occupied",
		int64(1), int64(2), int64(3), int64(4), int64(5),
		"individual", "", guests, "daily", int64(2), checkIn, checkIn.AddDate(0, 0, 2), int64(8),
		checkIn, checkIn,
	}}

	room, err := scanRoom(row)
	require.NoError(t, err)
	require.NotNil(t, room.Stay)
	assert.Equal(t, domain.BookingDaily, room.Stay.BookingType)
	assert.Equal(t, 2, room.Stay.Duration)
	assert.Equal(t, "Alice", room.Stay.Occupant.DisplayName())
	assert.Equal(t, int64(8), room.Stay.TotalCost)
}

func TestStayValues(t *testing.T) {
	empty, err := stayValues(nil)
	require.NoError(t, err)
	for _, v := range empty {
		assert.Nil(t, v)
	}

	values, err := stayValues(&domain.Stay{
		Occupant:    domain.NewCompany("Acme", []domain.Guest{{Name: "Bob"}}),
		BookingType: domain.BookingHourly,
		Duration:    3,
		TotalCost:   140000,
	})
	require.NoError(t, err)
	assert.Equal(t, "company", values["occupant_kind"])
	assert.Equal(t, "Acme", values["company_name"])
	assert.Equal(t, int64(140000), values["total_cost"])
	assert.Len(t, values, len(empty))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: uniqueViolation}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}
