package check_out

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	checkOut "github.com/m04kA/SMC-HotelService/internal/usecase/check_out"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
)

const roomID = "0b7f5a52-4a4c-4f6e-9a52-3d8f0c1e2a10"

type fakeUseCase struct {
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkOut.Request) (*checkOut.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	return &checkOut.Response{
		Room: &domain.Room{ID: req.RoomID, Number: "101", Status: domain.RoomStatusEmpty},
		Bill: &domain.Bill{
			ID:           "bill-1",
			RoomID:       req.RoomID,
			RoomNumber:   "101",
			OccupantName: "Иванов",
			BookingType:  domain.BookingDaily,
			CheckInTime:  now.Add(-24 * time.Hour),
			CheckOutTime: now,
			TotalCost:    500000,
		},
	}, nil
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/"+id+"/checkout", nil)
	r = mux.SetURLVars(r, map[string]string{"roomId": id})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	w := serve(NewHandler(&fakeUseCase{}, logger.NewNop()), roomID)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CheckOutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "empty", resp.Room.Status)
	assert.Equal(t, int64(500000), resp.Bill.TotalCost)
	assert.Equal(t, "Иванов", resp.Bill.OccupantName)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{"bad room id", "abc", nil, http.StatusBadRequest},
		{"not found", roomID, checkOut.ErrRoomNotFound, http.StatusNotFound},
		{"not occupied", roomID, checkOut.ErrRoomNotOccupied, http.StatusConflict},
		{"internal", roomID, checkOut.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), tt.id)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
