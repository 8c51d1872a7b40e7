package check_out

import (
	billModels "github.com/m04kA/SMC-HotelService/internal/service/bills/models"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	checkOut "github.com/m04kA/SMC-HotelService/internal/usecase/check_out"
)

// CheckOutResponse освобождённая комната и выставленный счёт
type CheckOutResponse struct {
	Room *roomModels.RoomResponse `json:"room"`
	Bill *billModels.BillResponse `json:"bill"`
}

func FromUseCaseResponse(resp *checkOut.Response) *CheckOutResponse {
	return &CheckOutResponse{
		Room: roomModels.FromDomainRoom(resp.Room),
		Bill: billModels.FromDomainBill(resp.Bill),
	}
}
