package dashboard

// Stats сводка для дашборда
type Stats struct {
	TotalRooms     int   `json:"totalRooms"`
	EmptyRooms     int   `json:"emptyRooms"`
	OccupiedRooms  int   `json:"occupiedRooms"`
	BookedRooms    int   `json:"bookedRooms"`
	OccupancyRate  int   `json:"occupancyRate"` // проценты, 0..100
	TodayRevenue   int64 `json:"todayRevenue"`
	TodayCheckOuts int   `json:"todayCheckOuts"`
}
