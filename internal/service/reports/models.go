package reports

import "time"

// Period группировка отчёта по выручке
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// RevenueRequest параметры отчёта по выручке
// По умолчанию: группировка по дням, с начала текущего дня до текущего момента
type RevenueRequest struct {
	Period string
	From   *time.Time
	To     *time.Time
}

// PeriodRevenue выручка за один период
type PeriodRevenue struct {
	Period  string `json:"period"` // 2006-01-02, 2006-W02 или 2006-01
	Revenue int64  `json:"revenue"`
	Bills   int    `json:"bills"`
}

// RevenueReport отчёт по выручке
type RevenueReport struct {
	Period       string          `json:"period"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	TotalRevenue int64           `json:"totalRevenue"`
	TotalBills   int             `json:"totalBills"`
	ByPeriod     []PeriodRevenue `json:"byPeriod"`
}

// TypeOccupancy загрузка комнат одного типа
type TypeOccupancy struct {
	Type          string  `json:"type"`
	TotalRooms    int     `json:"totalRooms"`
	OccupiedRooms int     `json:"occupiedRooms"`
	EmptyRooms    int     `json:"emptyRooms"`
	BookedRooms   int     `json:"bookedRooms"`
	OccupancyRate float64 `json:"occupancyRate"` // проценты, один знак после запятой
}

// OccupancyReport загрузка по типам комнат
type OccupancyReport struct {
	RoomOccupancy []TypeOccupancy `json:"roomOccupancy"`
}
