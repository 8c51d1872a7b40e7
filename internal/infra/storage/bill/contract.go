package bill

import (
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
)

// DBExecutor интерфейс выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor
