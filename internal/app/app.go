// Package app собирает зависимости сервиса и HTTP-роутер
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	checkInHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_out"
	createRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/delete_room"
	getBillHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_bill"
	getCurrentCostHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_current_cost"
	getDashboardHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_dashboard"
	getOccupancyReportHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_occupancy_report"
	getRevenueReportHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_revenue_report"
	getRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room"
	getRoomGuestsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room_guests"
	listBillsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_bills"
	listRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_rooms"
	updatePricingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_pricing"
	updateRoomStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_room_status"
	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/events"
	"github.com/m04kA/SMC-HotelService/internal/infra/migrations"
	billRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/bill"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/memory"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	billsService "github.com/m04kA/SMC-HotelService/internal/service/bills"
	dashboardService "github.com/m04kA/SMC-HotelService/internal/service/dashboard"
	reportsService "github.com/m04kA/SMC-HotelService/internal/service/reports"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	checkInUC "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/SMC-HotelService/internal/usecase/check_out"
	updatePricingUC "github.com/m04kA/SMC-HotelService/internal/usecase/update_pricing"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/keylock"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

var (
	ErrOpenDatabase = errors.New("app: failed to open database")
	ErrMigrate      = errors.New("app: failed to apply migrations")
	ErrEvents       = errors.New("app: failed to connect to event broker")
)

type roomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

type billRepository interface {
	Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	List(ctx context.Context, filter domain.BillFilter) ([]*domain.Bill, error)
}

type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, event events.StayEvent) error
	Close() error
}

// storage репозитории выбранного драйвера
type storage struct {
	rooms     roomRepository
	bills     billRepository
	txManager transactionManager
	ping      func(ctx context.Context) error
}

// App собранный сервис
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	db            *sql.DB
	stopMetricsCh chan struct{}
	publisher     publisher
	storage       storage

	handler http.Handler
}

// New открывает хранилище, подключается к брокеру событий и собирает роутер
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{
		cfg:           cfg,
		log:           log,
		stopMetricsCh: make(chan struct{}),
	}

	// Метрики (если включены); nil безопасен для всех потребителей
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	if err := a.openStorage(ctx); err != nil {
		a.Close()
		return nil, err
	}

	if err := a.openPublisher(); err != nil {
		a.Close()
		return nil, err
	}

	a.handler = a.buildRouter()
	return a, nil
}

// Handler корневой HTTP-обработчик
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close останавливает сбор метрик, закрывает брокер и базу
func (a *App) Close() error {
	select {
	case <-a.stopMetricsCh:
	default:
		close(a.stopMetricsCh)
	}

	var errs []error
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) openStorage(ctx context.Context) error {
	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		store := memory.New()
		a.storage = storage{
			rooms:     store.Rooms(),
			bills:     store.Bills(),
			txManager: store,
			ping:      func(context.Context) error { return nil },
		}
		a.log.Info("Using in-memory storage")
		return nil

	case config.DriverPostgres:
		return a.openPostgres(ctx)

	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrOpenDatabase, a.cfg.Storage.Driver)
	}
}

func (a *App) openPostgres(ctx context.Context) error {
	dbCfg := a.cfg.Database

	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}
	a.db = db

	// Настраиваем connection pool
	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dbCfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrOpenDatabase, err)
	}
	a.log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		dbCfg.Host, dbCfg.Port, dbCfg.DBName)

	// С nil-метриками обёртка только пробрасывает вызовы
	wrapped := dbmetrics.WrapWithDefault(db, a.metrics, a.stopMetricsCh)
	if a.metrics != nil {
		a.log.Info("Database metrics collection started")
	}

	if dbCfg.AutoMigrate {
		migrator, err := migrations.NewMigrator(wrapped.Unwrap(), a.log)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMigrate, err)
		}
		if err := migrator.Up(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrMigrate, err)
		}
	}

	a.storage = storage{
		rooms:     roomRepo.NewRepository(wrapped),
		bills:     billRepo.NewRepository(wrapped),
		txManager: txmanager.NewTransactionManager(wrapped),
		ping:      db.PingContext,
	}
	return nil
}

func (a *App) openPublisher() error {
	evCfg := a.cfg.Events
	if !evCfg.Enabled {
		a.publisher = events.NopPublisher{}
		return nil
	}

	p, err := events.NewNATSPublisher(
		evCfg.NATSURL,
		evCfg.ClientName,
		evCfg.SubjectPrefix,
		time.Duration(evCfg.ConnectTimeout)*time.Second,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEvents, err)
	}
	a.publisher = p
	a.log.Info("Stay events are published to %s (prefix=%q)", evCfg.NATSURL, evCfg.SubjectPrefix)
	return nil
}

func (a *App) buildRouter() http.Handler {
	st := a.storage
	locker := keylock.New()

	// Сервисы
	roomSvc := roomsService.NewService(st.rooms, st.txManager, locker, a.log)
	billSvc := billsService.NewService(st.bills, a.log)
	dashboardSvc := dashboardService.NewService(st.rooms, st.bills, st.txManager, a.log)
	reportSvc := reportsService.NewService(st.rooms, st.bills, a.log)

	// Use cases
	checkIn := checkInUC.NewUseCase(st.rooms, st.txManager, locker, a.publisher, a.metrics, a.log)
	checkOut := checkOutUC.NewUseCase(st.rooms, st.bills, st.txManager, locker, a.publisher, a.metrics, a.log)
	updatePricing := updatePricingUC.NewUseCase(st.rooms, st.txManager, locker, a.publisher, a.log)

	// Handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, a.log)
	createRoom := createRoomHandler.NewHandler(roomSvc, a.log)
	getRoom := getRoomHandler.NewHandler(roomSvc, a.log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, a.log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(roomSvc, a.log)
	getRoomGuests := getRoomGuestsHandler.NewHandler(roomSvc, a.log)
	getCurrentCost := getCurrentCostHandler.NewHandler(roomSvc, a.log)
	checkInH := checkInHandler.NewHandler(checkIn, a.log)
	checkOutH := checkOutHandler.NewHandler(checkOut, a.log)
	updatePricingH := updatePricingHandler.NewHandler(updatePricing, a.log)
	listBills := listBillsHandler.NewHandler(billSvc, a.log)
	getBill := getBillHandler.NewHandler(billSvc, a.log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, a.log)
	getRevenueReport := getRevenueReportHandler.NewHandler(reportSvc, a.log)
	getOccupancyReport := getOccupancyReportHandler.NewHandler(reportSvc, a.log)

	r := mux.NewRouter()
	r.Use(middleware.Logging(a.log))

	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(a.cfg.Metrics.Path, a.metrics.Handler()).Methods(http.MethodGet)
		a.log.Info("Prometheus metrics endpoint exposed at %s", a.cfg.Metrics.Path)
	}

	r.HandleFunc("/health", a.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Комнаты ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/rooms/{roomId}/status", updateRoomStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId}/guests", getRoomGuests.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/current-cost", getCurrentCost.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/pricing", updatePricingH.Handle).Methods(http.MethodPut)

	// --- Заселение и выселение ---
	api.HandleFunc("/rooms/{roomId}/checkin", checkInH.HandleIndividual).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}/checkin-company", checkInH.HandleCompany).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}/checkout", checkOutH.Handle).Methods(http.MethodPost)

	// --- Счета и отчёты ---
	api.HandleFunc("/bills", listBills.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bills/{billId}", getBill.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/stats", getDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/revenue", getRevenueReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/room-occupancy", getOccupancyReport.Handle).Methods(http.MethodGet)

	// CORS снаружи роутера, чтобы preflight OPTIONS не упирался в 405
	return middleware.CORS(a.cfg.CORS.AllowedOrigins)(r)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	if err := a.storage.ping(r.Context()); err != nil {
		a.log.Error("GET /health - Storage is unavailable: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, "хранилище недоступно")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
