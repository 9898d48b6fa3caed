package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkConflictHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/check_conflict"
	createBookingHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/create_booking"
	createHallHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/create_hall"
	deleteBookingHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/delete_booking"
	deleteHallHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/delete_hall"
	getBookingHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/get_booking"
	getHallHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/get_hall"
	getHallAvailabilityHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/get_hall_availability"
	listBookingsHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/list_bookings"
	listHallsHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/list_halls"
	updateBookingHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/update_booking_status"
	updateHallHandler "github.com/seminarhub/hall-booking-service/internal/api/handlers/update_hall"
	"github.com/seminarhub/hall-booking-service/internal/api/middleware"
	"github.com/seminarhub/hall-booking-service/internal/config"
	bookingRepo "github.com/seminarhub/hall-booking-service/internal/infra/storage/booking"
	hallRepo "github.com/seminarhub/hall-booking-service/internal/infra/storage/hall"
	userDirectoryClient "github.com/seminarhub/hall-booking-service/internal/integrations/userdirectory"
	bookingsService "github.com/seminarhub/hall-booking-service/internal/service/bookings"
	conflictService "github.com/seminarhub/hall-booking-service/internal/service/conflict"
	hallsService "github.com/seminarhub/hall-booking-service/internal/service/halls"
	checkConflictUC "github.com/seminarhub/hall-booking-service/internal/usecase/check_conflict"
	createBookingUC "github.com/seminarhub/hall-booking-service/internal/usecase/create_booking"
	getHallAvailabilityUC "github.com/seminarhub/hall-booking-service/internal/usecase/get_hall_availability"
	updateBookingUC "github.com/seminarhub/hall-booking-service/internal/usecase/update_booking"
	"github.com/seminarhub/hall-booking-service/pkg/dbmetrics"
	"github.com/seminarhub/hall-booking-service/pkg/logger"
	"github.com/seminarhub/hall-booking-service/pkg/metrics"
	"github.com/seminarhub/hall-booking-service/pkg/simpletxmanager"
	"github.com/seminarhub/hall-booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting hall-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента справочника пользователей
	userClient := userDirectoryClient.NewClient(
		cfg.UserDirectory.URL,
		time.Duration(cfg.UserDirectory.Timeout)*time.Second,
		log,
	)
	log.Info("User directory client initialized (url=%s, timeout=%ds)",
		cfg.UserDirectory.URL, cfg.UserDirectory.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		hallRepository    *hallRepo.Repository
	)

	// Интерфейс transaction manager, используемый в usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		hallRepository = hallRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		hallRepository = hallRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	conflictChecker := conflictService.NewChecker(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	hallSvc := hallsService.NewService(hallRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		hallRepository,
		conflictChecker,
		userClient,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		conflictChecker,
		txMgr,
		log,
	)
	checkConflictUseCase := checkConflictUC.NewUseCase(conflictChecker, log)
	getHallAvailabilityUseCase := getHallAvailabilityUC.NewUseCase(
		bookingRepository,
		hallRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	getHallAvailability := getHallAvailabilityHandler.NewHandler(getHallAvailabilityUseCase, log)
	createHall := createHallHandler.NewHandler(hallSvc, log)
	getHall := getHallHandler.NewHandler(hallSvc, log)
	listHalls := listHallsHandler.NewHandler(hallSvc, log)
	updateHall := updateHallHandler.NewHandler(hallSvc, log)
	deleteHall := deleteHallHandler.NewHandler(hallSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник залов
	api.HandleFunc("/halls", listHalls.Handle).Methods(http.MethodGet)
	api.HandleFunc("/halls/{hallId}", getHall.Handle).Methods(http.MethodGet)

	// Занятость зала на дату
	api.HandleFunc("/halls/{hallId}/availability", getHallAvailability.Handle).Methods(http.MethodGet)

	// Предварительная проверка конфликта
	api.HandleFunc("/bookings/check-conflict", checkConflict.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Изменение статуса (только администраторы)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Управление залами (только администраторы) ---
	protected.HandleFunc("/halls", createHall.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/halls/{hallId}", updateHall.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/halls/{hallId}", deleteHall.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
