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

	createBookingHandler "github.com/reservasalas/BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/reservasalas/BookingService/internal/api/handlers/delete_booking"
	equipmentHandler "github.com/reservasalas/BookingService/internal/api/handlers/equipment"
	getAvailabilityHandler "github.com/reservasalas/BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/reservasalas/BookingService/internal/api/handlers/get_booking"
	infrastructureHandler "github.com/reservasalas/BookingService/internal/api/handlers/infrastructure"
	listBookingsHandler "github.com/reservasalas/BookingService/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/reservasalas/BookingService/internal/api/handlers/update_booking"
	"github.com/reservasalas/BookingService/internal/api/middleware"
	"github.com/reservasalas/BookingService/internal/availability"
	"github.com/reservasalas/BookingService/internal/config"
	bookingRepo "github.com/reservasalas/BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/reservasalas/BookingService/internal/infra/storage/catalog"
	bookingsService "github.com/reservasalas/BookingService/internal/service/bookings"
	catalogService "github.com/reservasalas/BookingService/internal/service/catalog"
	createBookingUC "github.com/reservasalas/BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/reservasalas/BookingService/internal/usecase/get_availability"
	updateBookingUC "github.com/reservasalas/BookingService/internal/usecase/update_booking"
	"github.com/reservasalas/BookingService/pkg/dbmetrics"
	"github.com/reservasalas/BookingService/pkg/logger"
	"github.com/reservasalas/BookingService/pkg/metrics"
	"github.com/reservasalas/BookingService/pkg/simpletxmanager"
	"github.com/reservasalas/BookingService/pkg/txmanager"
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

	log.Info("Starting BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Загружаем опорную временную зону для нормализации дат
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Reference timezone: %s, min lead time: %d minutes",
		cfg.Booking.Timezone, cfg.Booking.MinLeadTimeMinutes)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Движок доступности: свободные ресурсы, конфликты, политика времени
	availabilitySvc := availability.NewService(
		bookingRepository,
		catalogRepository,
		location,
		cfg.Booking.MinLeadTimeMinutes,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, location, log)
	catalogSvc := catalogService.NewService(catalogRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, availabilitySvc, txMgr, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, availabilitySvc, txMgr, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(availabilitySvc, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	infrastructure := infrastructureHandler.NewHandler(catalogSvc, log)
	equipment := equipmentHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Идентификация по заголовкам нужна и на публичных маршрутах:
	// админ видит ресурсы, скрытые правилами ограничений
	r.Use(middleware.Identity)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные ресурсы на слот
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Чтение бронирований
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Чтение каталога ресурсов
	api.HandleFunc("/infrastructure", infrastructure.List).Methods(http.MethodGet)
	api.HandleFunc("/infrastructure/{infraId}", infrastructure.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment", equipment.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{equipmentId}", equipment.Get).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Каталог ресурсов ---
	protected.HandleFunc("/infrastructure", infrastructure.Create).Methods(http.MethodPost)
	protected.HandleFunc("/infrastructure/{infraId}", infrastructure.Update).Methods(http.MethodPut)
	protected.HandleFunc("/infrastructure/{infraId}", infrastructure.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/equipment", equipment.Create).Methods(http.MethodPost)
	protected.HandleFunc("/equipment/{equipmentId}", equipment.Update).Methods(http.MethodPut)
	protected.HandleFunc("/equipment/{equipmentId}", equipment.Delete).Methods(http.MethodDelete)

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
