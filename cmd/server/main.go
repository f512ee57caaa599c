package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-RepairBooking/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-RepairBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-RepairBooking/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-RepairBooking/internal/api/handlers/get_available_slots"
	listBookingsHandler "github.com/m04kA/SMC-RepairBooking/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/m04kA/SMC-RepairBooking/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-RepairBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RepairBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-RepairBooking/internal/infra/storage/booking"
	bookingsService "github.com/m04kA/SMC-RepairBooking/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-RepairBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-RepairBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-RepairBooking/pkg/logger"
	"github.com/m04kA/SMC-RepairBooking/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-RepairBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	schedule, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	log.Info("Schedule: closed=%s, slots=%d, service types=%d",
		schedule.ClosedWeekday, len(schedule.TimeSlots), len(schedule.ServiceTypes))

	// Инициализируем метрики (если включены)
	// nil коллектор безопасен: счётчики просто не пишутся
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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

	// Инициализируем репозитории, сервисы и use cases
	bookingRepository := bookingRepo.NewRepository(db)

	bookingSvc := bookingsService.NewService(bookingRepository, metricsCollector, log)

	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, schedule, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, schedule, log)

	// Инициализируем handlers
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, "маршрут не найден")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondMethodNotAllowed(w)
	})

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
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
