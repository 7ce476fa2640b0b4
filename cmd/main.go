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

	cancelBookingHandler "github.com/garage-ms/availability-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/garage-ms/availability-service/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/garage-ms/availability-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/garage-ms/availability-service/internal/api/handlers/get_booking"
	getSettingsHandler "github.com/garage-ms/availability-service/internal/api/handlers/get_settings"
	getTechnicianBookingsHandler "github.com/garage-ms/availability-service/internal/api/handlers/get_technician_bookings"
	updateSettingsHandler "github.com/garage-ms/availability-service/internal/api/handlers/update_settings"
	"github.com/garage-ms/availability-service/internal/api/middleware"
	"github.com/garage-ms/availability-service/internal/config"
	bookingRepo "github.com/garage-ms/availability-service/internal/infra/storage/booking"
	settingsRepo "github.com/garage-ms/availability-service/internal/infra/storage/settings"
	technicianRepo "github.com/garage-ms/availability-service/internal/infra/storage/technician"
	catalogClient "github.com/garage-ms/availability-service/internal/integrations/servicecatalog"
	"github.com/garage-ms/availability-service/internal/lock"
	bookingsService "github.com/garage-ms/availability-service/internal/service/bookings"
	settingsService "github.com/garage-ms/availability-service/internal/service/settings"
	createBookingUC "github.com/garage-ms/availability-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/garage-ms/availability-service/internal/usecase/get_availability"
	"github.com/garage-ms/availability-service/pkg/logger"
	"github.com/garage-ms/availability-service/pkg/metrics"
	"github.com/garage-ms/availability-service/pkg/txmanager"
)

const dbStatsInterval = 10 * time.Second

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting availability-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, dbStatsInterval, stopMetricsCh)
		log.Info("Database connection pool metrics collection started")
	}

	// Booking lock store. Left nil when disabled; the use case falls back
	// to the serializable transaction alone.
	var bookingLocker createBookingUC.Locker
	if cfg.Redis.Enabled {
		redisLock, err := lock.NewRedisLock(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisLock.Close()
		bookingLocker = redisLock
		log.Info("Booking lock store connected (redis=%s)", cfg.Redis.Addr)
	}

	// Integration clients
	serviceCatalog := catalogClient.NewClient(
		cfg.ServiceCatalog.URL,
		time.Duration(cfg.ServiceCatalog.Timeout)*time.Second,
		log,
	)
	log.Info("Service catalog client initialized (url=%s, timeout=%ds)",
		cfg.ServiceCatalog.URL, cfg.ServiceCatalog.Timeout)

	// Repositories
	bookingRepository := bookingRepo.NewRepository(db)
	technicianRepository := technicianRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, txManager, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		technicianRepository,
		bookingRepository,
		settingsRepository,
		serviceCatalog,
		txManager,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		technicianRepository,
		settingsRepository,
		serviceCatalog,
		txManager,
		bookingLocker,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getTechnicianBookings := getTechnicianBookingsHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/technicians/{technicianId}/bookings", getTechnicianBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
