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
	"github.com/rs/cors"

	createBookingHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/delete_booking"
	getAvailableDaysHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/get_available_slots"
	getBookedTimesHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/get_booked_times"
	getSettingsHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/list_bookings"
	updateSettingsHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/update_settings"
	verifyPasswordHandler "github.com/hsnkrlr/berber-randevu/internal/api/handlers/verify_password"
	"github.com/hsnkrlr/berber-randevu/internal/api/middleware"
	"github.com/hsnkrlr/berber-randevu/internal/config"
	bookingRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/booking"
	settingsRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/settings"
	bookingsService "github.com/hsnkrlr/berber-randevu/internal/service/bookings"
	settingsService "github.com/hsnkrlr/berber-randevu/internal/service/settings"
	createBookingUC "github.com/hsnkrlr/berber-randevu/internal/usecase/create_booking"
	getAvailableDaysUC "github.com/hsnkrlr/berber-randevu/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/hsnkrlr/berber-randevu/internal/usecase/get_available_slots"
	"github.com/hsnkrlr/berber-randevu/pkg/logger"
	"github.com/hsnkrlr/berber-randevu/pkg/metrics"
	"github.com/hsnkrlr/berber-randevu/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting berber-randevu...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize repositories
	bookingRepository := bookingRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Initialize services
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Initialize use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		log,
	)
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		log,
	)

	// Initialize handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getBookedTimes := getBookedTimesHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	verifyPassword := verifyPasswordHandler.NewHandler(settingsSvc, log)

	// Start the retention sweeper. Stale bookings are pruned once at
	// startup and then on a fixed interval.
	stopSweeperCh := make(chan struct{})
	go runRetentionSweeper(bookingSvc, cfg.Retention.SweepIntervalMinutes, stopSweeperCh, log)

	// Set up the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Business settings for the storefront (password hash stripped)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Booking horizon with per-day availability
	api.HandleFunc("/days", getAvailableDays.Handle).Methods(http.MethodGet)

	// Slots of a single day
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Occupied (date, time) pairs, no customer data
	api.HandleFunc("/bookings/times", getBookedTimes.Handle).Methods(http.MethodGet)

	// Booking admission
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Admin password check for the panel login
	api.HandleFunc("/admin/verify-password", verifyPassword.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (require X-Admin-Password header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(settingsSvc, log))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// CORS for the storefront and the admin panel
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", middleware.AdminPasswordHeader},
	}).Handler(r)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopSweeperCh)

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

// runRetentionSweeper prunes bookings older than the retention window,
// immediately and then every intervalMinutes until stopCh is closed.
func runRetentionSweeper(svc *bookingsService.Service, intervalMinutes int, stopCh <-chan struct{}, log *logger.Logger) {
	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		removed, err := svc.PruneExpired(ctx)
		if err != nil {
			log.Error("Retention sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Info("Retention sweep removed %d expired bookings", removed)
		}
	}

	sweep()

	ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sweep()
		case <-stopCh:
			log.Info("Retention sweeper stopped")
			return
		}
	}
}
