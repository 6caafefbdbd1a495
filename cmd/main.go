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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingCheckinHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/booking_checkin"
	bookingCheckoutHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/booking_checkout"
	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	driveupCheckinHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/driveup_checkin"
	driveupCheckoutHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/driveup_checkout"
	employeeCancelHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/employee_cancel_booking"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getOpenSessionsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_open_sessions"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/location"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	tariffRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/tariff"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	sessionsService "github.com/m04kA/SMC-ParkingService/internal/service/sessions"
	bookingCheckinUC "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkin"
	bookingCheckoutUC "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkout"
	cancelBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/cancel_booking"
	checkAvailabilityUC "github.com/m04kA/SMC-ParkingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	driveupCheckinUC "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkin"
	driveupCheckoutUC "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkout"
	employeeCancelUC "github.com/m04kA/SMC-ParkingService/internal/usecase/employee_cancel_booking"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

func main() {
	// .env опционален, в контейнере переменные приходят из окружения
	_ = godotenv.Load()

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

	log.Info("Starting SMC-ParkingService...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		locationRepository *locationRepo.Repository
		bookingRepository  *bookingRepo.Repository
		sessionRepository  *sessionRepo.Repository
		tariffRepository   *tariffRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		locationRepository = locationRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		tariffRepository = tariffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		locationRepository = locationRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		tariffRepository = tariffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сервисы чтения
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	sessionSvc := sessionsService.NewService(sessionRepository, locationRepository, log)

	// Политика допуска
	capacityShare := cfg.Admission.BookingCapacityShare
	cancellationNotice := time.Duration(cfg.Admission.CancellationNoticeMinutes) * time.Minute

	var alerter bookingCheckoutUC.Alerter = bookingCheckoutUC.NopAlerter{}
	if cfg.Metrics.Enabled {
		alerter = metricsCollector
	}

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, locationRepository, txMgr, capacityShare, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository, locationRepository, capacityShare, log)
	driveupCheckinUseCase := driveupCheckinUC.NewUseCase(
		sessionRepository, locationRepository, txMgr, log)
	driveupCheckoutUseCase := driveupCheckoutUC.NewUseCase(
		sessionRepository, locationRepository, bookingRepository, tariffRepository, txMgr, log)
	bookingCheckinUseCase := bookingCheckinUC.NewUseCase(
		bookingRepository, locationRepository, sessionRepository, txMgr, log)
	bookingCheckoutUseCase := bookingCheckoutUC.NewUseCase(
		bookingRepository, sessionRepository, locationRepository, tariffRepository, txMgr, alerter, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository, txMgr, cancellationNotice, log)
	employeeCancelUseCase := employeeCancelUC.NewUseCase(
		bookingRepository, sessionRepository, locationRepository, txMgr, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	driveupCheckin := driveupCheckinHandler.NewHandler(driveupCheckinUseCase, log)
	driveupCheckout := driveupCheckoutHandler.NewHandler(driveupCheckoutUseCase, log)
	bookingCheckin := bookingCheckinHandler.NewHandler(bookingCheckinUseCase, log)
	bookingCheckout := bookingCheckoutHandler.NewHandler(bookingCheckoutUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	employeeCancel := employeeCancelHandler.NewHandler(employeeCancelUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOpenSessions := getOpenSessionsHandler.NewHandler(sessionSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// PUBLIC ROUTES
	api.HandleFunc("/locations/{locationId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// USER ROUTES (требуют X-User-ID header)
	user := api.PathPrefix("").Subrouter()
	user.Use(middleware.Auth)
	user.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	user.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	user.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	user.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// EMPLOYEE ROUTES (требуют X-Employee-ID header)
	employee := api.PathPrefix("/locations/{locationId}").Subrouter()
	employee.Use(middleware.EmployeeAuth)
	employee.HandleFunc("/checkin", driveupCheckin.Handle).Methods(http.MethodPost)
	employee.HandleFunc("/sessions", getOpenSessions.Handle).Methods(http.MethodGet)
	employee.HandleFunc("/sessions/{sessionId}/checkout", driveupCheckout.Handle).Methods(http.MethodPost)
	employee.HandleFunc("/bookings/{bookingId}/checkin", bookingCheckin.Handle).Methods(http.MethodPost)
	employee.HandleFunc("/bookings/{bookingId}/checkout", bookingCheckout.Handle).Methods(http.MethodPost)
	employee.HandleFunc("/bookings/{bookingId}/cancel", employeeCancel.Handle).Methods(http.MethodPatch)

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{
			"Content-Type", "X-User-ID", "X-Employee-ID", "X-Request-ID",
		}),
	)(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
