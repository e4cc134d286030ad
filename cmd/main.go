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

	addScheduleHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/add_schedule"
	aggregatePassengersHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/aggregate_passengers"
	assignGuideHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/assign_guide"
	cancelBookingHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/confirm_booking"
	confirmPaymentHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/create_booking"
	createTripHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/create_trip"
	getBookingHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/get_booking"
	getCurrentUserHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/get_current_user"
	getTransactionHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/get_transaction"
	getTripHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/get_trip"
	getTripBookingsHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/get_trip_bookings"
	getUserBookingsHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/get_user_bookings"
	initiatePaymentHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/initiate_payment"
	listTransactionsHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/list_transactions"
	listTripsHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/list_trips"
	loginUserHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/login_user"
	refundPaymentHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/refund_payment"
	registerUserHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/register_user"
	requestRefundHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/request_refund"
	updateItineraryHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/update_itinerary"
	updateTripCapacityHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/update_trip_capacity"
	validatePaymentHandler "github.com/opentrip/OTS-Backend/internal/api/handlers/validate_payment"
	"github.com/opentrip/OTS-Backend/internal/api/middleware"
	"github.com/opentrip/OTS-Backend/internal/config"
	bookingRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/booking"
	transactionRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/transaction"
	tripRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/trip"
	userRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/user"
	plannerServiceClient "github.com/opentrip/OTS-Backend/internal/integrations/plannerservice"
	authService "github.com/opentrip/OTS-Backend/internal/service/auth"
	bookingsService "github.com/opentrip/OTS-Backend/internal/service/bookings"
	transactionsService "github.com/opentrip/OTS-Backend/internal/service/transactions"
	tripsService "github.com/opentrip/OTS-Backend/internal/service/trips"
	aggregatePassengersUC "github.com/opentrip/OTS-Backend/internal/usecase/aggregate_passengers"
	createBookingUC "github.com/opentrip/OTS-Backend/internal/usecase/create_booking"
	initiatePaymentUC "github.com/opentrip/OTS-Backend/internal/usecase/initiate_payment"
	"github.com/opentrip/OTS-Backend/pkg/dbmetrics"
	"github.com/opentrip/OTS-Backend/pkg/logger"
	"github.com/opentrip/OTS-Backend/pkg/metrics"
	"github.com/opentrip/OTS-Backend/pkg/simpletxmanager"
	"github.com/opentrip/OTS-Backend/pkg/tokens"
	"github.com/opentrip/OTS-Backend/pkg/txmanager"
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

	log.Info("Starting OTS-Backend...")
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

	// Инициализируем менеджер JWT токенов
	tokenManager := tokens.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Инициализируем клиент Travel Planner
	plannerClient := plannerServiceClient.NewClient(
		cfg.PlannerService.URL,
		time.Duration(cfg.PlannerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (TravelPlanner=%s timeout=%ds)",
		cfg.PlannerService.URL, cfg.PlannerService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		tripRepository        *tripRepo.Repository
		bookingRepository     *bookingRepo.Repository
		transactionRepository *transactionRepo.Repository
		userRepository        *userRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tripRepository = tripRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tripRepository = tripRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, tokenManager, log)
	tripSvc := tripsService.NewService(tripRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, tripRepository, txMgr, log)
	transactionSvc := transactionsService.NewService(transactionRepository, bookingRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, tripRepository, txMgr, log)
	initiatePaymentUseCase := initiatePaymentUC.NewUseCase(transactionRepository, bookingRepository, txMgr, log)
	aggregatePassengersUseCase := aggregatePassengersUC.NewUseCase(bookingRepository, tripRepository, plannerClient, log)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(authSvc, log)
	loginUser := loginUserHandler.NewHandler(authSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(authSvc, log)

	createTrip := createTripHandler.NewHandler(tripSvc, log)
	getTrip := getTripHandler.NewHandler(tripSvc, log)
	listTrips := listTripsHandler.NewHandler(tripSvc, log)
	addSchedule := addScheduleHandler.NewHandler(tripSvc, log)
	assignGuide := assignGuideHandler.NewHandler(tripSvc, log)
	updateTripCapacity := updateTripCapacityHandler.NewHandler(tripSvc, log)
	updateItinerary := updateItineraryHandler.NewHandler(tripSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTripBookings := getTripBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	requestRefund := requestRefundHandler.NewHandler(bookingSvc, log)

	initiatePayment := initiatePaymentHandler.NewHandler(initiatePaymentUseCase, log)
	getTransaction := getTransactionHandler.NewHandler(transactionSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(transactionSvc, log)
	validatePayment := validatePaymentHandler.NewHandler(transactionSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(transactionSvc, log)
	refundPayment := refundPaymentHandler.NewHandler(transactionSvc, log)

	aggregatePassengers := aggregatePassengersHandler.NewHandler(aggregatePassengersUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/opentrip").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// Каталог поездок открыт на чтение
	api.HandleFunc("/trips", listTrips.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trips/{tripId}", getTrip.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// --- Пользователь ---
	protected.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)

	// --- Поездки ---
	protected.HandleFunc("/trips", createTrip.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/trips/{tripId}/schedule", addSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/trips/{tripId}/guide", assignGuide.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/trips/{tripId}/capacity", updateTripCapacity.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/trips/{tripId}/itinerary", updateItinerary.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/trips/{tripId}/bookings", getTripBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/refund", requestRefund.Handle).Methods(http.MethodPost)

	// --- Платежи ---
	protected.HandleFunc("/transactions", initiatePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/transactions", listTransactions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/transactions/{transactionId}", getTransaction.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/transactions/{transactionId}/validate", validatePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/{transactionId}/confirm", confirmPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/{transactionId}/refund", refundPayment.Handle).Methods(http.MethodPost)

	// --- Агрегация ---
	protected.HandleFunc("/aggregator/trips/{tripId}/passengers", aggregatePassengers.Handle).Methods(http.MethodGet)

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
