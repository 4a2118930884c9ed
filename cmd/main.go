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

	cancelBookingHandler "github.com/booktable/reservation-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/booktable/reservation-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/booktable/reservation-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/booktable/reservation-service/internal/api/handlers/get_booking"
	getMonthScheduleHandler "github.com/booktable/reservation-service/internal/api/handlers/get_month_schedule"
	getPendingRestaurantsHandler "github.com/booktable/reservation-service/internal/api/handlers/get_pending_restaurants"
	getRestaurantHandler "github.com/booktable/reservation-service/internal/api/handlers/get_restaurant"
	getRestaurantBookingsHandler "github.com/booktable/reservation-service/internal/api/handlers/get_restaurant_bookings"
	getRestaurantHoursHandler "github.com/booktable/reservation-service/internal/api/handlers/get_restaurant_hours"
	getRestaurantStatsHandler "github.com/booktable/reservation-service/internal/api/handlers/get_restaurant_stats"
	getUserBookingsHandler "github.com/booktable/reservation-service/internal/api/handlers/get_user_bookings"
	updateApprovalStatusHandler "github.com/booktable/reservation-service/internal/api/handlers/update_approval_status"
	updateBookingStatusHandler "github.com/booktable/reservation-service/internal/api/handlers/update_booking_status"
	updateRestaurantHoursHandler "github.com/booktable/reservation-service/internal/api/handlers/update_restaurant_hours"
	"github.com/booktable/reservation-service/internal/api/middleware"
	"github.com/booktable/reservation-service/internal/config"
	bookingRepo "github.com/booktable/reservation-service/internal/infra/storage/booking"
	restaurantRepo "github.com/booktable/reservation-service/internal/infra/storage/restaurant"
	analyticsService "github.com/booktable/reservation-service/internal/service/analytics"
	bookingsService "github.com/booktable/reservation-service/internal/service/bookings"
	restaurantsService "github.com/booktable/reservation-service/internal/service/restaurants"
	createBookingUC "github.com/booktable/reservation-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/booktable/reservation-service/internal/usecase/get_available_slots"
	getMonthScheduleUC "github.com/booktable/reservation-service/internal/usecase/get_month_schedule"
	transitionBookingUC "github.com/booktable/reservation-service/internal/usecase/transition_booking"
	"github.com/booktable/reservation-service/pkg/dbmetrics"
	"github.com/booktable/reservation-service/pkg/logger"
	"github.com/booktable/reservation-service/pkg/metrics"
	"github.com/booktable/reservation-service/pkg/simpletxmanager"
	"github.com/booktable/reservation-service/pkg/txmanager"
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

	log.Info("Starting reservation-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		restaurantRepository *restaurantRepo.Repository
	)

	// Интерфейс для transaction manager (используется в service и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		restaurantRepository,
		log,
	)
	restaurantSvc := restaurantsService.NewService(
		restaurantRepository,
		txMgr,
		log,
	)
	analyticsSvc := analyticsService.NewService(
		bookingRepository,
		restaurantRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		log,
	)
	getMonthScheduleUseCase := getMonthScheduleUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		log,
	)
	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMonthSchedule := getMonthScheduleHandler.NewHandler(getMonthScheduleUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(transitionBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurant := getRestaurantHandler.NewHandler(restaurantSvc, log)
	getPendingRestaurants := getPendingRestaurantsHandler.NewHandler(restaurantSvc, log)
	getRestaurantHours := getRestaurantHoursHandler.NewHandler(restaurantSvc, log)
	updateRestaurantHours := updateRestaurantHoursHandler.NewHandler(restaurantSvc, log)
	updateApprovalStatus := updateApprovalStatusHandler.NewHandler(restaurantSvc, log)
	getRestaurantStats := getRestaurantStatsHandler.NewHandler(analyticsSvc, log)

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

	// Доступные слоты ресторана на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Часы работы ресторана
	api.HandleFunc("/restaurants/{restaurantId}/hours", getRestaurantHours.Handle).Methods(http.MethodGet)

	// Поиск бронирования по референсу
	api.HandleFunc("/bookings/by-reference/{reference}", getBooking.HandleByReference).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований ресторана за период
	protected.HandleFunc("/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования
	protected.HandleFunc("/booking/{bookingId}", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление рестораном (для менеджеров и админа) ---
	// Список ресторанов на модерации
	protected.HandleFunc("/restaurants/pending", getPendingRestaurants.Handle).Methods(http.MethodGet)

	// Карточка ресторана
	protected.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)

	// Месячное расписание ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/schedule", getMonthSchedule.Handle).Methods(http.MethodGet)

	// Обновление часов работы
	protected.HandleFunc("/restaurants/{restaurantId}/hours", updateRestaurantHours.Handle).Methods(http.MethodPut)

	// Модерация ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/approval", updateApprovalStatus.Handle).Methods(http.MethodPatch)

	// Сводка бронирований ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/stats", getRestaurantStats.Handle).Methods(http.MethodGet)

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
