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

	createAppointmentHandler "github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers/get_availability"
	getHorizonHandler "github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers/get_horizon_availability"
	getScheduleHandler "github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers/get_schedule"
	listAppointmentsHandler "github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers/list_appointments"
	"github.com/m04kA/Lemo-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
	"github.com/m04kA/Lemo-AvailabilityService/internal/cache"
	"github.com/m04kA/Lemo-AvailabilityService/internal/config"
	appointmentRepo "github.com/m04kA/Lemo-AvailabilityService/internal/infra/storage/appointment"
	backendClient "github.com/m04kA/Lemo-AvailabilityService/internal/integrations/bookingbackend"
	appointmentsService "github.com/m04kA/Lemo-AvailabilityService/internal/service/appointments"
	createAppointmentUC "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/get_availability"
	getHorizonUC "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/get_horizon_availability"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/logger"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/metrics"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting Lemo-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник записей: внешний booking backend или локальный Postgres.
	// Остальной код (use cases, handlers) не знает, какой режим выбран
	var (
		appointmentsSvc *appointmentsService.Service
		txMgr           createAppointmentUC.TransactionManager
	)

	if cfg.Backend.URL != "" {
		// Backend-режим: записи живут во внешнем сервисе
		client := backendClient.NewClient(
			cfg.Backend.URL,
			time.Duration(cfg.Backend.Timeout)*time.Second,
			log,
		)
		appointmentsSvc = appointmentsService.NewService(nil, client, log)
		txMgr = createAppointmentUC.NopTransactionManager{}
		log.Info("Appointment source: booking backend at %s (timeout=%ds)",
			cfg.Backend.URL, cfg.Backend.Timeout)
	} else {
		// Standalone-режим: записи хранятся в собственном Postgres
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

		var repository *appointmentRepo.Repository
		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			repository = appointmentRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			repository = appointmentRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

		appointmentsSvc = appointmentsService.NewService(repository, nil, log)
		log.Info("Appointment source: standalone storage")
	}

	// Кеш результатов доступности
	var resultCache cache.Cache
	switch cfg.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		resultCache = redisCache
		log.Info("Result cache: redis at %s", cfg.Cache.RedisAddr)
	default:
		memoryCache := cache.NewMemory()
		defer memoryCache.Close()
		resultCache = memoryCache
		log.Info("Result cache: in-memory")
	}

	// Движок доступности
	schedule, err := cfg.WeeklySchedule()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}

	engine := availability.NewEngine(availability.Params{
		Schedule:        schedule,
		DurationMinutes: cfg.Slots.DurationMinutes,
		StepMinutes:     cfg.Slots.StepMinutes,
		LeadMinutes:     cfg.Slots.LeadMinutes,
		FullDayBreak:    cfg.Slots.FullDayBreak,
	})
	log.Info("Availability engine initialized (duration=%dm, step=%dm, lead=%dm)",
		engine.Params().DurationMinutes, engine.Params().StepMinutes, engine.Params().LeadMinutes)

	// Инициализируем use cases
	var (
		dayMetrics     getAvailabilityUC.Metrics
		horizonMetrics getHorizonUC.Metrics
	)
	if cfg.Metrics.Enabled {
		dayMetrics = metricsCollector
		horizonMetrics = metricsCollector
	}

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		engine,
		appointmentsSvc,
		resultCache,
		cfg.Cache.AvailabilityTTL(),
		dayMetrics,
		log,
	)

	getHorizonUseCase := getHorizonUC.NewUseCase(
		engine,
		appointmentsSvc,
		appointmentsSvc,
		cfg.Slots.PreferBulkSummary,
		cfg.Slots.DefaultHorizonDays,
		resultCache,
		cfg.Cache.HorizonTTL(),
		horizonMetrics,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		engine,
		appointmentsSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailabilityH := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getHorizonH := getHorizonHandler.NewHandler(getHorizonUseCase, log)
	createAppointmentH := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointmentH := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointmentsH := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getScheduleH := getScheduleHandler.NewHandler(engine, cfg.Slots.DefaultHorizonDays, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Свободные слоты на дату
	api.HandleFunc("/availability", getAvailabilityH.Handle).Methods(http.MethodGet)

	// Агрегированная доступность диапазона дат
	api.HandleFunc("/availability/horizon", getHorizonH.Handle).Methods(http.MethodGet)

	// Недельное расписание и параметры слотов
	api.HandleFunc("/schedule", getScheduleH.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointmentH.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Key header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Server.AdminKey))

	// Список записей за диапазон дат
	protected.HandleFunc("/appointments", listAppointmentsH.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointmentH.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped")
}
