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

	getBuildingAvailabilityHandler "github.com/m04kA/CRS-AvailabilityService/internal/api/handlers/get_building_availability"
	getRoomAvailabilityHandler "github.com/m04kA/CRS-AvailabilityService/internal/api/handlers/get_room_availability"
	getRoomScheduleHandler "github.com/m04kA/CRS-AvailabilityService/internal/api/handlers/get_room_schedule"
	listBuildingsHandler "github.com/m04kA/CRS-AvailabilityService/internal/api/handlers/list_buildings"
	refreshDatasetHandler "github.com/m04kA/CRS-AvailabilityService/internal/api/handlers/refresh_dataset"
	"github.com/m04kA/CRS-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/CRS-AvailabilityService/internal/availability"
	"github.com/m04kA/CRS-AvailabilityService/internal/config"
	buildingsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/buildings"
	roomsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/rooms"
	scheduleServiceClient "github.com/m04kA/CRS-AvailabilityService/internal/integrations/scheduleservice"
	catalogService "github.com/m04kA/CRS-AvailabilityService/internal/service/catalog"
	refreshDatasetUC "github.com/m04kA/CRS-AvailabilityService/internal/usecase/refresh_dataset"
	resolveBuildingUC "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_building_availability"
	resolveRoomUC "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_room_availability"
	"github.com/m04kA/CRS-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/CRS-AvailabilityService/pkg/logger"
	"github.com/m04kA/CRS-AvailabilityService/pkg/metrics"
	"github.com/m04kA/CRS-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/CRS-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting CRS-AvailabilityService...")
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

	// Собираем движок доступности из настроек календаря
	normalizer, err := availability.NewTimeNormalizer(cfg.Calendar.Timezone)
	if err != nil {
		log.Fatal("Failed to initialize time normalizer: %v", err)
	}

	holidays, err := cfg.Calendar.HolidayDates()
	if err != nil {
		log.Fatal("Failed to parse calendar holidays: %v", err)
	}

	policy := availability.NewCalendarPolicy(holidays, cfg.Calendar.OperatingStartHour, cfg.Calendar.OperatingEndHour)
	resolver := availability.NewRoomResolver(normalizer, policy, cfg.Calendar.BufferMinutes)
	aggregator := availability.NewBuildingAggregator(resolver, log)
	log.Info("Availability engine initialized (tz=%s, hours=%.1f-%.1f, buffer=%dm, holidays=%d)",
		cfg.Calendar.Timezone, cfg.Calendar.OperatingStartHour, cfg.Calendar.OperatingEndHour,
		cfg.Calendar.BufferMinutes, len(holidays))

	// Инициализируем клиента внешнего сервиса расписаний
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		cfg.ScheduleService.PageSize,
		log,
	)
	log.Info("Schedule service client initialized (url=%s, timeout=%ds)",
		cfg.ScheduleService.URL, cfg.ScheduleService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository     *roomsRepo.Repository
		buildingRepository *buildingsRepo.Repository
		txMgr              refreshDatasetUC.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomsRepo.NewRepository(wrappedDB)
		buildingRepository = buildingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomsRepo.NewRepository(db)
		buildingRepository = buildingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис каталога
	catalogSvc := catalogService.NewService(buildingRepository, roomRepository, log)

	// Инициализируем use cases
	defaultWindow := time.Duration(cfg.Calendar.DefaultWindowMinutes) * time.Minute
	timeProvider := &resolveRoomUC.RealTimeProvider{}

	resolveRoomUseCase := resolveRoomUC.NewUseCase(
		roomRepository,
		resolver,
		timeProvider,
		defaultWindow,
		log,
	)

	resolveBuildingUseCase := resolveBuildingUC.NewUseCase(
		buildingRepository,
		aggregator,
		timeProvider,
		defaultWindow,
		log,
	)

	var refreshMetrics refreshDatasetUC.MetricsRecorder
	if cfg.Metrics.Enabled {
		refreshMetrics = metricsCollector
	}
	refreshDatasetUseCase := refreshDatasetUC.NewUseCase(
		roomRepository,
		scheduleClient,
		txMgr,
		&refreshDatasetUC.RealTimeProvider{},
		refreshMetrics,
		normalizer.Location(),
		cfg.ScheduleService.MaxWorkers,
		log,
	)

	// Инициализируем handlers
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(resolveRoomUseCase, log)
	getBuildingAvailability := getBuildingAvailabilityHandler.NewHandler(resolveBuildingUseCase, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(catalogSvc, log)
	listBuildings := listBuildingsHandler.NewHandler(catalogSvc, log)
	refreshDataset := refreshDatasetHandler.NewHandler(refreshDatasetUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Список корпусов кампуса
	api.HandleFunc("/buildings", listBuildings.Handle).Methods(http.MethodGet)

	// Агрегированная доступность корпуса
	api.HandleFunc("/buildings/{buildingCode}/availability",
		getBuildingAvailability.Handle).Methods(http.MethodGet)

	// Доступность аудитории
	api.HandleFunc("/rooms/{roomId}/availability",
		getRoomAvailability.Handle).Methods(http.MethodGet)

	// Дневное расписание аудитории
	api.HandleFunc("/rooms/{roomId}/schedule",
		getRoomSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// Обновление датасета расписаний
	protected.HandleFunc("/dataset/refresh", refreshDataset.Handle).Methods(http.MethodPost)

	// Фоновое периодическое обновление датасета
	stopRefreshCh := make(chan struct{})
	if cfg.Refresh.Enabled {
		interval := time.Duration(cfg.Refresh.IntervalMinutes) * time.Minute
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if _, err := refreshDatasetUseCase.Execute(context.Background(), &refreshDatasetUC.Request{}); err != nil {
						log.Error("Background dataset refresh failed: %v", err)
					}
				case <-stopRefreshCh:
					return
				}
			}
		}()
		log.Info("Background dataset refresh enabled (interval=%v)", interval)
	}

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

	// Останавливаем фоновое обновление
	if cfg.Refresh.Enabled {
		close(stopRefreshCh)
		log.Info("Background dataset refresh stopped")
	}

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
