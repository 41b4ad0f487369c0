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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	checkExtensionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_extension"
	getAvailableDaysHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_days"
	getDaySlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_day_slots"
	getProceduresHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_procedures"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	listMastersHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_masters"
	resolveDayHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/resolve_day"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/cache"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/googlesheets"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/masters"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	checkExtensionUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_extension"
	getAvailableDaysUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_days"
	getDaySlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
	getProceduresUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_procedures"
	resolveDayUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_day"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
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

	log.Info("Starting SMC-AvailabilityService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Параметры салона и реестр мастеров
	policy, err := cfg.Salon.Policy()
	if err != nil {
		log.Fatal("Invalid salon settings: %v", err)
	}
	resolver := availability.NewResolver(policy.Location)

	staff := make([]domain.Master, 0, len(cfg.Masters))
	for _, m := range cfg.Masters {
		staff = append(staff, domain.Master{
			ID:         m.ID,
			Name:       m.Name,
			CalendarID: m.CalendarID,
			SheetID:    m.SheetID,
			IsDefault:  m.Default,
		})
	}
	registry, err := masters.NewRegistry(staff)
	if err != nil {
		log.Fatal("Failed to build masters registry: %v", err)
	}
	log.Info("Salon timezone=%s, step=%dmin, masters=%d, default=%s",
		policy.Location, policy.StepMinutes, len(staff), registry.Default().ID)

	// Инициализируем клиентов Google API (общий лимит запросов на проект)
	ctx := context.Background()
	limiter := rate.NewLimiter(rate.Limit(cfg.Google.RequestsPerSecond), cfg.Google.Burst)
	googleTimeout := time.Duration(cfg.Google.Timeout) * time.Second

	var googleOpts []option.ClientOption
	if cfg.Google.CredentialsFile != "" {
		googleOpts = append(googleOpts, option.WithCredentialsFile(cfg.Google.CredentialsFile))
	}

	calendarClient, err := googlecalendar.NewClient(ctx, policy.Location, limiter, metricsCollector, log, googleOpts...)
	if err != nil {
		log.Fatal("Failed to initialize Google Calendar client: %v", err)
	}
	calendarClient.SetTimeout(googleTimeout)

	// Источник расписания: Google Sheets или PostgreSQL
	var source scheduleService.Source

	switch cfg.Schedule.Source {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			source = scheduleRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			source = scheduleRepo.NewRepository(db)
		}
	default:
		sheetsClient, err := googlesheets.NewClient(ctx, googlesheets.Ranges{
			Weekly:     cfg.Google.WeeklyRange,
			Exceptions: cfg.Google.ExceptionsRange,
			Procedures: cfg.Google.ProceduresRange,
		}, limiter, metricsCollector, log, googleOpts...)
		if err != nil {
			log.Fatal("Failed to initialize Google Sheets client: %v", err)
		}
		sheetsClient.SetTimeout(googleTimeout)
		source = sheetsClient
	}
	log.Info("Schedule source: %s", cfg.Schedule.Source)

	// Кэш: процессный, плюс Redis при наличии адреса
	var store cache.Store = cache.NewMemory()
	if cfg.Cache.RedisEnabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unreachable, continuing with degraded cache: addr=%s, error=%v", cfg.Cache.RedisAddr, err)
		}
		cancel()

		store = cache.NewTiered(store, cache.NewRedis(redisClient, cfg.Cache.KeyPrefix))
		log.Info("Redis cache enabled (addr=%s, prefix=%s)", cfg.Cache.RedisAddr, cfg.Cache.KeyPrefix)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		source,
		store,
		scheduleService.TTLs{
			Weekly:     time.Duration(cfg.Schedule.WeeklyTTL) * time.Second,
			Exceptions: time.Duration(cfg.Schedule.ExceptionsTTL) * time.Second,
			Procedures: time.Duration(cfg.Schedule.ProceduresTTL) * time.Second,
		},
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	getProceduresUseCase := getProceduresUC.NewUseCase(scheduleSvc, registry, log)
	resolveDayUseCase := resolveDayUC.NewUseCase(scheduleSvc, registry, resolver, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		scheduleSvc,
		calendarClient,
		registry,
		resolver,
		policy,
		metricsCollector,
		log,
	)
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(scheduleSvc, registry, resolver, policy, log)
	checkExtensionUseCase := checkExtensionUC.NewUseCase(
		scheduleSvc,
		calendarClient,
		registry,
		resolver,
		policy,
		log,
	)

	// Инициализируем handlers
	getProcedures := getProceduresHandler.NewHandler(getProceduresUseCase, log)
	listMasters := listMastersHandler.NewHandler(registry, log)
	resolveDay := resolveDayHandler.NewHandler(resolveDayUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	checkExtension := checkExtensionHandler.NewHandler(checkExtensionUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог процедур и мастера
	api.HandleFunc("/procedures", getProcedures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters", listMasters.Handle).Methods(http.MethodGet)

	// Рабочее окно дня и свободные слоты
	api.HandleFunc("/days/{date}", resolveDay.Handle).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Календарь рабочих дней
	api.HandleFunc("/available-days", getAvailableDays.Handle).Methods(http.MethodGet)

	// Проверка продления существующей записи
	api.HandleFunc("/bookings/{eventId}/check-extension", checkExtension.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.Server.AllowedOrigins)(r),
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
	close(stopMetricsCh)

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
