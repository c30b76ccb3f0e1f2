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
	_ "time/tzdata"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	bookSlotHandler "github.com/m04kA/SMC-CourtSchedule/internal/api/handlers/book_slot"
	getGridHandler "github.com/m04kA/SMC-CourtSchedule/internal/api/handlers/get_grid"
	getSlotsHandler "github.com/m04kA/SMC-CourtSchedule/internal/api/handlers/get_slots"
	"github.com/m04kA/SMC-CourtSchedule/internal/api/handlers/health"
	"github.com/m04kA/SMC-CourtSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-CourtSchedule/internal/config"
	"github.com/m04kA/SMC-CourtSchedule/internal/grid"
	scheduleRepo "github.com/m04kA/SMC-CourtSchedule/internal/infra/storage/schedule"
	bookSlotUC "github.com/m04kA/SMC-CourtSchedule/internal/usecase/book_slot"
	getSlotsUC "github.com/m04kA/SMC-CourtSchedule/internal/usecase/get_slots"
	"github.com/m04kA/SMC-CourtSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtSchedule/pkg/logger"
	"github.com/m04kA/SMC-CourtSchedule/pkg/metrics"
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

	log.Info("Starting SMC-CourtSchedule (storage=%s, date_match=%s)...", cfg.Storage.Driver, cfg.Schedule.DateMatch)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу расписаний
	var repository scheduleRepo.Repository

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(config.Seconds(cfg.Database.ConnMaxLifetime))

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			repository = scheduleRepo.NewPostgresRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			repository = scheduleRepo.NewPostgresRepository(db)
		}

	case config.DriverMongo:
		connectCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Mongo.ConnectTimeout))
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			cancel()
			log.Fatal("Failed to connect to MongoDB: %v", err)
		}
		if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
			cancel()
			log.Fatal("Failed to ping MongoDB: %v", err)
		}
		cancel()

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Error("Failed to disconnect from MongoDB: %v", err)
			}
		}()
		log.Info("Successfully connected to MongoDB (db=%s, collection=%s)", cfg.Mongo.Database, cfg.Mongo.Collection)

		repository = scheduleRepo.NewMongoRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
	}

	// Кэш расписаний в Redis (если включен)
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis at %s unavailable, cache calls will fall through: %v", cfg.Cache.Addr, err)
		}
		repository = scheduleRepo.NewCachedRepository(repository, redisClient, config.Seconds(cfg.Cache.TTL), log)
		log.Info("Schedule cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	matcher, err := cfg.Schedule.Matcher()
	if err != nil {
		log.Fatal("Invalid schedule config: %v", err)
	}

	labels := grid.LegacyLabel
	if cfg.Schedule.ClockLabels {
		labels = grid.ClockLabel
	}

	// Инициализируем use cases
	getSlotsUseCase := getSlotsUC.NewUseCase(repository, matcher, metricsCollector, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(repository, matcher, cfg.Booking.Amount, metricsCollector, log)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getGrid := getGridHandler.NewHandler(getSlotsUseCase, cfg.Schedule.DefaultCourts, labels, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/getslots", getSlots.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/bookslot", bookSlot.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/schedules/{scheduleId}/grid", getGrid.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

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

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
