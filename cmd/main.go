package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-again/internal/app"
	"github.com/KasumiMercury/primind-remind-again/internal/config"
	"github.com/KasumiMercury/primind-remind-again/internal/infra/alarm"
	"github.com/KasumiMercury/primind-remind-again/internal/infra/handler"
	"github.com/KasumiMercury/primind-remind-again/internal/infra/repository"
	"github.com/KasumiMercury/primind-remind-again/internal/observability"
	"github.com/KasumiMercury/primind-remind-again/internal/observability/logging"
	"github.com/KasumiMercury/primind-remind-again/internal/observability/middleware"
)

// Version is set at build time with -ldflags.
var Version = "dev"

const (
	shutdownTimeout    = 30 * time.Second
	slowQueryThreshold = 200 * time.Millisecond
)

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	ctx := context.Background()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to flush telemetry", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	if err := db.WithContext(ctx).AutoMigrate(repository.Models()...); err != nil {
		slog.Error("failed to migrate database", "error", err)
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create publisher", "error", err)
		return 1
	}
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	scheduler := alarm.NewScheduler(cfg.Scheduler.Location,
		alarm.WithJobTimeout(cfg.Scheduler.JobTimeout),
		alarm.WithLogger(slog.Default()),
	)

	reminderUseCase := app.NewReminderUseCase(
		repository.NewReminderRepository(db),
		repository.NewActionRepository(db),
		repository.NewSnoozeStateRepository(db),
		scheduler,
		publisher,
		cfg.Scheduler.Location,
	)

	scheduler.SetTriggerFunc(newTriggerFunc(reminderUseCase, obs.AlarmMetrics))

	resync := newResyncJob(reminderUseCase, obs.AlarmMetrics)
	resync(ctx)

	if err := scheduler.AddPeriodicJob(cfg.Scheduler.ResyncSpec, resync); err != nil {
		slog.Error("failed to register resync job", "error", err)
		return 1
	}

	scheduler.Start()

	reminderHandler := handler.NewReminderHandler(reminderUseCase)
	router := setupRouter(reminderHandler, obs)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			"address", cfg.Server.Address(),
			"version", Version,
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			return 1
		}

		if err := scheduler.Stop(shutdownCtx); err != nil {
			slog.Error("failed to stop alarm scheduler", "error", err)
		}

		slog.Info("server exited properly")

		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}

		slog.Error("server exited with error", "error", err)

		return 1
	}
}

func initDatabase(cfg config.DatabaseConfig, level slog.Level) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.SQLitePath))
	default:
		dialector = postgres.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.NewGormLogger(slowQueryThreshold, logging.GormLogLevel(level)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	slog.Info("database initialized", "driver", cfg.Driver)

	return db, nil
}

func setupRouter(reminderHandler *handler.ReminderHandler, obs *observability.Resources) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.Gin(middleware.GinConfig{
			SkipPaths:   []string{"/ping"},
			Module:      logging.ModuleReminder,
			TracerName:  "remind-again/http",
			HTTPMetrics: obs.HTTPMetrics,
		}),
		middleware.PanicRecoveryGin(),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	reminderHandler.RegisterRoutes(v1)

	return router
}
