package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"overstay/internal/api"
	"overstay/internal/api/handlers/http/system"
	"overstay/internal/config"
	"overstay/internal/domain"
	"overstay/internal/metrics"
	"overstay/internal/redis"
	"overstay/internal/service"
	"overstay/internal/storage/memory"
	"overstay/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	var (
		store       service.AllowedMinutesStore
		redisClient *redis.Redis
		pinger      system.Pinger
	)

	switch cfg.Store {
	case config.StoreRedis:
		logger.Info("Initializing Redis")
		r, err := redis.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		redisClient = r
		pinger = r
		store = redis.NewAllowedMinutesStore(r.Client, cfg.Redis.Key)
	default:
		logger.Info("Using in-memory configuration store; value is lost on restart")
		store = memory.NewAllowedMinutesStore()
	}

	m := metrics.New()

	setupSvc := service.NewDurationSetupService(store, m, logger)
	eventSvc := service.NewVisitorEventService(setupSvc, m, logger, cfg.Envoy.SignOutEventType, domain.AttributeKeys{
		SignIn:  cfg.Envoy.SignInAttribute,
		SignOut: cfg.Envoy.SignOutAttribute,
	})

	srv := service.NewService(setupSvc, eventSvc)

	httpServer := api.NewServer(ctx, cfg, logger, srv, m, pinger)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Redis:      redisClient,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
