package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	natsgo "github.com/nats-io/nats.go"

	"crisisAlert/internal/api"
	"crisisAlert/internal/api/handlers/http/system"
	"crisisAlert/internal/config"
	"crisisAlert/internal/service"
	"crisisAlert/internal/storage/nats"
	"crisisAlert/internal/storage/postgres"
	"crisisAlert/internal/storage/redis"
	"crisisAlert/internal/workers"
	"crisisAlert/pkg/logger"
)

// notificationTransport is both ends of the notification queue.
type notificationTransport interface {
	service.NotificationQueue
	service.NotificationSource
}

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	NATS       *natsgo.Conn
	natsQueue  *nats.NotificationQueue
	FanOut     *workers.FanOutPool
	Sender     *service.NotificationSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	c.Postgres = storage

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	c.Redis = redisClient

	queue, err := c.initTransport(cfg)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	cache := redis.NewEventCache(redisClient.Client)
	impact := service.NewImpactEvaluator()

	var fanout service.FanOut
	if !cfg.Notifications.Disabled {
		dispatcher := service.NewQueueDispatcher(queue, storage.NotificationLog(), logger)
		handler := service.NewFanOutHandler(storage.ResidentDirectory(), impact, dispatcher, logger)
		c.FanOut = workers.NewFanOutPool(handler, cfg.Notifications.Workers, cfg.Notifications.QueueSize, cfg.Notifications.Timeout, logger)
		c.Sender = service.NewNotificationSender(logger, cfg.Notifications, queue)
		fanout = c.FanOut
	} else {
		logger.Warn("notifications disabled")
	}

	adminSvc := service.NewAdminCrisisService(storage.CrisisEvents(), storage.ScenarioThemes(), cache, fanout, logger)
	publicSvc := service.NewPublicCrisisService(storage.CrisisEvents(), storage.ChangeLog(), storage.ResidentDirectory(), cache, impact, cfg.Cache.ActiveEventsTTL, logger)
	statsSvc := service.NewStatsService(storage.NotificationLog())

	srv := service.NewService(adminSvc, publicSvc, statsSvc)

	checks := map[string]system.Check{
		"postgres": storage.Pool.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Client.Ping(ctx).Err()
		},
	}
	if c.NATS != nil {
		checks["nats"] = func(context.Context) error {
			if !c.NATS.IsConnected() {
				return fmt.Errorf("nats status %s", c.NATS.Status())
			}
			return nil
		}
	}

	c.HttpServer = api.NewServer(ctx, cfg, logger, srv, checks)
	logger.Info("initialized server")

	return c, nil
}

func (c *Components) initTransport(cfg *config.Config) (notificationTransport, error) {
	switch cfg.Notifications.Transport {
	case config.TransportNATS:
		c.logger.Info("initializing nats")
		nc, err := nats.Connect(cfg, c.logger)
		if err != nil {
			return nil, err
		}
		c.NATS = nc

		q, err := nats.NewNotificationQueue(nc, cfg.NATS.Subject, cfg.NATS.Queue)
		if err != nil {
			return nil, fmt.Errorf("failed to init nats queue: %w", err)
		}
		c.natsQueue = q
		return q, nil
	default:
		return redis.NewNotificationQueue(c.Redis.Client, cfg.Notifications.QueueKey), nil
	}
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
	c.logger.Info("components shutdown started")

	if c.natsQueue != nil {
		if err := c.natsQueue.Close(); err != nil {
			c.logger.Error("nats unsubscribe failed", slog.Any("error", err))
		}
	}
	if c.NATS != nil {
		if err := c.NATS.Drain(); err != nil {
			c.logger.Error("nats drain failed", slog.Any("error", err))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.Any("error", err))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}

	c.logger.Info("all components stopped", slog.Duration("latency", time.Since(start)))
}
