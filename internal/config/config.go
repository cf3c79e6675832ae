package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string              `json:"env"`
	Http          HttpConfig          `json:"http"`
	Postgres      PostgresConfig      `json:"postgres"`
	Redis         RedisConfig         `json:"redis"`
	NATS          NATSConfig          `json:"nats"`
	Auth          AuthConfig          `json:"auth"`
	Notifications NotificationsConfig `json:"notifications"`
	Cache         CacheConfig         `json:"cache"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Database    string `json:"database"`
	User        string `json:"user"`
	Password    string `json:"password,omitempty"`
	SSLMode     string `json:"ssl_mode"`
	AutoMigrate bool   `json:"auto_migrate"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type NATSConfig struct {
	URL     string `json:"url"`
	Subject string `json:"subject"`
	Queue   string `json:"queue"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
}

const (
	TransportRedis = "redis"
	TransportNATS  = "nats"
)

type NotificationsConfig struct {
	Transport  string        `json:"transport"`
	QueueKey   string        `json:"queue_key"`
	WebhookURL string        `json:"webhook_url"`
	Disabled   bool          `json:"disabled"`
	Workers    int           `json:"workers"`
	QueueSize  int           `json:"queue_size"`
	Timeout    time.Duration `json:"timeout"`
}

type CacheConfig struct {
	ActiveEventsTTL time.Duration `json:"active_events_ttl"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "crisis_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			AutoMigrate:     getEnvBool("POSTGRES_AUTO_MIGRATE", true),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", "nats://nats-local:4222"),
			Subject: getEnv("NATS_SUBJECT", "crisis.notifications"),
			Queue:   getEnv("NATS_QUEUE", "notification-senders"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "crisis-alert"),
		},
		Notifications: NotificationsConfig{
			Transport:  getEnv("NOTIFY_TRANSPORT", TransportRedis),
			QueueKey:   getEnv("NOTIFY_QUEUE_KEY", "notifications:queue"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
			Disabled:   getEnvBool("NOTIFY_DISABLED", false),
			Workers:    getEnvInt("NOTIFY_WORKERS", 4),
			QueueSize:  getEnvInt("NOTIFY_QUEUE_SIZE", 100),
			Timeout:    getEnvDuration("NOTIFY_FANOUT_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			ActiveEventsTTL: getEnvDuration("CACHE_ACTIVE_EVENTS_TTL", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("notify_transport", cfg.Notifications.Transport))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}

	switch c.Notifications.Transport {
	case TransportRedis, TransportNATS:
	default:
		return errors.New("NOTIFY_TRANSPORT must be redis or nats")
	}

	if c.Notifications.Workers <= 0 {
		return errors.New("NOTIFY_WORKERS must be positive")
	}
	if c.Notifications.QueueSize <= 0 {
		return errors.New("NOTIFY_QUEUE_SIZE must be positive")
	}

	return nil
}

func (c PostgresConfig) DSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Database +
		" sslmode=" + c.SSLMode
}

// URL returns the postgres URL form required by the migration driver.
func (c PostgresConfig) URL() string {
	return "pgx5://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) +
		"/" + c.Database + "?sslmode=" + c.SSLMode
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
