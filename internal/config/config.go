package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	PubSub    PubSubConfig
	Scheduler SchedulerConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type PubSubConfig struct {
	NatsURL         string
	GCloudProjectID string
}

type SchedulerConfig struct {
	Location *time.Location
	// ResyncSpec is the cron spec of the job that re-registers every alarm.
	ResyncSpec string
	JobTimeout time.Duration
}

// Load reads the environment, falling back to the YAML file named by
// CONFIG_FILE and then to defaults.
func Load() (*Config, error) {
	src, err := newSource(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}

	serverPort, err := strconv.Atoi(src.getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(src.getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(src.getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	database, err := loadDatabase(src)
	if err != nil {
		return nil, err
	}

	scheduler, err := loadScheduler(src)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Host:         src.getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: database,
		Log: LogConfig{
			Level: src.getEnv("LOG_LEVEL", "info"),
		},
		PubSub: PubSubConfig{
			NatsURL:         src.getEnv("NATS_URL", ""),
			GCloudProjectID: src.getEnv("GCLOUD_PROJECT_ID", ""),
		},
		Scheduler: scheduler,
	}, nil
}

func loadDatabase(src source) (DatabaseConfig, error) {
	maxOpenConns, err := strconv.Atoi(src.getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(src.getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(src.getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	cfg := DatabaseConfig{
		Driver:          src.getEnv("DB_DRIVER", DriverPostgres),
		DSN:             src.getEnv("POSTGRES_DSN", ""),
		SQLitePath:      src.getEnv("SQLITE_PATH", "remind-again.db"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}

	switch cfg.Driver {
	case DriverPostgres:
		if cfg.DSN == "" {
			return DatabaseConfig{}, fmt.Errorf("POSTGRES_DSN environment variable is required")
		}
	case DriverSQLite:
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER %q: must be %s or %s", cfg.Driver, DriverPostgres, DriverSQLite)
	}

	return cfg, nil
}

func loadScheduler(src source) (SchedulerConfig, error) {
	location, err := time.LoadLocation(src.getEnv("TIMEZONE", "Local"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	resyncSpec := src.getEnv("RESYNC_SPEC", "@hourly")
	if _, err := cron.ParseStandard(resyncSpec); err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid RESYNC_SPEC: %w", err)
	}

	jobTimeout, err := time.ParseDuration(src.getEnv("ALARM_JOB_TIMEOUT", "30s"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid ALARM_JOB_TIMEOUT: %w", err)
	}

	return SchedulerConfig{
		Location:   location,
		ResyncSpec: resyncSpec,
		JobTimeout: jobTimeout,
	}, nil
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
