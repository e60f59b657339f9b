package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML layer. Keys mirror the environment variables.
type fileConfig struct {
	Server struct {
		Host         string `yaml:"host"`
		Port         string `yaml:"port"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
	} `yaml:"server"`
	Database struct {
		Driver          string `yaml:"driver"`
		PostgresDSN     string `yaml:"postgres_dsn"`
		SQLitePath      string `yaml:"sqlite_path"`
		MaxOpenConns    string `yaml:"max_open_conns"`
		MaxIdleConns    string `yaml:"max_idle_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	PubSub struct {
		NatsURL         string `yaml:"nats_url"`
		GCloudProjectID string `yaml:"gcloud_project_id"`
	} `yaml:"pubsub"`
	Scheduler struct {
		Timezone   string `yaml:"timezone"`
		ResyncSpec string `yaml:"resync_spec"`
		JobTimeout string `yaml:"job_timeout"`
	} `yaml:"scheduler"`
}

func (f *fileConfig) values() map[string]string {
	return map[string]string{
		"SERVER_HOST":          f.Server.Host,
		"SERVER_PORT":          f.Server.Port,
		"SERVER_READ_TIMEOUT":  f.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT": f.Server.WriteTimeout,
		"DB_DRIVER":            f.Database.Driver,
		"POSTGRES_DSN":         f.Database.PostgresDSN,
		"SQLITE_PATH":          f.Database.SQLitePath,
		"DB_MAX_OPEN_CONNS":    f.Database.MaxOpenConns,
		"DB_MAX_IDLE_CONNS":    f.Database.MaxIdleConns,
		"DB_CONN_MAX_LIFETIME": f.Database.ConnMaxLifetime,
		"LOG_LEVEL":            f.Log.Level,
		"NATS_URL":             f.PubSub.NatsURL,
		"GCLOUD_PROJECT_ID":    f.PubSub.GCloudProjectID,
		"TIMEZONE":             f.Scheduler.Timezone,
		"RESYNC_SPEC":          f.Scheduler.ResyncSpec,
		"ALARM_JOB_TIMEOUT":    f.Scheduler.JobTimeout,
	}
}

type source struct {
	file map[string]string
}

func newSource(path string) (source, error) {
	if path == "" {
		return source{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return source{}, fmt.Errorf("failed to read CONFIG_FILE: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return source{}, fmt.Errorf("invalid CONFIG_FILE: %w", err)
	}

	return source{file: fc.values()}, nil
}

func (s source) getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	if value := s.file[key]; value != "" {
		return value
	}

	return defaultValue
}
