package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

// Драйверы хранилища слотов
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Simulator SimulatorConfig `toml:"simulator"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Analytics AnalyticsConfig `toml:"analytics"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres
	Seed   bool   `toml:"seed"`   // заполнить таблицу слотами из каталога при старте
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type SimulatorConfig struct {
	DelayMS     int     `toml:"delay_ms"`
	FailureRate float64 `toml:"failure_rate"`
	WriteBack   bool    `toml:"write_back"`
}

type CatalogConfig struct {
	Path string `toml:"path"` // пусто - встроенный каталог
}

type AnalyticsConfig struct {
	NATS NATSConfig          `toml:"nats"`
	HTTP HTTPCollectorConfig `toml:"http"`
}

// HTTPCollectorConfig внешний HTTP коллектор событий
type HTTPCollectorConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type NATSConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Subject string `toml:"subject"`
	Timeout int    `toml:"timeout"` // секунды
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "gym-api",
			Path:        "/metrics",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Simulator: SimulatorConfig{
			DelayMS:     int(domain.DefaultArtificialDelay / time.Millisecond),
			FailureRate: domain.DefaultFailureRate,
		},
		Analytics: AnalyticsConfig{
			NATS: NATSConfig{
				URL:     "nats://localhost:4222",
				Subject: "gym.analytics.events",
				Timeout: 5,
			},
			HTTP: HTTPCollectorConfig{
				Timeout: 5,
			},
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Simulator.DelayMS < 0 || time.Duration(c.Simulator.DelayMS)*time.Millisecond > domain.MaxDelay {
		return fmt.Errorf("%w: simulator.delay_ms=%d", ErrInvalidConfig, c.Simulator.DelayMS)
	}

	if c.Simulator.FailureRate < domain.MinFailureRate || c.Simulator.FailureRate > domain.MaxFailureRate {
		return fmt.Errorf("%w: simulator.failure_rate=%v", ErrInvalidConfig, c.Simulator.FailureRate)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: storage.driver=%q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required", ErrInvalidConfig)
	}

	if c.Analytics.NATS.Enabled && (c.Analytics.NATS.URL == "" || c.Analytics.NATS.Subject == "") {
		return fmt.Errorf("%w: analytics.nats.url and analytics.nats.subject are required", ErrInvalidConfig)
	}

	if c.Analytics.HTTP.Enabled && c.Analytics.HTTP.URL == "" {
		return fmt.Errorf("%w: analytics.http.url is required", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Domain параметры симуляции для use cases
func (s SimulatorConfig) Domain() domain.SimulatorConfig {
	return domain.SimulatorConfig{
		Delay:       time.Duration(s.DelayMS) * time.Millisecond,
		FailureRate: s.FailureRate,
		WriteBack:   s.WriteBack,
	}
}
