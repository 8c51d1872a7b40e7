package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrReadEnvFile   = errors.New("config: failed to read .env file")
	ErrInvalidEnv    = errors.New("config: invalid environment variable")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Storage  StorageConfig  `toml:"storage"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Events   EventsConfig   `toml:"events"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к PostgreSQL
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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StorageConfig выбор хранилища: postgres или memory
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file"` // пусто = только stdout
	Level string `toml:"level"`
}

// MetricsConfig prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EventsConfig публикация событий проживания в NATS
type EventsConfig struct {
	Enabled        bool   `toml:"enabled"`
	NATSURL        string `toml:"nats_url"`
	SubjectPrefix  string `toml:"subject_prefix"`
	ClientName     string `toml:"client_name"`
	ConnectTimeout int    `toml:"connect_timeout"` // секунды
}

// CORSConfig разрешённые источники для браузерного клиента
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает TOML-файл, затем .env (если есть) и переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrReadEnvFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{Driver: DriverPostgres},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "hotel_service"},
		Events: EventsConfig{
			NATSURL:        "nats://localhost:4222",
			ClientName:     "smc-hotel-service",
			ConnectTimeout: 5,
		},
	}
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	setString(&c.Events.NATSURL, "NATS_URL")

	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.Host == "" {
			problems = append(problems, "database.host is required")
		}
		if c.Database.User == "" {
			problems = append(problems, "database.user is required")
		}
		if c.Database.DBName == "" {
			problems = append(problems, "database.dbname is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			problems = append(problems, fmt.Sprintf("database.port %d out of range", c.Database.Port))
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown storage.driver %q", c.Storage.Driver))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if c.Events.Enabled && c.Events.NATSURL == "" {
		problems = append(problems, "events.nats_url is required when events are enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, v)
	}
	*dst = n
	return nil
}
