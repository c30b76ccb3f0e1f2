package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// Поддерживаемые хранилища
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Mongo    MongoConfig    `toml:"mongo"`
	Database DatabaseConfig `toml:"database"`
	Cache    CacheConfig    `toml:"cache"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig таймауты задаются в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	CORSOrigins     []string `toml:"cors_origins"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // mongo | postgres
}

type MongoConfig struct {
	URI            string `toml:"uri"`
	Database       string `toml:"database"`
	Collection     string `toml:"collection"`
	ConnectTimeout int    `toml:"connect_timeout"` // seconds
}

type DatabaseConfig struct {
	URL             string `toml:"url"` // takes precedence over the discrete fields
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды, ограничивает жизнь устаревшей записи
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type ScheduleConfig struct {
	DateMatch     string `toml:"date_match"` // instant | calendar_day
	Timezone      string `toml:"timezone"`
	DefaultCourts int    `toml:"default_courts"`
	ClockLabels   bool   `toml:"clock_labels"` // "12 AM" instead of "0 AM"
}

type BookingConfig struct {
	Amount int64 `toml:"amount"`
}

// envOverrides применяются поверх файла конфигурации
type envOverrides struct {
	Port          int    `envconfig:"PORT"`
	MongoURI      string `envconfig:"MONGO_URI"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	StorageDriver string `envconfig:"STORAGE_DRIVER"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
}

// Default возвращает значения для ключей, отсутствующих в файле
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			CORSOrigins:     []string{"*"},
		},
		Storage: StorageConfig{Driver: DriverMongo},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "courts",
			Collection:     "schedules",
			ConnectTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "courts",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  60,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "court-schedule",
		},
		Schedule: ScheduleConfig{
			DateMatch:     string(domain.DateMatchInstant),
			Timezone:      domain.DefaultTimezone,
			DefaultCourts: domain.DefaultCourts,
		},
		Booking: BookingConfig{Amount: domain.DefaultBookingAmount},
	}
}

// Load читает TOML файл поверх значений по умолчанию, затем .env (если есть),
// затем переменные окружения. Если файла нет, остаются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}

	if env.Port != 0 {
		c.Server.HTTPPort = env.Port
	}
	if env.MongoURI != "" {
		c.Mongo.URI = env.MongoURI
	}
	if env.DatabaseURL != "" {
		c.Database.URL = env.DatabaseURL
	}
	if env.RedisAddr != "" {
		c.Cache.Addr = env.RedisAddr
		c.Cache.Enabled = true
	}
	if env.StorageDriver != "" {
		c.Storage.Driver = strings.ToLower(env.StorageDriver)
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
	return nil
}

// Validate проверяет перечисления, диапазоны и часовой пояс
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: server.http_port %d out of range", c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case DriverMongo:
		if _, err := url.Parse(c.Mongo.URI); err != nil || c.Mongo.URI == "" {
			return fmt.Errorf("config: mongo.uri is invalid")
		}
		if c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return errors.New("config: mongo.database and mongo.collection are required")
		}
	case DriverPostgres:
		if c.Database.URL == "" && c.Database.Host == "" {
			return errors.New("config: database.url or database.host is required")
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return errors.New("config: cache.addr is required when the cache is enabled")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return errors.New("config: cache.ttl must be positive when the cache is enabled")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("config: metrics.path %q must start with /", c.Metrics.Path)
	}

	if _, err := c.Schedule.Matcher(); err != nil {
		return fmt.Errorf("config: schedule: %w", err)
	}

	if c.Schedule.DefaultCourts < domain.MinCourts || c.Schedule.DefaultCourts > domain.MaxCourts {
		return fmt.Errorf("config: schedule.default_courts must be between %d and %d",
			domain.MinCourts, domain.MaxCourts)
	}

	if c.Booking.Amount < 0 {
		return errors.New("config: booking.amount must not be negative")
	}

	return nil
}

// Matcher создает сравнение дат по секции schedule
func (c ScheduleConfig) Matcher() (domain.DateMatcher, error) {
	return domain.NewDateMatcher(domain.DateMatchMode(c.DateMatch), c.Timezone)
}

// Seconds переводит значение конфигурации в секундах в time.Duration
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
