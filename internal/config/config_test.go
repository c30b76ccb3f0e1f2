package config

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8081

[storage]
driver = "postgres"

[database]
url = "postgres://u:p@db:5432/courts?sslmode=disable"

[schedule]
date_match = "calendar_day"
timezone = "Europe/Moscow"
default_courts = 4

[booking]
amount = 750
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/courts?sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 4, cfg.Schedule.DefaultCourts)
	assert.Equal(t, int64(750), cfg.Booking.Amount)

	// untouched keys keep their defaults
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	matcher, err := cfg.Schedule.Matcher()
	require.NoError(t, err)
	assert.Equal(t, domain.DateMatchCalendarDay, matcher.Mode)
	assert.Equal(t, "Europe/Moscow", matcher.Location.String())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://env/courts")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://env/courts", cfg.Database.DSN())
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis:6379", cfg.Cache.Addr)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, `[server`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"driver", func(c *Config) { c.Storage.Driver = "sqlite" }},
		{"mongo collection", func(c *Config) { c.Mongo.Collection = "" }},
		{"postgres without target", func(c *Config) {
			c.Storage.Driver = DriverPostgres
			c.Database.Host = ""
		}},
		{"cache without addr", func(c *Config) {
			c.Cache.Enabled = true
			c.Cache.Addr = ""
		}},
		{"cache without ttl", func(c *Config) {
			c.Cache.Enabled = true
			c.Cache.Addr = "redis:6379"
			c.Cache.TTL = 0
		}},
		{"metrics path", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Path = "metrics"
		}},
		{"date match", func(c *Config) { c.Schedule.DateMatch = "fuzzy" }},
		{"timezone", func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" }},
		{"courts", func(c *Config) { c.Schedule.DefaultCourts = domain.MaxCourts + 1 }},
		{"amount", func(c *Config) { c.Booking.Amount = -1 }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "courts", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=courts sslmode=disable", c.DSN())
}
