package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/nerdeck/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                  ":8080",
		DBPath:                "test.db",
		LogLevel:              "INFO",
		TimeZone:              "UTC",
		RequestTimeoutSeconds: 30,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = "  "

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "VERBOSE"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestValidate_InvalidTimeZone(t *testing.T) {
	cfg := validConfig()
	cfg.TimeZone = "Mars/Olympus_Mons"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TIMEZONE is invalid")
}

func TestValidate_RequestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -5, true},
		{"positive", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.RequestTimeoutSeconds = tt.seconds

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "REQUEST_TIMEOUT_SECONDS")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := validConfig()

	cfg.TimeZone = "Local"
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.TimeZone = "Europe/Lisbon"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Lisbon", loc.String())
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL", "TIMEZONE", "REQUEST_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:nerdeck.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "Local", cfg.TimeZone)
	assert.Equal(t, 30, cfg.RequestTimeoutSeconds)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "file:custom.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("TIMEZONE", "America/Sao_Paulo")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "file:custom.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "America/Sao_Paulo", cfg.TimeZone)
	assert.Equal(t, 5, cfg.RequestTimeoutSeconds)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "soon")

	cfg := config.Load()

	assert.Equal(t, 30, cfg.RequestTimeoutSeconds)
}

func TestLoad_DoesNotRequireDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.NotPanics(t, func() { config.Load() })
}
