package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
[server]
http_port = 8083

[logs]
file = "logs/app.log"
level = "debug"

[database]
host = "localhost"
port = 5432
user = "callback_user"
password = "callback_pass"
dbname = "callback_db"

[metrics]
enabled = true
service_name = "callback-service"

[callback]
min_lead_hours = 3.5
max_lead_hours = 120.0
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 3.5, cfg.Callback.MinLeadHours)
	assert.Equal(t, 120.0, cfg.Callback.MaxLeadHours)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[database]
host = "localhost"
port = 5432
user = "u"
password = "p"
dbname = "db"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "callback-service", cfg.Metrics.ServiceName)
	assert.Equal(t, 2.0, cfg.Callback.MinLeadHours)
	assert.Equal(t, 144.0, cfg.Callback.MaxLeadHours)
}

func TestLoad_ExplicitZeroMinLeadHours(t *testing.T) {
	// Явный ноль - валидная нижняя граница окна, а не незаданное поле
	path := writeConfigFile(t, `
[callback]
min_lead_hours = 0.0
max_lead_hours = 144.0
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Callback.MinLeadHours)
	assert.Equal(t, 144.0, cfg.Callback.MaxLeadHours)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestLoad_InvalidCallbackWindow(t *testing.T) {
	t.Run("max not greater than min", func(t *testing.T) {
		path := writeConfigFile(t, `
[callback]
min_lead_hours = 10.0
max_lead_hours = 10.0
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_lead_hours must be greater")
	})

	t.Run("negative min lead hours", func(t *testing.T) {
		path := writeConfigFile(t, `
[callback]
min_lead_hours = -1.0
max_lead_hours = 144.0
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_lead_hours")
	})

	t.Run("max lead hours over a year", func(t *testing.T) {
		path := writeConfigFile(t, `
[callback]
min_lead_hours = 2.0
max_lead_hours = 9000.0
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_lead_hours must be <=")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "callback_user",
		Password: "callback_pass",
		DBName:   "callback_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=callback_user password=callback_pass dbname=callback_db sslmode=disable",
		db.DSN())
}
