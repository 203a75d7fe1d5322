package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[simulator]
delay_ms = 0
failure_rate = 0.25
write_back = true

[storage]
driver = "postgres"

[database]
host = "db"
user = "gym"
password = "secret"
dbname = "gym"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	sim := cfg.Simulator.Domain()
	assert.Equal(t, time.Duration(0), sim.Delay)
	assert.Equal(t, 0.25, sim.FailureRate)
	assert.True(t, sim.WriteBack)

	assert.Equal(t, "postgres://gym:secret@db:5432/gym?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	sim := cfg.Simulator.Domain()
	assert.Equal(t, 500*time.Millisecond, sim.Delay)
	assert.Equal(t, 0.10, sim.FailureRate)
	assert.False(t, sim.WriteBack)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "failure_rate_above_one", content: "[simulator]\nfailure_rate = 1.5\n"},
		{name: "negative_delay", content: "[simulator]\ndelay_ms = -1\n"},
		{name: "unknown_driver", content: "[storage]\ndriver = \"redis\"\n"},
		{name: "bad_port", content: "[server]\nhttp_port = 0\n"},
		{name: "http_collector_without_url", content: "[analytics.http]\nenabled = true\n"},
		{name: "nats_without_subject", content: "[analytics.nats]\nenabled = true\nsubject = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
