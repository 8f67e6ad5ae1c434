package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"version": "3.1.4", "log_level": "error"},
		"storage": {
			"backend": "postgres",
			"slot": "docs",
			"db": {"dsn": "postgres://u:p@localhost/levelup"},
			"redis": {"address": "r:6379", "db": 1, "prefix": "x:"}
		},
		"server": {"http_address": "localhost:8081", "request_timeout": "45s", "rate_limit_rps": 1.5, "rate_limit_burst": 2},
		"adapter": {"ai": {"base_url": "http://ai", "api_key": "k", "model": "m", "request_timeout": 1000000000}}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "docs", cfg.Storage.Slot)
	assert.Equal(t, "postgres://u:p@localhost/levelup", cfg.Storage.DB.DSN)
	assert.Equal(t, "r:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 1, cfg.Storage.Redis.DB)
	assert.Equal(t, "x:", cfg.Storage.Redis.Prefix)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.InDelta(t, 1.5, cfg.Server.RateLimitRPS, 1e-9)
	assert.Equal(t, 2, cfg.Server.RateLimitBurst)
	assert.Equal(t, "http://ai", cfg.Adapter.AI.BaseURL)
	assert.Equal(t, "k", cfg.Adapter.AI.APIKey)
	assert.Equal(t, "m", cfg.Adapter.AI.Model)
	assert.Equal(t, time.Second, cfg.Adapter.AI.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"server": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"server": {"request_timeout": "forever"}}`))
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeTempFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
