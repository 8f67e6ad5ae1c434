package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantHost  string
		wantPort  int
		wantValue string
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080, wantValue: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9000", wantHost: "127.0.0.1", wantPort: 9000, wantValue: "127.0.0.1:9000"},
		{name: "all interfaces", input: ":8080", wantHost: "", wantPort: 8080, wantValue: ":8080"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
			assert.Equal(t, tt.wantValue, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:9090",
		"-request-timeout", "10s",
		"-rate-limit-rps", "4",
		"-rate-limit-burst", "8",
		"-ai-base-url", "http://ai",
		"-ai-api-key", "key",
		"-ai-model", "m",
		"-ai-timeout", "5s",
		"-storage", "sqlite",
		"-slot", "docs",
		"-d", "levelup.db",
		"-f", "/tmp/slots",
		"-redis", "localhost:6379",
		"-redis-prefix", "p:",
		"-version", "2.0.0",
		"-log-level", "warn",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.InDelta(t, 4.0, cfg.Server.RateLimitRPS, 1e-9)
	assert.Equal(t, 8, cfg.Server.RateLimitBurst)
	assert.Equal(t, "http://ai", cfg.Adapter.AI.BaseURL)
	assert.Equal(t, "key", cfg.Adapter.AI.APIKey)
	assert.Equal(t, "m", cfg.Adapter.AI.Model)
	assert.Equal(t, 5*time.Second, cfg.Adapter.AI.RequestTimeout)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "docs", cfg.Storage.Slot)
	assert.Equal(t, "levelup.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/slots", cfg.Storage.Files.Dir)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "p:", cfg.Storage.Redis.Prefix)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-token-sign-key", "x"})
	require.Error(t, err)
}
