package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "user_id": "user-1", "version": "1.2.3" },
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": "5s"
		},
		"workers": {
			"sync_interval": "2m",
			"probe_interval": "10s",
			"retry_base_delay": "500ms",
			"max_retries": 4
		},
		"log": { "file": "/tmp/client.log" },
		"storage": {
			"db": { "dsn": "/var/lib/decks.db" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "user-1", cfg.App.UserID)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.RetryBaseDelay)
	assert.Equal(t, 4, cfg.Workers.MaxRetries)

	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
	assert.Equal(t, "/var/lib/decks.db", cfg.Storage.DB.DSN)
}

func TestParseJSON_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "missing file", path: filepath.Join(dir, "absent.json"), wantErr: "error reading a json file"},
		{name: "not json", path: write("bad.json", `{ this is not json }`), wantErr: "error decoding json configs"},
		{name: "bad duration", path: write("duration.json", `{"workers": {"sync_interval": "not-a-duration"}}`), wantErr: "error decoding json configs"},
		{name: "duration of wrong type", path: write("bool.json", `{"workers": {"probe_interval": true}}`), wantErr: "invalid duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseJSON(tt.path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"retry_base_delay": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.RetryBaseDelay)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Equal(t, Storage{}, cfg.Storage)
}
