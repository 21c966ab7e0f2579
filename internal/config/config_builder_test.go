package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// ── build ──

func TestBuild_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		configs []*StructuredConfig
		check   func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no sources",
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
		{
			name: "disjoint fields are merged",
			configs: []*StructuredConfig{
				{App: App{Version: "1.0.0"}},
				{App: App{UserID: "user-1"}},
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, App{UserID: "user-1", Version: "1.0.0"}, cfg.App)
			},
		},
		{
			name: "earlier source wins",
			configs: []*StructuredConfig{
				{Workers: Workers{SyncInterval: time.Minute}},
				{Workers: Workers{SyncInterval: time.Hour, MaxRetries: 7}},
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, 7, cfg.Workers.MaxRetries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.configs...)

			cfg, err := b.build()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Run("collected error", func(t *testing.T) {
		b := newConfigBuilder()
		b.err = assert.AnError

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("negative retries", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{Workers: Workers{MaxRetries: -1}})

		_, err := b.build()
		assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
	})
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncInterval: time.Minute}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, defaultMaxRetries, cfg.Workers.MaxRetries)
	assert.Equal(t, defaultRetryBaseDelay, cfg.Workers.RetryBaseDelay)
	assert.Equal(t, defaultProbeInterval, cfg.Workers.ProbeInterval)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
}

// ── sources ──

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_USER_ID", "env-user")
	t.Setenv("WORKERS_SYNC_INTERVAL", "90s")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-user", b.configs[0].App.UserID)
	assert.Equal(t, 90*time.Second, b.configs[0].Workers.SyncInterval)
}

func TestWithFlags_BadArgsAreCollected(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-max-retries", "many"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.UserID = "json-user"
	payload.Workers.RetryBaseDelay = Duration(250 * time.Millisecond)
	valid := writeTempJSONConfig(t, payload)

	malformed := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not valid json"), 0o600))

	tests := []struct {
		name      string
		paths     []string
		wantErr   bool
		wantCount int
	}{
		{name: "no path is a no-op", paths: []string{""}, wantCount: 1},
		{name: "valid file is appended", paths: []string{valid}, wantCount: 2},
		{name: "last non-empty path wins", paths: []string{malformed, valid, ""}, wantCount: 4},
		{name: "missing file", paths: []string{"/nonexistent/config.json"}, wantErr: true, wantCount: 1},
		{name: "malformed file", paths: []string{malformed}, wantErr: true, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			for _, p := range tt.paths {
				b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
			}
			b.withJSON()

			require.Len(t, b.configs, tt.wantCount)
			if tt.wantErr {
				assert.Error(t, b.err)
				return
			}
			require.NoError(t, b.err)
			if tt.wantCount > len(tt.paths) {
				last := b.configs[len(b.configs)-1]
				assert.Equal(t, "json-user", last.App.UserID)
				assert.Equal(t, 250*time.Millisecond, last.Workers.RetryBaseDelay)
			}
		})
	}
}

func TestWithDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
		assert.NoError(t, b.err)
	})

	t.Run("environment beats the file", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("APP_VERSION", "from-env")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("APP_USER_ID=dotenv-user\nAPP_VERSION=from-file\n"), 0o600))

		b := newConfigBuilder().withDotEnv(path).withEnv()

		require.NoError(t, b.err)
		require.Len(t, b.configs, 1)
		assert.Equal(t, "dotenv-user", b.configs[0].App.UserID)
		assert.Equal(t, "from-env", b.configs[0].App.Version)
	})
}
