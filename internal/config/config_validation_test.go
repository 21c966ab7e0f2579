package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{UserID: "user-1", Version: "1.0.0"},
		Storage: Storage{DB: DB{DSN: "decks.db"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Workers: Workers{
			SyncInterval:   time.Minute,
			ProbeInterval:  time.Second,
			RetryBaseDelay: time.Second,
			MaxRetries:     3,
		},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no remote address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "no user",
			mutate:  func(cfg *StructuredConfig) { cfg.App.UserID = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := newClientConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := validStructuredConfig()
	cfg.App.UserID = ""
	cfg.Adapter = Adapter{}
	assert.NoError(t, newServerConfig(cfg).validate())

	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, newServerConfig(cfg).validate(), ErrInvalidServerConfigs)

	cfg = validStructuredConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, newServerConfig(cfg).validate(), ErrInvalidStorageConfigs)
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := validStructuredConfig()
	cfg.Log.File = "/tmp/c.log"

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, "user-1", clientCfg.App.UserID)
	assert.Equal(t, "http://localhost:8080", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, "decks.db", clientCfg.Storage.DB.DSN)
	assert.Equal(t, 3, clientCfg.Workers.MaxRetries)
	assert.Equal(t, "/tmp/c.log", clientCfg.Log.File)
}
