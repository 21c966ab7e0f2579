package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration of the reference remote store server.
type ServerConfig struct {
	App struct {
		Version string
	}

	Server struct {
		HTTPAddress    string
		RequestTimeout time.Duration
	}

	Storage struct {
		DB struct {
			// DSN is the PostgreSQL connection string.
			DSN string
		}
	}
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := new(ServerConfig)
	serverCfg.App.Version = cfg.App.Version
	serverCfg.Server.HTTPAddress = cfg.Server.HTTPAddress
	serverCfg.Server.RequestTimeout = cfg.Server.RequestTimeout
	serverCfg.Storage.DB.DSN = cfg.Storage.DB.DSN
	return serverCfg
}
