package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deck-sync/internal/config"
	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/service"
)

func serverConfig(address string) config.ServerConfig {
	var cfg config.ServerConfig
	cfg.Server.HTTPAddress = address
	return cfg
}

// TestNewHandlers_HTTP verifies that an HTTP address yields an HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, serverConfig(":8080"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that a missing address is fatal.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, serverConfig(""), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls produce
// independent handlers.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	h1, err1 := NewHandlers(&service.Services{}, serverConfig(":8080"), logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, serverConfig(":8080"), logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
