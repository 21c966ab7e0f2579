package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged view of every configuration source. The
// client and the server each take a validated subset of it.
type StructuredConfig struct {
	// App holds identity and version settings.
	App App `envPrefix:"APP_"`

	// Storage holds database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the remote store HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the client's remote gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background sync settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path of a JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

// App contains application-level settings.
type App struct {
	// UserID is the user whose decks the client synchronises.
	UserID string `env:"USER_ID"`

	// Version is the application version reported by the server.
	Version string `env:"VERSION"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB contains a database connection string: a SQLite file path on the
// client and a PostgreSQL DSN on the server.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Server contains listen settings of the remote store server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter contains settings of the client HTTP gateway.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers contains settings of the client background workers.
type Workers struct {
	// SyncInterval is the period of the fallback sync timer while online.
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is the period of connectivity probes.
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// RetryBaseDelay is the first backoff delay of a transient failure.
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// MaxRetries caps retries of a single remote operation within a cycle.
	MaxRetries int `env:"MAX_RETRIES"`
}

// Log contains log output settings.
type Log struct {
	// File is the client log file path.
	File string `env:"FILE"`
}

// dotEnvFile is the .env file loaded into the process environment before
// environment variables are parsed.
const dotEnvFile = ".env"

// GetStructuredConfig loads and merges all configuration sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
