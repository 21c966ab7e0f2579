package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command line arguments into a [StructuredConfig].
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-r remote store base URL used by the client
//	-d database DSN (SQLite file on the client, PostgreSQL DSN on the server)
//	-c/-config json file path with configs
//	-u user id the client synchronises
//	-request-timeout request timeout of the server and the client gateway
//	-sync-interval fallback sync period while online
//	-probe-interval connectivity probe period
//	-retry-base-delay first backoff delay of a transient failure
//	-max-retries retries of a single remote operation per cycle
//	-log-file client log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("go-deck-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "r", "", "Remote store base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.UserID, "u", "", "User ID")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Sync interval (e.g., 5m)")
	fs.DurationVar(&cfg.Workers.ProbeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 15s)")
	fs.DurationVar(&cfg.Workers.RetryBaseDelay, "retry-base-delay", 0, "Retry base delay (e.g., 1s)")
	fs.IntVar(&cfg.Workers.MaxRetries, "max-retries", 0, "Max retries per remote operation")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Adapter.RequestTimeout = cfg.Server.RequestTimeout

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
