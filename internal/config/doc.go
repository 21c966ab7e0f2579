// Package config provides configuration loading, merging, and validation
// facilities for the client and the reference remote server.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables (optionally preloaded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the local-first client and
// [GetServerConfig] for the remote store server.
package config
