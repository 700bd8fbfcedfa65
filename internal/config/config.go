// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-sync client. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds settings of the encrypted vault blob itself.
	Vault Vault `envPrefix:"VAULT_"`

	// Providers holds the OAuth client registrations and API endpoints of
	// every remote backend, plus the provider used by default.
	Providers Providers `envPrefix:"PROVIDERS_"`

	// OAuth holds the interactive authorization flow settings.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Clipboard holds the auto-clear settings for copied secrets.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	// Storage holds configuration for the local device store and the OS
	// keyring.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds outbound HTTP settings shared by the provider clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds the client log destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds settings that must match across every client reading the same
// vault.
type Vault struct {
	// KDFIterations is the PBKDF2 work factor. It is not stored in the
	// envelope, so changing it makes existing backups unreadable.
	// Env: VAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// RemotePath is the path of the vault file on the active provider.
	// Env: VAULT_REMOTE_PATH
	RemotePath string `env:"REMOTE_PATH"`
}

// Providers groups per-provider settings.
type Providers struct {
	// Default is the provider used when nothing is persisted yet
	// ("dropbox", "googleDrive" or "device").
	// Env: PROVIDERS_DEFAULT
	Default string `env:"DEFAULT"`

	// Dropbox holds the Dropbox app registration.
	Dropbox OAuthApp `envPrefix:"DROPBOX_"`

	// GoogleDrive holds the Google Cloud OAuth client registration.
	GoogleDrive OAuthApp `envPrefix:"GOOGLE_"`
}

// OAuthApp describes one OAuth client registration and the REST endpoints the
// provider adapter talks to. Empty AuthURL / TokenURL select the provider's
// well-known endpoints.
type OAuthApp struct {
	ClientID       string   `env:"CLIENT_ID"`
	ClientSecret   string   `env:"CLIENT_SECRET"`
	Scopes         []string `env:"SCOPES" envSeparator:","`
	APIBaseURL     string   `env:"API_URL"`
	ContentBaseURL string   `env:"CONTENT_URL"`
	AuthURL        string   `env:"AUTH_URL"`
	TokenURL       string   `env:"TOKEN_URL"`
	RevokeURL      string   `env:"REVOKE_URL"`
}

// OAuth holds settings of the authorization flow runner.
type OAuth struct {
	// RedirectAddress is the loopback address the redirect listener binds,
	// in "host:port" form. Port 0 picks a free port.
	// Env: OAUTH_REDIRECT_ADDRESS
	RedirectAddress string `env:"REDIRECT_ADDRESS"`

	// CallbackPath is the path the provider redirects to.
	// Env: OAUTH_CALLBACK_PATH
	CallbackPath string `env:"CALLBACK_PATH"`

	// RedirectURI, when set, is a registered custom-scheme URI. No loopback
	// listener is started and redirects are fed in through the CLI.
	// Env: OAUTH_REDIRECT_URI
	RedirectURI string `env:"REDIRECT_URI"`

	// Timeout bounds how long an attempt waits for a valid redirect.
	// Env: OAUTH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Clipboard holds the clipboard auto-clear settings.
type Clipboard struct {
	// ClearAfter is how long a copied secret stays on the clipboard. A
	// negative value disables auto-clear.
	// Env: CLIPBOARD_CLEAR_AFTER
	ClearAfter time.Duration `env:"CLEAR_AFTER"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the device file store connection settings.
	DB DB `envPrefix:"DB_"`

	// KeyringService is the service name the refresh token is stored under
	// in the OS keyring.
	// Env: STORAGE_KEYRING_SERVICE
	KeyringService string `env:"KEYRING_SERVICE"`
}

// DB holds connection settings for the SQLite device file store.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds outbound HTTP settings for provider REST clients.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single provider request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds the client log settings.
type Log struct {
	// Path is the log file. Empty selects a "logs" file next to the binary.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Earlier sources win for every field they set:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
