package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid provider HTTP settings
	// (for example, a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or missing keyring service name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates a KDF work factor below the floor or
	// a remote path that is not absolute.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidProviderConfigs indicates an unknown default provider or a
	// remote default provider without a client id.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidOAuthConfigs indicates invalid authorization flow settings
	// (for example, a non-loopback redirect address or zero timeout).
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
)
