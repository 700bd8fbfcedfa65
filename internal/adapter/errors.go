package adapter

import (
	"errors"

	"github.com/MKhiriev/go-pass-sync/models"
)

var (
	// ErrAuth is returned when a provider rejects the bearer or refresh token.
	ErrAuth = errors.New("provider rejected credentials")
	// ErrNetwork wraps transport failures (DNS, connect, timeout, TLS).
	ErrNetwork = errors.New("provider unreachable")
	// ErrRemote is any other non-2xx response from a provider.
	ErrRemote = errors.New("provider request failed")
	// ErrUnsupportedOperation is returned by operations a variant does not
	// have, e.g. token refresh on the device provider.
	ErrUnsupportedOperation = errors.New("operation not supported by provider")
	// ErrNoRevocableToken is returned by RevokeToken when the session holds no
	// token the provider's revocation endpoint accepts. No request is sent.
	ErrNoRevocableToken = errors.New("no token to revoke")
	// ErrClipboardUnsupported is returned by the system clipboard when no
	// clipboard utility was found.
	ErrClipboardUnsupported = errors.New("no clipboard utility found")

	// ErrUnknownProvider is re-exported so callers of the registry need not
	// import models for error checks.
	ErrUnknownProvider = models.ErrUnknownProvider

	errNotFound = errors.New("remote file not found")
)
