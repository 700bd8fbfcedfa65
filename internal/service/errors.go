package service

import "errors"

var (
	// ErrNoSession is returned when an operation needs an active provider
	// session and there is none.
	ErrNoSession = errors.New("no active session")

	// ErrSessionChanged is returned to callers of a refresh whose session was
	// replaced or cleared while the refresh was in flight.
	ErrSessionChanged = errors.New("session changed during refresh")

	// ErrNoBackup is returned by Pull when the provider holds no vault file.
	ErrNoBackup = errors.New("no backup found")

	// ErrNoBackupOrWrongPassword is returned by Pull when the vault file can
	// not be opened with the given password or does not hold a vault. The
	// two causes are never told apart.
	ErrNoBackupOrWrongPassword = errors.New("no backup found or wrong password")

	// ErrInvalidPayload is returned by Push for a vault document that would
	// not pass validation after a later Pull.
	ErrInvalidPayload = errors.New("invalid vault payload")

	ErrAuthorizationInProgress = errors.New("authorization already in progress")
	ErrAuthorizationTimedOut   = errors.New("authorization timed out")
	ErrAuthorizationCancelled  = errors.New("authorization cancelled")
	ErrAuthorizationDenied     = errors.New("authorization denied by provider")
	ErrAuthorizationClosed     = errors.New("authorization flow is closed")

	ErrClipboardNotInitialized = errors.New("clipboard scheduler is not initialized")
	ErrClipboardDisposed       = errors.New("clipboard scheduler is disposed")
)

var (
	// ErrReauthorizationRequired is returned when the provider rejects the
	// session even after a refresh; the user has to sign in again.
	ErrReauthorizationRequired = errors.New("provider session expired, sign in again")

	// ErrProviderUnavailable is returned for transport failures. Callers may
	// retry; the core never does on its own.
	ErrProviderUnavailable = errors.New("provider unavailable")
)
