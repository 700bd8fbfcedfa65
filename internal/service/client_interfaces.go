package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// TokenManager owns the credential state of the active provider. It is the
// only component that mutates the session.
type TokenManager interface {
	// Start loads the persisted StoredAuth, if any. A storage failure is
	// logged and treated as no session. Calls after the first are no-ops.
	Start(ctx context.Context)

	// SetSession replaces the session with a fresh grant for provider and
	// persists its refresh token. For the device provider grant is ignored
	// and nothing is persisted.
	SetSession(ctx context.Context, provider models.ProviderID, grant models.TokenGrant) error

	// EnsureFreshAccessToken returns a bearer token valid for at least a
	// moment longer, refreshing it first when needed. Concurrent callers
	// share one refresh. With no refresh token the current access token is
	// returned unchanged, possibly empty.
	EnsureFreshAccessToken(ctx context.Context) (string, error)

	// InvalidateAccessToken drops the cached access token so the next
	// EnsureFreshAccessToken refreshes. Used after a provider returns 401.
	InvalidateAccessToken()

	// ClearSession wipes the session and deletes the persisted StoredAuth.
	// It is idempotent.
	ClearSession(ctx context.Context) error

	// Logout revokes the session at the provider, best-effort, then clears it.
	// A session restored from storage is refreshed first so it has an access
	// token to revoke.
	Logout(ctx context.Context) error

	// State returns the observable session state.
	State() models.SessionState

	// Phase returns the detailed state machine position.
	Phase() models.TokenPhase

	// Subscribe returns a channel receiving the latest state after every
	// change. The channel keeps only the newest state; cancel releases it.
	Subscribe() (<-chan models.SessionState, func())

	// Close stops the refresh timer and closes every subscription.
	Close()
}

// AuthorizationFlow runs interactive OAuth authorizations, one per provider
// at a time.
type AuthorizationFlow interface {
	// Authorize starts an attempt and returns a channel that receives its
	// single result. It returns ErrAuthorizationInProgress while an attempt
	// for provider is pending.
	Authorize(ctx context.Context, provider models.ProviderID) (<-chan models.AuthorizationResult, error)

	// HandleRedirect feeds a redirect received through a custom URL scheme.
	HandleRedirect(provider models.ProviderID, redirectURL string) error

	// Cancel aborts the pending attempt for provider, if any.
	Cancel(provider models.ProviderID)

	// Phase reports the attempt state for provider.
	Phase(provider models.ProviderID) models.AuthorizationPhase

	// Close cancels every attempt and waits for their cleanup.
	Close()
}

// ClipboardScheduler copies secrets to the clipboard and clears them again.
type ClipboardScheduler interface {
	Init()

	// Copy writes value and, when d > 0, schedules its removal after d. A new
	// copy always cancels the pending removal of the previous one. With
	// d <= 0 the value is never cleared, not even by Dispose.
	Copy(value string, d time.Duration) error

	// Cancel stops the pending removal without touching the clipboard. The
	// value is given up: ForceClearNow and Dispose leave it in place.
	Cancel()

	// ForceClearNow clears the clipboard now if it still holds the value of
	// a pending removal.
	ForceClearNow() error

	// Events streams a [models.ClipboardEvent] for every auto-clearing copy.
	Events() <-chan models.ClipboardEvent

	// Dispose clears the last copied value, if still present, and releases
	// the scheduler.
	Dispose()
}

// VaultService moves the sealed vault between the client and the active
// provider.
type VaultService interface {
	Push(ctx context.Context, payload models.VaultPayload, password string) error
	Pull(ctx context.Context, password string) (models.VaultPayload, error)
	Account(ctx context.Context) (models.UserInfo, error)
}

// ProviderRegistry resolves provider variants by id.
type ProviderRegistry interface {
	Get(id models.ProviderID) (adapter.CloudProvider, error)
	Authorizer(id models.ProviderID) (adapter.Authorizer, error)
}

// RedirectListener receives OAuth redirects for one attempt.
type RedirectListener interface {
	// RedirectURL is the redirect_uri to register with the provider.
	RedirectURL() string
	Close() error
}

// ListenerFactory starts a redirect listener that passes every callback it
// receives to onCallback.
type ListenerFactory func(ctx context.Context, onCallback func(models.OAuthCallback)) (RedirectListener, error)
