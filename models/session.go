package models

// TokenPhase is the token manager state, with the Active sub-states flattened
// into Fresh, Expiring and Refreshing.
type TokenPhase string

const (
	TokenUninitialized TokenPhase = "uninitialized"
	TokenLoading       TokenPhase = "loading"
	TokenNoSession     TokenPhase = "noSession"
	TokenFresh         TokenPhase = "fresh"
	TokenExpiring      TokenPhase = "expiring"
	TokenRefreshing    TokenPhase = "refreshing"
)

// IsActive reports whether the phase is one of the Active sub-states.
func (p TokenPhase) IsActive() bool {
	switch p {
	case TokenFresh, TokenExpiring, TokenRefreshing:
		return true
	default:
		return false
	}
}

// AuthorizationPhase is the state of one provider's authorization attempt.
// Terminal phases are reported in [AuthorizationResult]; the runner itself is
// back in Idle once the result is delivered.
type AuthorizationPhase string

const (
	AuthorizationIdle             AuthorizationPhase = "idle"
	AuthorizationAwaitingRedirect AuthorizationPhase = "awaitingRedirect"
	AuthorizationExchangingToken  AuthorizationPhase = "exchangingToken"
	AuthorizationTimedOut         AuthorizationPhase = "timedOut"
	AuthorizationCancelled        AuthorizationPhase = "cancelled"
)

// AuthorizationResult is delivered once per attempt. Err is nil when the
// session was established.
type AuthorizationResult struct {
	Provider ProviderID
	Phase    AuthorizationPhase
	Err      error
}
