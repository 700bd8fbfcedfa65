package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
	"golang.org/x/oauth2"
)

const (
	// DefaultAuthorizationTimeout bounds the wait for a valid redirect.
	DefaultAuthorizationTimeout = 120 * time.Second

	stateNonceBytes = 16
)

// OAuthFlowConfig parameterizes the flow runner for the host environment.
type OAuthFlowConfig struct {
	// NewListener starts a loopback redirect listener per attempt. When nil,
	// RedirectURI is used and redirects arrive through HandleRedirect.
	NewListener ListenerFactory
	// RedirectURI is the registered custom-scheme redirect.
	RedirectURI string
	// Timeout defaults to [DefaultAuthorizationTimeout].
	Timeout time.Duration
}

// oauthAttempt owns every transient handle of one authorization attempt.
// Handles are detached together under the runner's lock and released
// together.
type oauthAttempt struct {
	id         string
	provider   models.ProviderID
	authorizer adapter.Authorizer

	phase       models.AuthorizationPhase
	state       string
	verifier    string
	redirectURL string

	listener       RedirectListener
	popup          adapter.Popup
	stopTimer      func() bool
	cancelExchange context.CancelFunc

	result   chan models.AuthorizationResult
	finished sync.Once
}

// attemptHandles are the releasable resources detached from an attempt.
type attemptHandles struct {
	listener  RedirectListener
	popup     adapter.Popup
	stopTimer func() bool
}

type oauthFlow struct {
	providers ProviderRegistry
	tokens    TokenManager
	browser   adapter.Browser
	cfg       OAuthFlowConfig
	logger    *logger.Logger

	afterFunc afterFunc
	random    io.Reader
	ids       *utils.UUIDGenerator

	mu       sync.Mutex
	attempts map[models.ProviderID]*oauthAttempt
	closed   bool
	wg       sync.WaitGroup
}

// NewAuthorizationFlow returns an [AuthorizationFlow] that hands every
// successful grant to tokens.
func NewAuthorizationFlow(providers ProviderRegistry, tokens TokenManager, browser adapter.Browser, cfg OAuthFlowConfig, log *logger.Logger) AuthorizationFlow {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultAuthorizationTimeout
	}

	return &oauthFlow{
		providers: providers,
		tokens:    tokens,
		browser:   browser,
		cfg:       cfg,
		logger:    log.WithComponent("oauthFlow"),
		afterFunc: timeAfterFunc,
		random:    rand.Reader,
		ids:       utils.NewUUIDGenerator(),
		attempts:  make(map[models.ProviderID]*oauthAttempt),
	}
}

func (f *oauthFlow) Authorize(ctx context.Context, provider models.ProviderID) (<-chan models.AuthorizationResult, error) {
	authorizer, err := f.providers.Authorizer(provider)
	if err != nil {
		return nil, fmt.Errorf("authorize: %w", err)
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrAuthorizationClosed
	}
	if _, pending := f.attempts[provider]; pending {
		f.mu.Unlock()
		return nil, fmt.Errorf("authorize %s: %w", provider, ErrAuthorizationInProgress)
	}
	attempt := &oauthAttempt{
		id:         f.ids.Generate(),
		provider:   provider,
		authorizer: authorizer,
		phase:      models.AuthorizationAwaitingRedirect,
		result:     make(chan models.AuthorizationResult, 1),
	}
	// Registered before any I/O so a concurrent Authorize is rejected.
	f.attempts[provider] = attempt
	f.mu.Unlock()

	log := f.logger.With().Str("provider", provider.String()).Str("attempt", attempt.id).Logger()

	state, err := f.newState()
	if err != nil {
		err = fmt.Errorf("authorize: generate state: %w", err)
		f.abandon(attempt, err)
		return nil, err
	}
	verifier := oauth2.GenerateVerifier()

	var listener RedirectListener
	redirectURL := f.cfg.RedirectURI
	if f.cfg.NewListener != nil {
		listener, err = f.cfg.NewListener(ctx, func(cb models.OAuthCallback) {
			f.handleCallback(provider, cb)
		})
		if err != nil {
			err = fmt.Errorf("authorize: start redirect listener: %w", err)
			f.abandon(attempt, err)
			return nil, err
		}
		redirectURL = listener.RedirectURL()
	}
	authURL := authorizer.AuthCodeURL(state, verifier, redirectURL)

	f.mu.Lock()
	if f.attempts[provider] != attempt {
		// Cancelled or closed during setup.
		f.mu.Unlock()
		f.release(attemptHandles{listener: listener})
		return attempt.result, nil
	}
	attempt.state = state
	attempt.verifier = verifier
	attempt.redirectURL = redirectURL
	attempt.listener = listener
	attempt.stopTimer = f.afterFunc(f.cfg.Timeout, func() { f.onTimeout(attempt) })
	f.mu.Unlock()

	log.Info().Str("func", "oauthFlow.Authorize").Str("redirect_url", redirectURL).Msg("awaiting authorization redirect")

	popup, err := f.browser.Open(ctx, authURL)
	if err != nil {
		log.Err(err).Str("func", "oauthFlow.Authorize").Msg("failed to open authorization page")
		f.terminate(attempt, models.AuthorizationCancelled, fmt.Errorf("open authorization page: %w", err))
		return attempt.result, nil
	}

	f.mu.Lock()
	if f.attempts[provider] == attempt && attempt.phase == models.AuthorizationAwaitingRedirect {
		attempt.popup = popup
		popup = nil
	}
	f.mu.Unlock()

	if popup != nil {
		// The attempt ended while the page was opening.
		f.release(attemptHandles{popup: popup})
	}

	return attempt.result, nil
}

func (f *oauthFlow) HandleRedirect(provider models.ProviderID, redirectURL string) error {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return fmt.Errorf("handle redirect: %w", err)
	}

	f.handleCallback(provider, CallbackFromQuery(u.Query()))
	return nil
}

// CallbackFromQuery extracts the OAuth redirect parameters.
func CallbackFromQuery(q url.Values) models.OAuthCallback {
	return models.OAuthCallback{
		Code:             q.Get("code"),
		State:            q.Get("state"),
		Error:            q.Get("error"),
		ErrorDescription: q.Get("error_description"),
	}
}

func (f *oauthFlow) handleCallback(provider models.ProviderID, cb models.OAuthCallback) {
	log := f.logger.With().Str("func", "oauthFlow.handleCallback").Str("provider", provider.String()).Logger()

	f.mu.Lock()
	attempt := f.attempts[provider]
	if f.closed || attempt == nil || attempt.phase != models.AuthorizationAwaitingRedirect || attempt.state == "" {
		f.mu.Unlock()
		log.Warn().Msg("redirect without a pending attempt ignored")
		return
	}

	if cb.Error != "" {
		f.mu.Unlock()
		log.Warn().Str("error", cb.Error).Str("error_description", cb.ErrorDescription).Msg("provider returned an authorization error")
		f.terminate(attempt, models.AuthorizationCancelled, fmt.Errorf("%w: %s", ErrAuthorizationDenied, cb.Error))
		return
	}

	if subtle.ConstantTimeCompare([]byte(cb.State), []byte(attempt.state)) != 1 {
		f.mu.Unlock()
		log.Warn().Msg("redirect with mismatched state ignored")
		return
	}

	if cb.Code == "" {
		f.mu.Unlock()
		log.Warn().Msg("redirect without authorization code")
		f.terminate(attempt, models.AuthorizationCancelled, fmt.Errorf("%w: missing code", ErrAuthorizationDenied))
		return
	}

	attempt.phase = models.AuthorizationExchangingToken
	attempt.state = ""
	handles := f.detachLocked(attempt)
	exchangeCtx, cancel := context.WithCancel(context.Background())
	attempt.cancelExchange = cancel
	f.wg.Add(2)
	f.mu.Unlock()

	// The listener may be the caller of this function, so it is released
	// asynchronously.
	go func() {
		defer f.wg.Done()
		f.release(handles)
	}()

	go func() {
		defer f.wg.Done()
		defer cancel()
		f.exchange(exchangeCtx, attempt, cb.Code)
	}()
}

func (f *oauthFlow) exchange(ctx context.Context, attempt *oauthAttempt, code string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error().Interface("panic", r).Str("func", "oauthFlow.exchange").Msg("token exchange panicked")
			f.complete(attempt, fmt.Errorf("token exchange panicked: %v", r))
		}
	}()

	log := f.logger.With().Str("func", "oauthFlow.exchange").Str("provider", attempt.provider.String()).Str("attempt", attempt.id).Logger()

	grant, err := attempt.authorizer.ExchangeCode(ctx, code, attempt.verifier, attempt.redirectURL)
	if err != nil {
		log.Err(err).Msg("authorization code exchange failed")
		f.complete(attempt, fmt.Errorf("exchange code: %w", err))
		return
	}

	if grant.IDToken != "" {
		if claims, cerr := utils.ParseIDTokenUnverified(grant.IDToken); cerr == nil {
			log.Info().Str("subject", claims.Subject).Str("email", claims.Email).Msg("authorized account")
		} else {
			log.Debug().Err(cerr).Msg("id_token not decodable")
		}
	}

	if err = f.tokens.SetSession(ctx, attempt.provider, grant); err != nil {
		log.Err(err).Msg("failed to establish session")
		f.complete(attempt, err)
		return
	}

	log.Info().Msg("authorization completed")
	f.complete(attempt, nil)
}

func (f *oauthFlow) onTimeout(attempt *oauthAttempt) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error().Interface("panic", r).Str("func", "oauthFlow.onTimeout").Msg("timeout handler panicked")
		}
	}()

	f.logger.Info().Str("func", "oauthFlow.onTimeout").Str("provider", attempt.provider.String()).Msg("authorization timed out")
	f.terminate(attempt, models.AuthorizationTimedOut, ErrAuthorizationTimedOut)
}

func (f *oauthFlow) Cancel(provider models.ProviderID) {
	f.mu.Lock()
	attempt := f.attempts[provider]
	f.mu.Unlock()

	if attempt != nil {
		f.terminate(attempt, models.AuthorizationCancelled, ErrAuthorizationCancelled)
	}
}

func (f *oauthFlow) Phase(provider models.ProviderID) models.AuthorizationPhase {
	f.mu.Lock()
	defer f.mu.Unlock()

	if attempt := f.attempts[provider]; attempt != nil {
		return attempt.phase
	}
	return models.AuthorizationIdle
}

func (f *oauthFlow) Close() {
	f.mu.Lock()
	f.closed = true
	attempts := make([]*oauthAttempt, 0, len(f.attempts))
	for _, attempt := range f.attempts {
		attempts = append(attempts, attempt)
	}
	f.mu.Unlock()

	for _, attempt := range attempts {
		f.terminate(attempt, models.AuthorizationCancelled, ErrAuthorizationCancelled)
	}

	f.wg.Wait()
}

// terminate ends an attempt that is still registered: an attempt awaiting its
// redirect is torn down and reported with phase, an exchange in flight is
// cancelled and reports through complete.
func (f *oauthFlow) terminate(attempt *oauthAttempt, phase models.AuthorizationPhase, err error) {
	f.mu.Lock()
	if f.attempts[attempt.provider] != attempt {
		f.mu.Unlock()
		return
	}

	if attempt.phase == models.AuthorizationExchangingToken {
		cancel := attempt.cancelExchange
		f.mu.Unlock()
		// A timer that fired just after the redirect arrived has nothing
		// left to tear down.
		if cancel != nil && phase != models.AuthorizationTimedOut {
			cancel()
		}
		return
	}

	attempt.phase = phase
	attempt.state = ""
	handles := f.detachLocked(attempt)
	delete(f.attempts, attempt.provider)
	f.mu.Unlock()

	f.release(handles)
	attempt.finish(models.AuthorizationResult{Provider: attempt.provider, Phase: phase, Err: err})
}

// complete ends an attempt after its token exchange.
func (f *oauthFlow) complete(attempt *oauthAttempt, err error) {
	f.mu.Lock()
	if f.attempts[attempt.provider] == attempt {
		delete(f.attempts, attempt.provider)
	}
	phase := models.AuthorizationIdle
	if errors.Is(err, context.Canceled) {
		phase = models.AuthorizationCancelled
	}
	attempt.phase = phase
	f.mu.Unlock()

	attempt.finish(models.AuthorizationResult{Provider: attempt.provider, Phase: phase, Err: err})
}

// abandon drops an attempt whose setup failed before any handle was attached.
func (f *oauthFlow) abandon(attempt *oauthAttempt, err error) {
	f.mu.Lock()
	if f.attempts[attempt.provider] == attempt {
		delete(f.attempts, attempt.provider)
	}
	f.mu.Unlock()

	attempt.finish(models.AuthorizationResult{Provider: attempt.provider, Phase: models.AuthorizationIdle, Err: err})
}

func (f *oauthFlow) detachLocked(attempt *oauthAttempt) attemptHandles {
	h := attemptHandles{listener: attempt.listener, popup: attempt.popup, stopTimer: attempt.stopTimer}
	attempt.listener, attempt.popup, attempt.stopTimer = nil, nil, nil
	return h
}

func (f *oauthFlow) release(h attemptHandles) {
	if h.stopTimer != nil {
		h.stopTimer()
	}
	if h.listener != nil {
		if err := h.listener.Close(); err != nil {
			f.logger.Warn().Err(err).Str("func", "oauthFlow.release").Msg("failed to close redirect listener")
		}
	}
	if h.popup != nil {
		if err := h.popup.Close(); err != nil {
			f.logger.Warn().Err(err).Str("func", "oauthFlow.release").Msg("failed to close authorization page")
		}
	}
}

func (f *oauthFlow) newState() (string, error) {
	b := make([]byte, stateNonceBytes)
	if _, err := io.ReadFull(f.random, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (a *oauthAttempt) finish(result models.AuthorizationResult) {
	a.finished.Do(func() {
		a.result <- result
		close(a.result)
	})
}
