// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
	"golang.org/x/sync/singleflight"
)

const (
	// expirySafetyMargin is subtracted from the lifetime the provider reports.
	expirySafetyMargin = 60 * time.Second
	// minAccessTokenLifetime is the shortest lifetime a fresh token is given.
	minAccessTokenLifetime = 30 * time.Second
)

// afterFunc schedules f after d and returns a function that cancels it.
type afterFunc func(d time.Duration, f func()) (stop func() bool)

func timeAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

type tokenPhase int

const (
	phaseUninitialized tokenPhase = iota
	phaseLoading
	phaseNoSession
	phaseActive
)

type tokenManager struct {
	repo      store.StoredAuthRepository
	providers ProviderRegistry
	logger    *logger.Logger

	now       func() time.Time
	afterFunc afterFunc

	// persistMu serializes writes of the StoredAuth. It is taken before mu.
	persistMu sync.Mutex

	mu         sync.Mutex
	phase      tokenPhase
	session    models.TokenSession
	refreshing bool
	// epoch changes whenever the session is replaced or cleared; refresh
	// results from an older epoch are dropped.
	epoch     uint64
	timerGen  uint64
	stopTimer func() bool
	subs      map[int]chan models.SessionState
	nextSub   int
	closed    bool

	flights singleflight.Group
}

// NewTokenManager returns a [TokenManager] in the Uninitialized state. Call
// Start to load the persisted session.
func NewTokenManager(repo store.StoredAuthRepository, providers ProviderRegistry, log *logger.Logger) TokenManager {
	return &tokenManager{
		repo:      repo,
		providers: providers,
		logger:    log.WithComponent("tokenManager"),
		now:       time.Now,
		afterFunc: timeAfterFunc,
		subs:      make(map[int]chan models.SessionState),
	}
}

func (t *tokenManager) Start(ctx context.Context) {
	t.mu.Lock()
	if t.phase != phaseUninitialized {
		t.mu.Unlock()
		return
	}
	t.phase = phaseLoading
	t.notifyLocked()
	t.mu.Unlock()

	auth, found, err := t.repo.Load(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase != phaseLoading {
		// SetSession won the race while storage was being read.
		return
	}

	t.epoch++
	switch {
	case err != nil:
		t.logger.Err(err).Str("func", "tokenManager.Start").Msg("failed to load stored auth, starting without session")
		t.phase = phaseNoSession
	case !found:
		t.phase = phaseNoSession
	default:
		t.session = models.TokenSession{Provider: auth.Provider, RefreshToken: auth.RefreshToken}
		t.phase = phaseActive
		t.logger.Info().Str("func", "tokenManager.Start").Str("provider", auth.Provider.String()).Msg("restored session")
	}
	t.notifyLocked()
}

func (t *tokenManager) SetSession(ctx context.Context, provider models.ProviderID, grant models.TokenGrant) error {
	if err := provider.Validate(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	if !provider.IsRemote() {
		grant = models.TokenGrant{}
	}

	t.persistMu.Lock()
	defer t.persistMu.Unlock()

	t.mu.Lock()
	t.epoch++
	t.session = models.TokenSession{
		Provider:             provider,
		AccessToken:          grant.AccessToken,
		RefreshToken:         grant.RefreshToken,
		AccessTokenExpiresAt: t.expiresAt(grant),
	}
	t.refreshing = false
	t.phase = phaseActive
	t.scheduleLocked()
	t.notifyLocked()
	t.mu.Unlock()

	t.logger.Info().Str("func", "tokenManager.SetSession").Str("provider", provider.String()).Msg("session established")

	// Only a remote session with a refresh token survives a restart; any other
	// session replaces what was stored before.
	if provider.IsRemote() && grant.RefreshToken != "" {
		if err := t.repo.Save(ctx, models.StoredAuth{Provider: provider, RefreshToken: grant.RefreshToken}); err != nil {
			return fmt.Errorf("set session: persist refresh token: %w", err)
		}
		return nil
	}
	if err := t.repo.Delete(ctx); err != nil {
		return fmt.Errorf("set session: remove stored auth: %w", err)
	}
	return nil
}

func (t *tokenManager) EnsureFreshAccessToken(ctx context.Context) (string, error) {
	token, err := t.ensureFresh(ctx)
	if errors.Is(err, ErrSessionChanged) {
		// The session was replaced mid-refresh; answer for the new one.
		return t.ensureFresh(ctx)
	}
	return token, err
}

func (t *tokenManager) ensureFresh(ctx context.Context) (string, error) {
	t.mu.Lock()
	if t.phase != phaseActive || t.session.RefreshToken == "" {
		token := t.session.AccessToken
		t.mu.Unlock()
		return token, nil
	}
	if t.session.AccessToken != "" && !t.expiredLocked() {
		token := t.session.AccessToken
		t.mu.Unlock()
		return token, nil
	}
	epoch := t.epoch
	t.mu.Unlock()

	return t.refresh(ctx, epoch)
}

func (t *tokenManager) InvalidateAccessToken() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase != phaseActive || t.session.RefreshToken == "" || t.session.AccessToken == "" {
		return
	}
	t.session.AccessToken = ""
	t.session.AccessTokenExpiresAt = time.Time{}
	t.scheduleLocked()
	t.notifyLocked()
}

func (t *tokenManager) ClearSession(ctx context.Context) error {
	t.persistMu.Lock()
	defer t.persistMu.Unlock()

	t.mu.Lock()
	t.epoch++
	t.session = models.TokenSession{}
	t.refreshing = false
	t.phase = phaseNoSession
	t.scheduleLocked()
	t.notifyLocked()
	t.mu.Unlock()

	if err := t.repo.Delete(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (t *tokenManager) Logout(ctx context.Context) error {
	t.mu.Lock()
	session := t.session
	active := t.phase == phaseActive
	t.mu.Unlock()

	if active && session.Provider.IsRemote() {
		if session.AccessToken == "" && session.RefreshToken != "" {
			session = t.sessionForRevoke(ctx, session)
		}
		t.revoke(ctx, session)
	}

	return t.ClearSession(ctx)
}

// sessionForRevoke mints an access token for a session restored from storage
// so providers that revoke by bearer token can be reached. Failure is logged
// and the session is returned as it was.
func (t *tokenManager) sessionForRevoke(ctx context.Context, session models.TokenSession) models.TokenSession {
	if _, err := t.EnsureFreshAccessToken(ctx); err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenManager.sessionForRevoke").Str("provider", session.Provider.String()).Msg("no access token for revocation")
		return session
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != phaseActive || t.session.Provider != session.Provider {
		return session
	}
	return t.session
}

func (t *tokenManager) revoke(ctx context.Context, session models.TokenSession) {
	authorizer, err := t.providers.Authorizer(session.Provider)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenManager.revoke").Msg("no authorizer for provider")
		return
	}
	err = authorizer.RevokeToken(ctx, session)
	if errors.Is(err, adapter.ErrNoRevocableToken) {
		t.logger.Warn().Str("func", "tokenManager.revoke").Str("provider", session.Provider.String()).Msg("revocation skipped")
		return
	}
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenManager.revoke").Str("provider", session.Provider.String()).Msg("token revocation failed")
		return
	}
	t.logger.Info().Str("func", "tokenManager.revoke").Str("provider", session.Provider.String()).Msg("tokens revoked")
}

func (t *tokenManager) State() models.SessionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *tokenManager) Phase() models.TokenPhase {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.phase {
	case phaseUninitialized:
		return models.TokenUninitialized
	case phaseLoading:
		return models.TokenLoading
	case phaseNoSession:
		return models.TokenNoSession
	}

	switch {
	case t.refreshing:
		return models.TokenRefreshing
	case t.session.AccessToken == "" && t.session.RefreshToken != "":
		return models.TokenExpiring
	case t.session.AccessToken != "" && t.expiredLocked():
		return models.TokenExpiring
	default:
		return models.TokenFresh
	}
}

func (t *tokenManager) Subscribe() (<-chan models.SessionState, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan models.SessionState, 1)
	if t.closed {
		close(ch)
		return ch, func() {}
	}

	id := t.nextSub
	t.nextSub++
	t.subs[id] = ch
	ch <- t.stateLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if sub, ok := t.subs[id]; ok {
				delete(t.subs, id)
				close(sub)
			}
		})
	}
}

func (t *tokenManager) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.timerGen++
	if t.stopTimer != nil {
		t.stopTimer()
		t.stopTimer = nil
	}
	for id, ch := range t.subs {
		delete(t.subs, id)
		close(ch)
	}
}

// refresh runs one coalesced refresh for the session of the given epoch. The
// network call is detached from ctx so that a caller giving up does not
// cancel the refresh other callers are waiting on.
func (t *tokenManager) refresh(ctx context.Context, epoch uint64) (string, error) {
	key := strconv.FormatUint(epoch, 10)
	ch := t.flights.DoChan(key, func() (any, error) {
		return t.doRefresh(context.WithoutCancel(ctx), epoch)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *tokenManager) doRefresh(ctx context.Context, epoch uint64) (string, error) {
	t.mu.Lock()
	if t.epoch != epoch || t.phase != phaseActive || t.session.RefreshToken == "" {
		t.mu.Unlock()
		return "", ErrSessionChanged
	}
	session := t.session
	t.refreshing = true
	t.notifyLocked()
	t.mu.Unlock()

	grant, err := t.refreshGrant(ctx, session)

	t.mu.Lock()
	if t.epoch != epoch {
		t.mu.Unlock()
		return "", ErrSessionChanged
	}
	t.refreshing = false

	if err != nil {
		// The session stays Active/Expiring with no timer; the next caller
		// retries.
		t.session.AccessToken = ""
		t.session.AccessTokenExpiresAt = time.Time{}
		t.scheduleLocked()
		t.notifyLocked()
		t.mu.Unlock()
		t.logger.Warn().Err(err).Str("func", "tokenManager.doRefresh").Str("provider", session.Provider.String()).Msg("access token refresh failed")
		return "", fmt.Errorf("refresh access token: %w", err)
	}

	t.session.AccessToken = grant.AccessToken
	t.session.AccessTokenExpiresAt = t.expiresAt(grant)
	rotated := grant.RefreshToken != "" && grant.RefreshToken != t.session.RefreshToken
	if rotated {
		t.session.RefreshToken = grant.RefreshToken
	}
	t.scheduleLocked()
	t.notifyLocked()
	t.mu.Unlock()

	t.logger.Debug().Str("func", "tokenManager.doRefresh").Str("provider", session.Provider.String()).Bool("rotated", rotated).Msg("access token refreshed")

	if rotated {
		t.persistRotated(ctx, epoch, models.StoredAuth{Provider: session.Provider, RefreshToken: grant.RefreshToken})
	}

	return grant.AccessToken, nil
}

func (t *tokenManager) refreshGrant(ctx context.Context, session models.TokenSession) (models.TokenGrant, error) {
	provider, err := t.providers.Get(session.Provider)
	if err != nil {
		return models.TokenGrant{}, err
	}
	grant, err := provider.RefreshAccessToken(ctx, session.RefreshToken)
	if err != nil {
		return models.TokenGrant{}, err
	}
	if grant.AccessToken == "" {
		return models.TokenGrant{}, errors.New("provider returned an empty access token")
	}
	return grant, nil
}

func (t *tokenManager) persistRotated(ctx context.Context, epoch uint64, auth models.StoredAuth) {
	t.persistMu.Lock()
	defer t.persistMu.Unlock()

	t.mu.Lock()
	current := t.epoch == epoch
	t.mu.Unlock()
	if !current {
		return
	}

	if err := t.repo.Save(ctx, auth); err != nil {
		t.logger.Err(err).Str("func", "tokenManager.persistRotated").Msg("failed to persist rotated refresh token")
	}
}

// expiresAt applies the safety margin and floor to the provider lifetime. A
// grant without a lifetime has no known expiry.
func (t *tokenManager) expiresAt(grant models.TokenGrant) time.Time {
	if grant.AccessToken == "" || grant.ExpiresIn <= 0 {
		return time.Time{}
	}
	lifetime := max(time.Duration(grant.ExpiresIn)*time.Second-expirySafetyMargin, minAccessTokenLifetime)
	return t.now().Add(lifetime)
}

func (t *tokenManager) expiredLocked() bool {
	expiresAt := t.session.AccessTokenExpiresAt
	return !expiresAt.IsZero() && !t.now().Before(expiresAt)
}

// scheduleLocked replaces the refresh timer with one firing at the current
// expiry, if the session has one.
func (t *tokenManager) scheduleLocked() {
	t.timerGen++
	if t.stopTimer != nil {
		t.stopTimer()
		t.stopTimer = nil
	}

	s := t.session
	if t.closed || t.phase != phaseActive || s.RefreshToken == "" || s.AccessToken == "" || s.AccessTokenExpiresAt.IsZero() {
		return
	}

	gen, epoch := t.timerGen, t.epoch
	d := max(s.AccessTokenExpiresAt.Sub(t.now()), 0)
	t.stopTimer = t.afterFunc(d, func() { t.onTimer(gen, epoch) })
}

func (t *tokenManager) onTimer(gen, epoch uint64) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error().Interface("panic", r).Str("func", "tokenManager.onTimer").Msg("refresh timer panicked")
		}
	}()

	t.mu.Lock()
	if gen != t.timerGen {
		t.mu.Unlock()
		return
	}
	t.stopTimer = nil
	t.mu.Unlock()

	if _, err := t.refresh(context.Background(), epoch); err != nil && !errors.Is(err, ErrSessionChanged) {
		t.logger.Warn().Err(err).Str("func", "tokenManager.onTimer").Msg("proactive refresh failed")
	}
}

func (t *tokenManager) stateLocked() models.SessionState {
	return models.SessionState{
		Provider:       t.session.Provider,
		HasSession:     t.phase == phaseActive,
		IsInitializing: t.phase == phaseUninitialized || t.phase == phaseLoading,
	}
}

// notifyLocked offers the current state to every subscriber, replacing any
// state the subscriber has not read yet.
func (t *tokenManager) notifyLocked() {
	state := t.stateLocked()
	for _, ch := range t.subs {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}
