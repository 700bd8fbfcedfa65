package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/server"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/internal/workers"
	"github.com/MKhiriev/go-pass-sync/models"
)

// App is the client process: one set of services over one storage layer.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	closers  []io.Closer
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the storages and builds every service from cfg. Prompts for
// the user, such as an authorization URL that could not be opened in a
// browser, are written to out.
func NewApp(ctx context.Context, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	deps := service.ClientDeps{
		AuthRepo:  storages.StoredAuthRepository,
		Providers: adapter.NewProviders(cfg.Providers, cfg.Adapter, storages.DeviceFileRepository, log),
		Browser:   adapter.NewSystemBrowser(out, log),
		Clipboard: adapter.NewSystemClipboard(),
	}
	if cfg.OAuth.UsesLoopback() {
		deps.NewListener = server.NewCallbackListenerFactory(cfg.OAuth, log)
	}

	return newApp(cfg, service.NewClientServices(cfg, deps, log), log, storages), nil
}

func newApp(cfg *config.ClientConfig, services *service.ClientServices, log *logger.Logger, closers ...io.Closer) *App {
	return &App{
		cfg:      cfg,
		services: services,
		closers:  closers,
		logger:   log.WithComponent("app"),
	}
}

// Start restores the persisted session, falls back to the default provider
// when it needs no authorization and initializes the clipboard.
func (a *App) Start(ctx context.Context) error {
	startup := workers.New(
		workers.Func(func(ctx context.Context) error {
			a.services.Tokens.Start(ctx)
			return nil
		}),
		workers.Func(a.ensureDeviceSession),
		workers.Func(func(context.Context) error {
			a.services.Clipboard.Init()
			return nil
		}),
	)

	if err := startup.Run(ctx); err != nil {
		return fmt.Errorf("start client: %w", err)
	}
	a.logger.Debug().Str("func", "*App.Start").Interface("state", a.services.Tokens.State()).Msg("client started")
	return nil
}

func (a *App) ensureDeviceSession(ctx context.Context) error {
	if a.cfg.Providers.Default != models.ProviderDevice || a.services.Tokens.State().HasSession {
		return nil
	}
	return a.services.Tokens.SetSession(ctx, models.ProviderDevice, models.TokenGrant{})
}

// Login establishes a session with provider. For remote providers it runs an
// authorization and waits for its result. When redirects arrive through a
// custom scheme, readRedirect is asked for the redirect URL.
func (a *App) Login(ctx context.Context, provider models.ProviderID, readRedirect func() (string, error)) error {
	if err := provider.Validate(); err != nil {
		return err
	}
	if !provider.IsRemote() {
		return a.services.Tokens.SetSession(ctx, provider, models.TokenGrant{})
	}

	results, err := a.services.Authorization.Authorize(ctx, provider)
	if err != nil {
		return err
	}

	if !a.cfg.OAuth.UsesLoopback() && readRedirect != nil {
		go a.feedRedirect(provider, readRedirect)
	}

	select {
	case res := <-results:
		return res.Err
	case <-ctx.Done():
		a.services.Authorization.Cancel(provider)
		res := <-results
		if res.Err == nil {
			return nil
		}
		return errors.Join(ctx.Err(), res.Err)
	}
}

func (a *App) feedRedirect(provider models.ProviderID, readRedirect func() (string, error)) {
	redirectURL, err := readRedirect()
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.feedRedirect").Msg("no redirect read")
		return
	}
	if err := a.services.Authorization.HandleRedirect(provider, redirectURL); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.feedRedirect").Msg("redirect rejected")
	}
}

// Logout revokes and forgets the current session.
func (a *App) Logout(ctx context.Context) error {
	return a.services.Tokens.Logout(ctx)
}

// Status reports the current session state.
func (a *App) Status() models.SessionState {
	return a.services.Tokens.State()
}

// Account describes the account behind the current session.
func (a *App) Account(ctx context.Context) (models.UserInfo, error) {
	return a.services.Vault.Account(ctx)
}

// Push seals payload with password and uploads it.
func (a *App) Push(ctx context.Context, payload models.VaultPayload, password string) error {
	return a.services.Vault.Push(ctx, payload, password)
}

// Pull downloads the vault and opens it with password.
func (a *App) Pull(ctx context.Context, password string) (models.VaultPayload, error) {
	return a.services.Vault.Pull(ctx, password)
}

// Copy puts value on the clipboard and blocks until the configured delay has
// passed. When ctx is done first the clipboard is cleared at once.
func (a *App) Copy(ctx context.Context, value string) error {
	d := a.cfg.Clipboard.ClearAfter
	if err := a.services.Clipboard.Copy(value, d); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return a.services.Clipboard.ForceClearNow()
	}
}

// Close stops the services and releases the storages.
func (a *App) Close() error {
	a.services.Close()

	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultProvider is the provider used when none is named.
func (a *App) DefaultProvider() models.ProviderID {
	return a.cfg.Providers.Default
}
