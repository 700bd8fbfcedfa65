package service

import (
	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
)

// ClientServices bundles the services of one client process.
type ClientServices struct {
	Tokens        TokenManager
	Authorization AuthorizationFlow
	Vault         VaultService
	Clipboard     ClipboardScheduler
}

// ClientDeps are the adapters and stores the services are built on.
type ClientDeps struct {
	AuthRepo    store.StoredAuthRepository
	Providers   ProviderRegistry
	Browser     adapter.Browser
	Clipboard   adapter.Clipboard
	NewListener ListenerFactory
}

// NewClientServices wires every client service. The token manager is not
// started and the clipboard scheduler is not initialized.
func NewClientServices(cfg *config.ClientConfig, deps ClientDeps, log *logger.Logger) *ClientServices {
	tokens := NewTokenManager(deps.AuthRepo, deps.Providers, log)

	flow := NewAuthorizationFlow(deps.Providers, tokens, deps.Browser, OAuthFlowConfig{
		NewListener: deps.NewListener,
		RedirectURI: cfg.OAuth.RedirectURI,
		Timeout:     cfg.OAuth.Timeout,
	}, log)

	return &ClientServices{
		Tokens:        tokens,
		Authorization: flow,
		Vault:         NewVaultService(crypto.NewEnvelopeCipher(cfg.Vault.KDFIterations), tokens, deps.Providers, cfg.Vault, log),
		Clipboard:     NewClipboardScheduler(deps.Clipboard, log),
	}
}

// Close releases timers and pending authorization attempts.
func (s *ClientServices) Close() {
	s.Authorization.Close()
	s.Clipboard.Dispose()
	s.Tokens.Close()
}
