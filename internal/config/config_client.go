package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
)

// ClientVault holds vault settings.
type ClientVault struct {
	// KDFIterations is the PBKDF2 iteration count passed to the cipher.
	KDFIterations int
	// RemotePath is where the envelope lives on the active provider.
	RemotePath string
}

// ClientOAuthApp is one provider's OAuth registration and REST endpoints.
type ClientOAuthApp struct {
	ClientID       string
	ClientSecret   string
	Scopes         []string
	APIBaseURL     string
	ContentBaseURL string
	AuthURL        string
	TokenURL       string
	RevokeURL      string
}

// ClientProviders groups provider settings.
type ClientProviders struct {
	// Default is the provider used when no session is persisted.
	Default     models.ProviderID
	Dropbox     ClientOAuthApp
	GoogleDrive ClientOAuthApp
}

// ClientOAuth holds authorization flow settings.
type ClientOAuth struct {
	RedirectAddress string
	CallbackPath    string
	RedirectURI     string
	Timeout         time.Duration
}

// UsesLoopback reports whether redirects are received by a local listener
// rather than a custom URL scheme.
func (o ClientOAuth) UsesLoopback() bool {
	return o.RedirectURI == ""
}

// ClientClipboard holds clipboard settings. ClearAfter is zero when
// auto-clear is disabled.
type ClientClipboard struct {
	ClearAfter time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the device file store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// KeyringService is the OS keyring service name.
	KeyringService string
}

// ClientAdapter holds network settings used by the provider REST clients.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound provider requests.
	RequestTimeout time.Duration
}

// ClientLog holds log settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Vault     ClientVault
	Providers ClientProviders
	OAuth     ClientOAuth
	Clipboard ClientClipboard
	Storage   ClientStorage
	Adapter   ClientAdapter
	Log       ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	provider, err := models.ParseProviderID(cfg.Providers.Default)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProviderConfigs, err)
	}

	clearAfter := cfg.Clipboard.ClearAfter
	if clearAfter < 0 {
		clearAfter = 0
	}

	clientCfg := &ClientConfig{
		Vault: ClientVault{
			KDFIterations: cfg.Vault.KDFIterations,
			RemotePath:    cfg.Vault.RemotePath,
		},
		Providers: ClientProviders{
			Default:     provider,
			Dropbox:     ClientOAuthApp(cfg.Providers.Dropbox),
			GoogleDrive: ClientOAuthApp(cfg.Providers.GoogleDrive),
		},
		OAuth: ClientOAuth{
			RedirectAddress: cfg.OAuth.RedirectAddress,
			CallbackPath:    cfg.OAuth.CallbackPath,
			RedirectURI:     cfg.OAuth.RedirectURI,
			Timeout:         cfg.OAuth.Timeout,
		},
		Clipboard: ClientClipboard{ClearAfter: clearAfter},
		Storage: ClientStorage{
			DB:             ClientDB{DSN: cfg.Storage.DB.DSN},
			KeyringService: cfg.Storage.KeyringService,
		},
		Adapter: ClientAdapter{RequestTimeout: cfg.Adapter.RequestTimeout},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}

// App returns the registration of a remote provider. The second result is
// false for the device provider.
func (p ClientProviders) App(id models.ProviderID) (ClientOAuthApp, bool) {
	switch id {
	case models.ProviderDropbox:
		return p.Dropbox, true
	case models.ProviderGoogleDrive:
		return p.GoogleDrive, true
	case models.ProviderDevice:
		return ClientOAuthApp{}, false
	}
	return ClientOAuthApp{}, false
}
