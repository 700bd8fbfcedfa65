package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

// Providers dispatches by [models.ProviderID]. Remote providers are mirrored
// to the device provider.
type Providers struct {
	providers   map[models.ProviderID]CloudProvider
	authorizers map[models.ProviderID]Authorizer
}

// NewProviders builds every supported provider from cfg. files backs the
// device provider and the mirror of the remote ones.
func NewProviders(cfg config.ClientProviders, adapterCfg config.ClientAdapter, files DeviceFileStore, log *logger.Logger) *Providers {
	device := NewDeviceProvider(files, log)
	dropbox := newDropboxProvider(cfg.Dropbox, adapterCfg, log)
	googleDrive := newGoogleDriveProvider(cfg.GoogleDrive, adapterCfg, log)

	return &Providers{
		providers: map[models.ProviderID]CloudProvider{
			models.ProviderDevice:      device,
			models.ProviderDropbox:     newMirroredProvider(dropbox, device, log),
			models.ProviderGoogleDrive: newMirroredProvider(googleDrive, device, log),
		},
		authorizers: map[models.ProviderID]Authorizer{
			models.ProviderDropbox:     dropbox,
			models.ProviderGoogleDrive: googleDrive,
		},
	}
}

// NewProvidersFrom builds a registry from ready-made variants. Every provider
// that also implements [Authorizer] is registered as one.
func NewProvidersFrom(providers ...CloudProvider) *Providers {
	p := &Providers{
		providers:   make(map[models.ProviderID]CloudProvider, len(providers)),
		authorizers: make(map[models.ProviderID]Authorizer, len(providers)),
	}
	for _, provider := range providers {
		p.providers[provider.ID()] = provider
		if a, ok := provider.(Authorizer); ok {
			p.authorizers[provider.ID()] = a
		}
	}
	return p
}

// Get returns the provider for id.
func (p *Providers) Get(id models.ProviderID) (CloudProvider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	provider, ok := p.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrUnknownProvider, id.String())
	}

	return provider, nil
}

// Authorizer returns the token endpoint client for id. The device provider
// has none.
func (p *Providers) Authorizer(id models.ProviderID) (Authorizer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !id.IsRemote() {
		return nil, fmt.Errorf("authorize %s: %w", id.String(), ErrUnsupportedOperation)
	}

	a, ok := p.authorizers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no authorizer", ErrUnknownProvider, id.String())
	}

	return a, nil
}
