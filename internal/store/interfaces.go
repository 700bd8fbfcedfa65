package store

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecureStorage is a platform key/value secret store. A missing key is not an
// error: GetData reports it through the boolean result.
type SecureStorage interface {
	GetData(ctx context.Context, key string) (string, bool, error)
	SaveData(ctx context.Context, key, value string) error
	RemoveData(ctx context.Context, key string) error
}

// StoredAuthRepository persists the single long-lived credential of the
// client. Only remote providers can have one.
type StoredAuthRepository interface {
	// Load returns the stored credential. The boolean is false when nothing
	// is stored.
	Load(ctx context.Context) (models.StoredAuth, bool, error)
	// Save replaces the stored credential. It rejects the device provider.
	Save(ctx context.Context, auth models.StoredAuth) error
	// Delete removes the stored credential. Deleting nothing succeeds.
	Delete(ctx context.Context) error
}
