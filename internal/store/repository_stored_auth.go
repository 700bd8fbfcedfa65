package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

// storedAuthKey is the secure storage key of the single persisted credential.
const storedAuthKey = "storedAuth"

type storedAuthRepository struct {
	storage SecureStorage
	logger  *logger.Logger
}

// NewStoredAuthRepository constructs a [StoredAuthRepository] that keeps a
// JSON-encoded [models.StoredAuth] in storage.
func NewStoredAuthRepository(storage SecureStorage, logger *logger.Logger) StoredAuthRepository {
	return &storedAuthRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *storedAuthRepository) Load(ctx context.Context) (models.StoredAuth, bool, error) {
	raw, ok, err := r.storage.GetData(ctx, storedAuthKey)
	if err != nil {
		return models.StoredAuth{}, false, err
	}
	if !ok {
		return models.StoredAuth{}, false, nil
	}

	var auth models.StoredAuth
	if err := json.Unmarshal([]byte(raw), &auth); err != nil {
		r.logger.Err(err).Str("func", "*storedAuthRepository.Load").Msg("stored auth is not valid JSON")
		return models.StoredAuth{}, false, fmt.Errorf("%w: %w", ErrCorruptedStoredAuth, err)
	}
	if err := auth.Provider.Validate(); err != nil || !auth.Provider.IsRemote() || auth.RefreshToken == "" {
		r.logger.Error().
			Str("func", "*storedAuthRepository.Load").
			Str("provider", auth.Provider.String()).
			Msg("stored auth names no remote provider or has no refresh token")
		return models.StoredAuth{}, false, ErrCorruptedStoredAuth
	}

	return auth, true, nil
}

func (r *storedAuthRepository) Save(ctx context.Context, auth models.StoredAuth) error {
	if err := auth.Provider.Validate(); err != nil {
		return err
	}
	if !auth.Provider.IsRemote() {
		return ErrDeviceHasNoStoredAuth
	}

	raw, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("encode stored auth: %w", err)
	}

	return r.storage.SaveData(ctx, storedAuthKey, string(raw))
}

func (r *storedAuthRepository) Delete(ctx context.Context) error {
	return r.storage.RemoveData(ctx, storedAuthKey)
}
