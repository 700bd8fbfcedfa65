package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

type vaultService struct {
	cipher     crypto.EnvelopeCipher
	tokens     TokenManager
	providers  ProviderRegistry
	remotePath string
	logger     *logger.Logger
}

// NewVaultService returns a [VaultService] working against the provider of
// the current session.
func NewVaultService(cipher crypto.EnvelopeCipher, tokens TokenManager, providers ProviderRegistry, cfg config.ClientVault, log *logger.Logger) VaultService {
	return &vaultService{
		cipher:     cipher,
		tokens:     tokens,
		providers:  providers,
		remotePath: cfg.RemotePath,
		logger:     log.WithComponent("vault"),
	}
}

// Push seals payload with password and uploads it, replacing the previous
// backup.
func (v *vaultService) Push(ctx context.Context, payload models.VaultPayload, password string) error {
	if payload.Folders == nil {
		payload.Folders = []string{}
	}
	if payload.Entries == nil {
		payload.Entries = []json.RawMessage{}
	}
	if err := validatePayload(payload); err != nil {
		return err
	}

	provider, err := v.activeProvider()
	if err != nil {
		return err
	}

	plain, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("push: encode payload: %w", err)
	}

	envelope, err := v.cipher.Seal(string(plain), password)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("push: encode envelope: %w", err)
	}

	err = v.withToken(ctx, provider, func(token string) error {
		return provider.UploadFile(ctx, token, body, v.remotePath)
	})
	if err != nil {
		return fmt.Errorf("push: %w", mapAdapterError(err))
	}

	v.logger.Info().Str("func", "vaultService.Push").Str("provider", provider.ID().String()).Int("entries", len(payload.Entries)).Msg("vault uploaded")
	return nil
}

// Pull downloads and opens the backup. A wrong password and a file that is
// not a vault are both reported as ErrNoBackupOrWrongPassword.
func (v *vaultService) Pull(ctx context.Context, password string) (models.VaultPayload, error) {
	provider, err := v.activeProvider()
	if err != nil {
		return models.VaultPayload{}, err
	}

	var content []byte
	err = v.withToken(ctx, provider, func(token string) error {
		var ferr error
		content, ferr = provider.FetchFile(ctx, token, v.remotePath)
		return ferr
	})
	if err != nil {
		return models.VaultPayload{}, fmt.Errorf("pull: %w", mapAdapterError(err))
	}
	if content == nil {
		return models.VaultPayload{}, ErrNoBackup
	}

	var envelope models.VaultEnvelope
	if err = json.Unmarshal(content, &envelope); err != nil {
		v.logger.Debug().Err(err).Str("func", "vaultService.Pull").Msg("backup is not an envelope")
		return models.VaultPayload{}, ErrNoBackupOrWrongPassword
	}

	plain, err := v.cipher.Unseal(envelope, password)
	if err != nil {
		return models.VaultPayload{}, ErrNoBackupOrWrongPassword
	}

	payload, err := decodePayload(plain)
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "vaultService.Pull").Msg("decrypted backup failed validation")
		return models.VaultPayload{}, ErrNoBackupOrWrongPassword
	}

	v.logger.Info().Str("func", "vaultService.Pull").Str("provider", provider.ID().String()).Int("entries", len(payload.Entries)).Msg("vault downloaded")
	return payload, nil
}

// Account returns the account behind the current session.
func (v *vaultService) Account(ctx context.Context) (models.UserInfo, error) {
	provider, err := v.activeProvider()
	if err != nil {
		return models.UserInfo{}, err
	}

	var info models.UserInfo
	err = v.withToken(ctx, provider, func(token string) error {
		var ferr error
		info, ferr = provider.FetchUserInfo(ctx, token)
		return ferr
	})
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("account: %w", mapAdapterError(err))
	}

	return info, nil
}

func (v *vaultService) activeProvider() (adapter.CloudProvider, error) {
	state := v.tokens.State()
	if !state.HasSession {
		return nil, ErrNoSession
	}
	return v.providers.Get(state.Provider)
}

// withToken runs op with a fresh bearer token. When the provider rejects the
// token, it forces one refresh and retries once.
func (v *vaultService) withToken(ctx context.Context, provider adapter.CloudProvider, op func(token string) error) error {
	if !provider.ID().IsRemote() {
		return op("")
	}

	token, err := v.bearer(ctx)
	if err != nil {
		return err
	}

	err = op(token)
	if !errors.Is(err, adapter.ErrAuth) {
		return err
	}

	v.logger.Debug().Str("func", "vaultService.withToken").Str("provider", provider.ID().String()).Msg("token rejected, refreshing and retrying once")
	v.tokens.InvalidateAccessToken()

	if token, err = v.bearer(ctx); err != nil {
		return err
	}
	return op(token)
}

func (v *vaultService) bearer(ctx context.Context) (string, error) {
	token, err := v.tokens.EnsureFreshAccessToken(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}
