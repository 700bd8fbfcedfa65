package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/mock"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testRemotePath = "/vault.json"
	testPassword   = "correct horse battery staple"
)

type vaultFixture struct {
	svc      *vaultService
	tokens   *mock.MockTokenManager
	registry *mock.MockProviderRegistry
	provider *mock.MockCloudProvider
}

func newTestVaultService(t *testing.T, ctrl *gomock.Controller, id models.ProviderID) *vaultFixture {
	t.Helper()

	f := &vaultFixture{
		tokens:   mock.NewMockTokenManager(ctrl),
		registry: mock.NewMockProviderRegistry(ctrl),
		provider: mock.NewMockCloudProvider(ctrl),
	}
	f.tokens.EXPECT().State().Return(models.SessionState{Provider: id, HasSession: true}).AnyTimes()
	f.registry.EXPECT().Get(id).Return(f.provider, nil).AnyTimes()
	f.provider.EXPECT().ID().Return(id).AnyTimes()

	cipher := crypto.NewEnvelopeCipher(crypto.MinIterations)
	f.svc = NewVaultService(cipher, f.tokens, f.registry, config.ClientVault{RemotePath: testRemotePath}, logger.Nop()).(*vaultService)
	return f
}

func testPayload() models.VaultPayload {
	return models.VaultPayload{
		LastUpdated: time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
		Folders:     []string{"work"},
		Entries:     []json.RawMessage{json.RawMessage(`{"id":"1","title":"mail","folder":"work"}`)},
	}
}

// sealed returns the stored form of plain under testPassword.
func sealed(t *testing.T, plain string) []byte {
	t.Helper()

	envelope, err := crypto.NewEnvelopeCipher(crypto.MinIterations).Seal(plain, testPassword)
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)
	return body
}

// ── Push / Pull round trip ───────────────────────────────────────────────────

func TestVaultService_PushThenPull_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDropbox)
	ctx := context.Background()

	var stored []byte
	f.tokens.EXPECT().EnsureFreshAccessToken(gomock.Any()).Return("tok", nil).Times(2)
	f.provider.EXPECT().UploadFile(gomock.Any(), "tok", gomock.Any(), testRemotePath).
		DoAndReturn(func(_ context.Context, _ string, content []byte, _ string) error {
			stored = content
			return nil
		})
	f.provider.EXPECT().FetchFile(gomock.Any(), "tok", testRemotePath).
		DoAndReturn(func(context.Context, string, string) ([]byte, error) {
			return stored, nil
		})

	want := testPayload()
	require.NoError(t, f.svc.Push(ctx, want, testPassword))

	var envelope models.VaultEnvelope
	require.NoError(t, json.Unmarshal(stored, &envelope))
	assert.NotEmpty(t, envelope.Ciphertext)
	assert.NotContains(t, string(stored), "mail", "plaintext must not leak into the envelope")

	got, err := f.svc.Pull(ctx, testPassword)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVaultService_Push_NormalizesNilSlices(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDevice)

	var stored []byte
	f.provider.EXPECT().UploadFile(gomock.Any(), "", gomock.Any(), testRemotePath).
		DoAndReturn(func(_ context.Context, _ string, content []byte, _ string) error {
			stored = content
			return nil
		})

	payload := models.VaultPayload{LastUpdated: time.Now()}
	require.NoError(t, f.svc.Push(context.Background(), payload, testPassword))

	var envelope models.VaultEnvelope
	require.NoError(t, json.Unmarshal(stored, &envelope))
	plain, err := crypto.NewEnvelopeCipher(crypto.MinIterations).Unseal(envelope, testPassword)
	require.NoError(t, err)
	assert.Contains(t, plain, `"folders":[]`)
	assert.Contains(t, plain, `"entries":[]`)
}

func TestVaultService_Push_InvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload models.VaultPayload
	}{
		{
			name:    "missing lastUpdated",
			payload: models.VaultPayload{Folders: []string{}, Entries: []json.RawMessage{}},
		},
		{
			name: "entry is not an object",
			payload: models.VaultPayload{
				LastUpdated: time.Now(),
				Entries:     []json.RawMessage{json.RawMessage(`"just a string"`)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestVaultService(t, ctrl, models.ProviderDropbox)

			err := f.svc.Push(context.Background(), tt.payload, testPassword)
			require.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestVaultService_Push_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDropbox)

	err := f.svc.Push(context.Background(), testPayload(), "")
	require.ErrorIs(t, err, crypto.ErrEmptyPassword)
}

func TestVaultService_Push_CipherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDropbox)

	cipher := mock.NewMockEnvelopeCipher(ctrl)
	cipher.EXPECT().Seal(gomock.Any(), testPassword).Return(models.VaultEnvelope{}, errors.New("entropy exhausted"))
	f.svc.cipher = cipher

	require.Error(t, f.svc.Push(context.Background(), testPayload(), testPassword))
}

// ── Session and token handling ───────────────────────────────────────────────

func TestVaultService_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenManager(ctrl)
	tokens.EXPECT().State().Return(models.SessionState{}).AnyTimes()

	svc := NewVaultService(crypto.NewEnvelopeCipher(crypto.MinIterations), tokens, mock.NewMockProviderRegistry(ctrl), config.ClientVault{}, logger.Nop())

	require.ErrorIs(t, svc.Push(context.Background(), testPayload(), testPassword), ErrNoSession)
	_, err := svc.Pull(context.Background(), testPassword)
	require.ErrorIs(t, err, ErrNoSession)
	_, err = svc.Account(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestVaultService_RemoteWithoutAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderGoogleDrive)

	f.tokens.EXPECT().EnsureFreshAccessToken(gomock.Any()).Return("", nil)

	_, err := f.svc.Pull(context.Background(), testPassword)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestVaultService_RetriesOnceAfterUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDropbox)

	gomock.InOrder(
		f.tokens.EXPECT().EnsureFreshAccessToken(gomock.Any()).Return("stale", nil),
		f.provider.EXPECT().UploadFile(gomock.Any(), "stale", gomock.Any(), testRemotePath).Return(fmt.Errorf("upload: %w", adapter.ErrAuth)),
		f.tokens.EXPECT().InvalidateAccessToken(),
		f.tokens.EXPECT().EnsureFreshAccessToken(gomock.Any()).Return("fresh", nil),
		f.provider.EXPECT().UploadFile(gomock.Any(), "fresh", gomock.Any(), testRemotePath).Return(nil),
	)

	require.NoError(t, f.svc.Push(context.Background(), testPayload(), testPassword))
}

func TestVaultService_UnauthorizedTwiceNeedsReauthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDropbox)

	f.tokens.EXPECT().EnsureFreshAccessToken(gomock.Any()).Return("tok", nil).Times(2)
	f.tokens.EXPECT().InvalidateAccessToken().Times(1)
	f.provider.EXPECT().FetchUserInfo(gomock.Any(), "tok").Return(models.UserInfo{}, adapter.ErrAuth).Times(2)

	_, err := f.svc.Account(context.Background())
	require.ErrorIs(t, err, ErrReauthorizationRequired)
	assert.ErrorIs(t, err, adapter.ErrAuth)
}

func TestVaultService_RefreshFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDropbox)

	f.tokens.EXPECT().EnsureFreshAccessToken(gomock.Any()).Return("", fmt.Errorf("refresh access token: %w", adapter.ErrAuth))

	_, err := f.svc.Account(context.Background())
	require.ErrorIs(t, err, ErrReauthorizationRequired)
}

func TestVaultService_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDropbox)

	f.tokens.EXPECT().EnsureFreshAccessToken(gomock.Any()).Return("tok", nil)
	f.provider.EXPECT().FetchFile(gomock.Any(), "tok", testRemotePath).Return(nil, fmt.Errorf("fetch: %w", adapter.ErrNetwork))

	_, err := f.svc.Pull(context.Background(), testPassword)
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestVaultService_DeviceNeedsNoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDevice)

	f.provider.EXPECT().FetchUserInfo(gomock.Any(), "").Return(models.UserInfo{Username: "This device"}, nil)

	info, err := f.svc.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "This device", info.Username)
}

// ── Pull failures ────────────────────────────────────────────────────────────

func TestVaultService_Pull_NoBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultService(t, ctrl, models.ProviderDevice)

	f.provider.EXPECT().FetchFile(gomock.Any(), "", testRemotePath).Return(nil, nil)

	_, err := f.svc.Pull(context.Background(), testPassword)
	require.ErrorIs(t, err, ErrNoBackup)
}

func TestVaultService_Pull_UnreadableBackups(t *testing.T) {
	tests := []struct {
		name     string
		content  func(t *testing.T) []byte
		password string
	}{
		{
			name:     "wrong password",
			content:  func(t *testing.T) []byte { return sealed(t, `{"lastUpdated":"2026-01-01T00:00:00Z","folders":[],"entries":[]}`) },
			password: "wrong",
		},
		{
			name:     "not an envelope",
			content:  func(*testing.T) []byte { return []byte("<html>not json</html>") },
			password: testPassword,
		},
		{
			name:     "envelope with broken fields",
			content:  func(*testing.T) []byte { return []byte(`{"ciphertext":"!!","salt":"zz","iv":"zz"}`) },
			password: testPassword,
		},
		{
			name:     "decrypts to a non-vault document",
			content:  func(t *testing.T) []byte { return sealed(t, `{"hello":"world"}`) },
			password: testPassword,
		},
		{
			name:     "decrypts to entries that are not objects",
			content:  func(t *testing.T) []byte { return sealed(t, `{"lastUpdated":"2026-01-01T00:00:00Z","folders":[],"entries":[1,2]}`) },
			password: testPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestVaultService(t, ctrl, models.ProviderDevice)

			f.provider.EXPECT().FetchFile(gomock.Any(), "", testRemotePath).Return(tt.content(t), nil)

			_, err := f.svc.Pull(context.Background(), tt.password)
			require.ErrorIs(t, err, ErrNoBackupOrWrongPassword)
		})
	}
}
