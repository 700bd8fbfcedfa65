package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevice_RefreshUnsupported(t *testing.T) {
	d := NewDeviceProvider(newMemFiles(), logger.Nop())

	_, err := d.RefreshAccessToken(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestDevice_ReadWriteWithoutToken(t *testing.T) {
	files := newMemFiles()
	d := NewDeviceProvider(files, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, models.ProviderDevice, d.ID())

	content, err := d.FetchFile(ctx, "", "/vault.json")
	require.NoError(t, err)
	assert.Nil(t, content, "missing file reads as nil")

	require.NoError(t, d.UploadFile(ctx, "", []byte("v1"), "/vault.json"))
	require.NoError(t, d.UploadFile(ctx, "", []byte("v2"), "/vault.json"))

	content, err = d.FetchFile(ctx, "", "/vault.json")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(content))

	info, err := d.FetchUserInfo(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, deviceUsername, info.Username)
}

func TestDevice_StoreError(t *testing.T) {
	files := newMemFiles()
	files.putErr = errors.New("disk full")
	d := NewDeviceProvider(files, logger.Nop())

	err := d.UploadFile(context.Background(), "", []byte("v1"), "/vault.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, files.putErr)
}
