package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

// deviceUsername is what FetchUserInfo reports for the local-only provider.
const deviceUsername = "This device"

type deviceProvider struct {
	files  DeviceFileStore
	logger *logger.Logger
}

// NewDeviceProvider returns the local-only [CloudProvider]. No operation uses
// the token argument.
func NewDeviceProvider(files DeviceFileStore, log *logger.Logger) CloudProvider {
	return &deviceProvider{files: files, logger: log.WithComponent("device")}
}

func (d *deviceProvider) ID() models.ProviderID {
	return models.ProviderDevice
}

func (d *deviceProvider) FetchUserInfo(_ context.Context, _ string) (models.UserInfo, error) {
	return models.UserInfo{Username: deviceUsername}, nil
}

func (d *deviceProvider) FetchFile(ctx context.Context, _, remotePath string) ([]byte, error) {
	content, err := d.files.Get(ctx, remotePath)
	if err != nil {
		return nil, fmt.Errorf("device read %q: %w", remotePath, err)
	}
	return content, nil
}

func (d *deviceProvider) UploadFile(ctx context.Context, _ string, content []byte, remotePath string) error {
	if err := d.files.Put(ctx, remotePath, content); err != nil {
		return fmt.Errorf("device write %q: %w", remotePath, err)
	}

	d.logger.Debug().Str("func", "deviceProvider.UploadFile").Str("path", remotePath).Int("bytes", len(content)).Msg("vault written to device")
	return nil
}

func (d *deviceProvider) RefreshAccessToken(_ context.Context, _ string) (models.TokenGrant, error) {
	return models.TokenGrant{}, fmt.Errorf("device refresh: %w", ErrUnsupportedOperation)
}
