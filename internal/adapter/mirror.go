package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// mirroredProvider writes every upload of a remote provider through to the
// device provider as well, so the device always holds the latest vault the
// user tried to save.
type mirroredProvider struct {
	CloudProvider

	device CloudProvider
	logger *logger.Logger
}

func newMirroredProvider(remote, device CloudProvider, log *logger.Logger) CloudProvider {
	return &mirroredProvider{CloudProvider: remote, device: device, logger: log.WithComponent("mirror")}
}

// UploadFile returns the remote result unchanged. The device write happens
// whatever that result is, and its failure is only logged.
func (m *mirroredProvider) UploadFile(ctx context.Context, token string, content []byte, remotePath string) error {
	remoteErr := m.CloudProvider.UploadFile(ctx, token, content, remotePath)

	if err := m.device.UploadFile(context.WithoutCancel(ctx), "", content, remotePath); err != nil {
		m.logger.Warn().Err(err).
			Str("func", "mirroredProvider.UploadFile").
			Str("provider", m.ID().String()).
			Msg("device mirror write failed")
	}

	return remoteErr
}

