package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DeviceFileRepository is the local file store backing the device provider
// and the write-through mirror of remote uploads.
type DeviceFileRepository interface {
	// Get returns the content stored under path, or nil when there is none.
	Get(ctx context.Context, path string) ([]byte, error)
	// Put creates or replaces the content stored under path.
	Put(ctx context.Context, path string, content []byte) error
}
