package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SecureStorage is the OS keyring.
	SecureStorage SecureStorage

	// StoredAuthRepository keeps the refresh token of the remote session.
	StoredAuthRepository StoredAuthRepository

	// DeviceFileRepository is the SQLite-backed file store of the device
	// provider.
	DeviceFileRepository DeviceFileRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the keyring-backed [SecureStorage] and the repositories on top of
//     both backends.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	secure := NewKeyringStorage(cfg.KeyringService, logger)

	return &ClientStorages{
		SecureStorage:        secure,
		StoredAuthRepository: NewStoredAuthRepository(secure, logger),
		DeviceFileRepository: NewDeviceFileRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the device store connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
