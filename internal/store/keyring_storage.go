// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// keyringStorage is the OS keyring implementation of [SecureStorage]
// (Secret Service on Linux, Keychain on macOS, Credential Manager on
// Windows). Every value lives under one service name.
type keyringStorage struct {
	service string
	logger  *logger.Logger

	// writes are serialized; reads are not.
	mu sync.Mutex
}

// NewKeyringStorage constructs a [SecureStorage] that stores values under
// service in the OS keyring.
func NewKeyringStorage(service string, logger *logger.Logger) SecureStorage {
	logger.Debug().Str("service", service).Msg("creating keyring storage")
	return &keyringStorage{
		service: service,
		logger:  logger,
	}
}

// GetData implements [SecureStorage].
func (k *keyringStorage) GetData(ctx context.Context, key string) (string, bool, error) {
	value, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		k.logger.Err(err).
			Str("func", "*keyringStorage.GetData").
			Str("key", key).
			Msg("failed to read from keyring")
		return "", false, fmt.Errorf("%w: get %q: %w", ErrStorage, key, err)
	}

	return value, true, nil
}

// SaveData implements [SecureStorage].
func (k *keyringStorage) SaveData(ctx context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := keyring.Set(k.service, key, value); err != nil {
		k.logger.Err(err).
			Str("func", "*keyringStorage.SaveData").
			Str("key", key).
			Msg("failed to write to keyring")
		return fmt.Errorf("%w: save %q: %w", ErrStorage, key, err)
	}

	return nil
}

// RemoveData implements [SecureStorage]. Removing a missing key succeeds.
func (k *keyringStorage) RemoveData(ctx context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	err := keyring.Delete(k.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		k.logger.Err(err).
			Str("func", "*keyringStorage.RemoveData").
			Str("key", key).
			Msg("failed to delete from keyring")
		return fmt.Errorf("%w: remove %q: %w", ErrStorage, key, err)
	}

	return nil
}
