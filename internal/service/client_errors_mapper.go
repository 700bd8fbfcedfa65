// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/app"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrAuth):
		return fmt.Errorf("%w: %w", ErrReauthorizationRequired, err)
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	return err
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoBackupOrWrongPassword), errors.Is(err, crypto.ErrDecryption):
		return app.MsgNoBackupOrWrongPassword
	case errors.Is(err, ErrNoBackup):
		return app.MsgNoBackup
	case errors.Is(err, ErrNoSession):
		return app.MsgNoSession
	case errors.Is(err, ErrReauthorizationRequired):
		return app.MsgReauthorizationRequired
	case errors.Is(err, ErrProviderUnavailable):
		return app.MsgProviderUnavailable
	case errors.Is(err, ErrAuthorizationTimedOut):
		return app.MsgAuthorizationTimedOut
	case errors.Is(err, ErrAuthorizationInProgress):
		return app.MsgAuthorizationInProgress
	case errors.Is(err, ErrAuthorizationCancelled), errors.Is(err, ErrAuthorizationDenied):
		return app.MsgAuthorizationCancelled
	case errors.Is(err, ErrInvalidPayload):
		return app.MsgInvalidPayload
	case errors.Is(err, crypto.ErrEmptyPassword):
		return app.MsgEmptyPassword
	case errors.Is(err, adapter.ErrUnsupportedOperation):
		return app.MsgUnsupportedOperation
	case errors.Is(err, store.ErrStorage):
		return app.MsgSecureStorageFailure
	case errors.Is(err, adapter.ErrClipboardUnsupported):
		return app.MsgNoClipboardUtility
	case errors.Is(err, ErrClipboardDisposed), errors.Is(err, ErrClipboardNotInitialized):
		return app.MsgClipboardUnavailable
	default:
		return app.MsgInternalError
	}
}
