// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstractions the vault core
// talks to: cloud providers that hold the encrypted vault, their OAuth token
// endpoints, and the desktop ports used by the authorization flow and the
// clipboard scheduler.
//
// The primary abstraction is [CloudProvider]. Dropbox and Google Drive are
// REST variants built on resty; the device variant keeps the vault in the
// local SQLite file store. Every remote variant is wrapped so that each upload
// is also written to the device store.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrAuth] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CloudProvider is the uniform capability set of a vault storage backend.
type CloudProvider interface {
	// ID returns the provider this implementation serves.
	ID() models.ProviderID

	// FetchUserInfo returns the account behind token. Returns [ErrAuth]
	// (wrapped) if the provider rejects the token.
	FetchUserInfo(ctx context.Context, token string) (models.UserInfo, error)

	// FetchFile downloads the file at remotePath. It returns (nil, nil) when
	// the provider reports that the file does not exist.
	FetchFile(ctx context.Context, token, remotePath string) ([]byte, error)

	// UploadFile writes content to remotePath, replacing any previous file.
	UploadFile(ctx context.Context, token string, content []byte, remotePath string) error

	// RefreshAccessToken exchanges refreshToken for a new access token. The
	// returned grant carries the old refresh token unless the provider
	// rotated it.
	RefreshAccessToken(ctx context.Context, refreshToken string) (models.TokenGrant, error)
}

// Authorizer is the token endpoint side of a remote provider, used by the
// authorization flow and by logout.
type Authorizer interface {
	// AuthCodeURL builds the authorization URL for a PKCE attempt.
	AuthCodeURL(state, verifier, redirectURL string) string

	// ExchangeCode redeems an authorization code. redirectURL must be the
	// one passed to AuthCodeURL.
	ExchangeCode(ctx context.Context, code, verifier, redirectURL string) (models.TokenGrant, error)

	// RevokeToken asks the provider to invalidate the session tokens. It
	// returns ErrNoRevocableToken without a request when the session lacks
	// the token the provider revokes by.
	RevokeToken(ctx context.Context, session models.TokenSession) error
}

// DeviceFileStore is the local blob store behind the device provider.
type DeviceFileStore interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, content []byte) error
}

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Browser opens authorization URLs for the user.
type Browser interface {
	// Open shows url and returns a handle that dismisses it.
	Open(ctx context.Context, url string) (Popup, error)
}

// Popup is an open authorization window.
type Popup interface {
	Close() error
}
