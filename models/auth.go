// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredAuth is the only piece of session state written to durable secure
// storage. It is never created for [ProviderDevice].
type StoredAuth struct {
	Provider     ProviderID `json:"provider"`
	RefreshToken string     `json:"refreshToken"`
}

// TokenSession is the in-memory credential state of the active provider.
//
// Empty strings stand for absent tokens and a zero AccessTokenExpiresAt means
// the expiry is unknown.
type TokenSession struct {
	Provider             ProviderID
	AccessToken          string
	RefreshToken         string
	AccessTokenExpiresAt time.Time
}

// TokenGrant is what a provider token endpoint returns for a code exchange or
// a refresh. ExpiresIn is in seconds; RefreshToken is empty when the provider
// did not rotate it.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	IDToken      string
}

// SessionState is the observable view of the token session used by the UI to
// choose between logged-in and logged-out views.
type SessionState struct {
	Provider       ProviderID
	HasSession     bool
	IsInitializing bool
}

// OAuthCallback carries the query parameters of an OAuth redirect.
type OAuthCallback struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// UserInfo describes the account behind a provider session.
type UserInfo struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}
