// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ProviderID identifies a storage backend the vault can be synchronized with.
//
// The set of providers is closed: every switch over ProviderID in this module
// lists all three values and treats anything else as [ErrUnknownProvider].
type ProviderID string

const (
	// ProviderDropbox stores the vault in the app folder of a Dropbox account.
	ProviderDropbox ProviderID = "dropbox"

	// ProviderGoogleDrive stores the vault in the hidden appDataFolder of a
	// Google Drive account.
	ProviderGoogleDrive ProviderID = "googleDrive"

	// ProviderDevice stores the vault on the local device only. It never has a
	// network session and never needs a bearer token.
	ProviderDevice ProviderID = "device"
)

// ErrUnknownProvider is returned when a string or value does not name one of
// the supported providers.
var ErrUnknownProvider = errors.New("unknown provider")

// AllProviders returns every supported provider in a stable order.
func AllProviders() []ProviderID {
	return []ProviderID{ProviderDropbox, ProviderGoogleDrive, ProviderDevice}
}

// ParseProviderID converts its textual form into a [ProviderID].
func ParseProviderID(s string) (ProviderID, error) {
	p := ProviderID(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate reports whether p is one of the supported providers.
func (p ProviderID) Validate() error {
	switch p {
	case ProviderDropbox, ProviderGoogleDrive, ProviderDevice:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, string(p))
	}
}

// IsRemote reports whether the provider talks to a network service and
// therefore needs OAuth credentials.
func (p ProviderID) IsRemote() bool {
	switch p {
	case ProviderDropbox, ProviderGoogleDrive:
		return true
	case ProviderDevice:
		return false
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (p ProviderID) String() string {
	return string(p)
}
