// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for client applications.
type Client interface {
	// Start restores persisted state and prepares the services for use.
	Start(ctx context.Context) error

	// Close releases every resource held by the client.
	Close() error
}
