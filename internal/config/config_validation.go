// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strings"
)

const minKDFIterations = 1000

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Field-level rules live in [ClientConfig.validate], which runs
// after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") || cfg.Storage.KeyringService == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Vault.KDFIterations < minKDFIterations || !strings.HasPrefix(cfg.Vault.RemotePath, "/") {
		return ErrInvalidVaultConfigs
	}

	if app, remote := cfg.Providers.App(cfg.Providers.Default); remote && app.ClientID == "" {
		return ErrInvalidProviderConfigs
	}

	if cfg.OAuth.Timeout <= 0 {
		return ErrInvalidOAuthConfigs
	}
	if cfg.OAuth.UsesLoopback() {
		if !isLoopbackAddress(cfg.OAuth.RedirectAddress) || !strings.HasPrefix(cfg.OAuth.CallbackPath, "/") {
			return ErrInvalidOAuthConfigs
		}
	}

	return nil
}

func isLoopbackAddress(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
