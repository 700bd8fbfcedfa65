// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// VaultEnvelope is the sealed form of the vault as it is stored remotely.
//
// Salt and IV are hex-encoded and generated fresh on every seal; Ciphertext is
// the base64 (standard encoding) AES-CBC output. None of the three fields is
// secret on its own.
type VaultEnvelope struct {
	Ciphertext string `json:"ciphertext"`
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
}

// VaultPayload is the decrypted vault document.
//
// Entries are owned by the UI layer; the core keeps them as raw JSON objects
// and only checks the shape of the document after decryption.
type VaultPayload struct {
	// LastUpdated is the moment the vault was last modified on any device.
	LastUpdated time.Time `json:"lastUpdated"`

	// Folders lists folder names referenced by entries.
	Folders []string `json:"folders"`

	// Entries holds the vault items as opaque JSON objects.
	Entries []json.RawMessage `json:"entries"`
}
