// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals and unseals the vault payload with a key derived from
// the user's master password.
//
// Scheme:
//
//	salt, iv   = 16 random bytes each, fresh on every seal
//	key        = PBKDF2-HMAC-SHA256(password, salt, iterations, 32 bytes)
//	ciphertext = AES-256-CBC(key, iv, PKCS7(payload))
//
// The envelope carries no authentication tag. A wrong password and a
// corrupted envelope are reported with the same [ErrDecryption].
package crypto

import "github.com/MKhiriev/go-pass-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_cipher_mock.go -package=mock

// EnvelopeCipher turns a plaintext vault payload into a [models.VaultEnvelope]
// and back. It knows nothing about transport or storage.
type EnvelopeCipher interface {
	// Seal encrypts payload with a key derived from password. Salt and IV are
	// generated per call, so two seals of the same input never compare equal.
	Seal(payload, password string) (models.VaultEnvelope, error)

	// Unseal re-derives the key from the envelope salt and decrypts the
	// ciphertext. Every failure wraps [ErrDecryption] and says nothing about
	// which check failed.
	Unseal(envelope models.VaultEnvelope, password string) (string, error)
}
