// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-pass-sync/models"
)

const (
	// SaltSize is the PBKDF2 salt length in bytes (128 bits).
	SaltSize = 16
	// IVSize is the CBC initialisation vector length, equal to the AES block.
	IVSize = aes.BlockSize
	// KeySize selects AES-256.
	KeySize = 32

	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 100_000
	// MinIterations is the lowest work factor accepted; smaller values are
	// raised to it.
	MinIterations = 1000
)

// envelopeCipher is the private implementation of [EnvelopeCipher].
type envelopeCipher struct {
	iterations int
	random     io.Reader
}

// NewEnvelopeCipher constructs an [EnvelopeCipher] with the given PBKDF2
// iteration count. Zero selects [DefaultIterations]; anything below
// [MinIterations] is raised to it.
//
// The iteration count is not stored in the envelope, so every client that
// reads a vault must be configured with the value it was sealed with.
func NewEnvelopeCipher(iterations int) EnvelopeCipher {
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < MinIterations {
		iterations = MinIterations
	}

	return &envelopeCipher{iterations: iterations, random: rand.Reader}
}

// Seal implements [EnvelopeCipher].
func (e *envelopeCipher) Seal(payload, password string) (models.VaultEnvelope, error) {
	if password == "" {
		return models.VaultEnvelope{}, ErrEmptyPassword
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(e.random, salt); err != nil {
		return models.VaultEnvelope{}, fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return models.VaultEnvelope{}, fmt.Errorf("generate iv: %w", err)
	}

	block, err := aes.NewCipher(e.deriveKey(password, salt))
	if err != nil {
		return models.VaultEnvelope{}, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := pkcs7Pad([]byte(payload), aes.BlockSize)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	return models.VaultEnvelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Salt:       hex.EncodeToString(salt),
		IV:         hex.EncodeToString(iv),
	}, nil
}

// Unseal implements [EnvelopeCipher].
//
// Besides the padding check, the plaintext must be valid UTF-8: the payload is
// always a JSON document, and a wrong key that happens to produce valid
// padding yields random bytes.
func (e *envelopeCipher) Unseal(envelope models.VaultEnvelope, password string) (string, error) {
	salt, err := hex.DecodeString(envelope.Salt)
	if err != nil || len(salt) == 0 {
		return "", ErrDecryption
	}

	iv, err := hex.DecodeString(envelope.IV)
	if err != nil || len(iv) != IVSize {
		return "", ErrDecryption
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrDecryption
	}

	block, err := aes.NewCipher(e.deriveKey(password, salt))
	if err != nil {
		return "", ErrDecryption
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok || !utf8.Valid(plaintext) {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}

func (e *envelopeCipher) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, e.iterations, KeySize, sha256.New)
}
