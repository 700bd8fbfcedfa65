package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
)

// vaultDocument mirrors models.VaultPayload with pointers, so absent fields
// can be told apart from empty ones.
type vaultDocument struct {
	LastUpdated *time.Time         `json:"lastUpdated"`
	Folders     *[]string          `json:"folders"`
	Entries     *[]json.RawMessage `json:"entries"`
}

// decodePayload parses and validates a decrypted vault document.
func decodePayload(plain string) (models.VaultPayload, error) {
	var doc vaultDocument
	if err := json.Unmarshal([]byte(plain), &doc); err != nil {
		return models.VaultPayload{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	switch {
	case doc.LastUpdated == nil || doc.LastUpdated.IsZero():
		return models.VaultPayload{}, fmt.Errorf("%w: lastUpdated is missing", ErrInvalidPayload)
	case doc.Folders == nil || *doc.Folders == nil:
		return models.VaultPayload{}, fmt.Errorf("%w: folders is not an array", ErrInvalidPayload)
	case doc.Entries == nil || *doc.Entries == nil:
		return models.VaultPayload{}, fmt.Errorf("%w: entries is not an array", ErrInvalidPayload)
	}

	payload := models.VaultPayload{
		LastUpdated: *doc.LastUpdated,
		Folders:     *doc.Folders,
		Entries:     *doc.Entries,
	}
	if err := validatePayload(payload); err != nil {
		return models.VaultPayload{}, err
	}

	return payload, nil
}

// validatePayload checks a document before it is sealed.
func validatePayload(payload models.VaultPayload) error {
	if payload.LastUpdated.IsZero() {
		return fmt.Errorf("%w: lastUpdated is missing", ErrInvalidPayload)
	}
	for i, entry := range payload.Entries {
		trimmed := bytes.TrimSpace(entry)
		if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
			return fmt.Errorf("%w: entry %d is not a JSON object", ErrInvalidPayload, i)
		}
	}
	return nil
}
