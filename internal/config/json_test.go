package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"vault": { "kdf_iterations": 120000, "remote_path": "/sync/vault.json" },
		"providers": {
			"default": "googleDrive",
			"dropbox": { "client_id": "dbx", "scopes": ["files.content.read"] },
			"google_drive": {
				"client_id": "gid",
				"client_secret": "gsecret",
				"api_url": "http://drive.local/v3",
				"content_url": "http://drive.local/upload/v3",
				"token_url": "http://drive.local/token"
			}
		},
		"oauth": { "redirect_address": "127.0.0.1:0", "callback_path": "/cb", "timeout": "3m" },
		"clipboard": { "clear_after": "10s" },
		"storage": { "db": { "dsn": "/tmp/d.db" }, "keyring_service": "svc" },
		"adapter": { "request_timeout": 20000000000 },
		"log": { "path": "/tmp/x.log", "level": "debug" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 120000, cfg.Vault.KDFIterations)
	assert.Equal(t, "/sync/vault.json", cfg.Vault.RemotePath)
	assert.Equal(t, "googleDrive", cfg.Providers.Default)
	assert.Equal(t, "dbx", cfg.Providers.Dropbox.ClientID)
	assert.Equal(t, []string{"files.content.read"}, cfg.Providers.Dropbox.Scopes)
	assert.Equal(t, "gid", cfg.Providers.GoogleDrive.ClientID)
	assert.Equal(t, "gsecret", cfg.Providers.GoogleDrive.ClientSecret)
	assert.Equal(t, "http://drive.local/v3", cfg.Providers.GoogleDrive.APIBaseURL)
	assert.Equal(t, "http://drive.local/upload/v3", cfg.Providers.GoogleDrive.ContentBaseURL)
	assert.Equal(t, "http://drive.local/token", cfg.Providers.GoogleDrive.TokenURL)
	assert.Equal(t, "127.0.0.1:0", cfg.OAuth.RedirectAddress)
	assert.Equal(t, "/cb", cfg.OAuth.CallbackPath)
	assert.Equal(t, 3*time.Minute, cfg.OAuth.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Clipboard.ClearAfter)
	assert.Equal(t, "/tmp/d.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "svc", cfg.Storage.KeyringService)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/x.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_BadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"oauth": {"timeout": "later"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))

	var d Duration
	require.NoError(t, json.Unmarshal(b, &d))
	assert.Equal(t, Duration(90*time.Second), d)
}
