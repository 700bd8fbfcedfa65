package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vault: Vault{RemotePath: "/a.json"}},
		&StructuredConfig{Vault: Vault{KDFIterations: 5000}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/a.json", cfg.Vault.RemotePath)
	assert.Equal(t, 5000, cfg.Vault.KDFIterations)
}

// TestBuild_EarlierConfigWins verifies that a later config only fills fields
// left empty by earlier ones.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Log: Log{Level: "warn"}},
		&StructuredConfig{Log: Log{Level: "debug", Path: "/tmp/log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/log", cfg.Log.Path)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("VAULT_REMOTE_PATH", "/env.json")
	t.Setenv("PROVIDERS_DEFAULT", "dropbox")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env.json", b.configs[0].Vault.RemotePath)
	assert.Equal(t, "dropbox", b.configs[0].Providers.Default)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed duration is
// reported through b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("OAUTH_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(NewFlags("test")))
}

// TestWithFlags_NilIsNoOp verifies that a nil flag set adds nothing.
func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil)
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// TestWithFlags_PropagatesParseError verifies that a failed Parse is reported.
func TestWithFlags_PropagatesParseError(t *testing.T) {
	f := NewFlags("test")
	f.FlagSet().SetOutput(nopWriter{})
	require.Error(t, f.Parse([]string{"-kdf-iterations", "many"}))

	b := newConfigBuilder()
	b.withFlags(f)
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Vault.RemotePath = "/json.json"
	payload.Clipboard.ClearAfter = Duration(15 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json.json", b.configs[1].Vault.RemotePath)
	assert.Equal(t, 15*time.Second, b.configs[1].Clipboard.ClearAfter)
}

// TestWithJSON_UsesFirstPath verifies that the path from the highest priority
// source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Log.Level = "first"
	second := StructuredJSONConfig{}
	second.Log.Level = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].Log.Level)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyEmptyFields verifies that defaults never override
// a value from another source.
func TestWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{OAuth: OAuth{Timeout: time.Minute}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.OAuth.Timeout)
	assert.Equal(t, defaultRedirectAddress, cfg.OAuth.RedirectAddress)
	assert.Equal(t, defaultCallbackPath, cfg.OAuth.CallbackPath)
	assert.Equal(t, defaultKDFIterations, cfg.Vault.KDFIterations)
	assert.Equal(t, defaultRemotePath, cfg.Vault.RemotePath)
	assert.Equal(t, defaultProvider, cfg.Providers.Default)
	assert.NotEmpty(t, cfg.Providers.Dropbox.Scopes)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
