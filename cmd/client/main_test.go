package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/app"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	root, c := newRootCmd(models.NewAppBuildInfo("1.2.3", "2026-10-15", "abc123"))
	t.Cleanup(func() { _ = c.close() })

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Nil(t, c.app, "version must not open the storages")
	assert.Equal(t, "Build version: 1.2.3\nBuild date: 2026-10-15\nBuild commit: abc123\n", out.String())
}

func TestRootCmd_ConfigFlagsAttached(t *testing.T) {
	root, _ := newRootCmd(models.NewAppBuildInfo("N/A", "N/A", "N/A"))

	for _, name := range []string{"provider", "kdf-iterations", "redirect-address", "clipboard-clear", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "flag %s", name)
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, app.MsgNoSession, describe(fmt.Errorf("push: %w", service.ErrNoSession)))
	assert.Equal(t, "read vault document: missing", describe(fmt.Errorf("read vault document: %w", errors.New("missing"))))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "v1", orNA("v1"))
}
