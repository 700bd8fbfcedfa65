package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
)

func testApp(serverURL string) config.ClientOAuthApp {
	return config.ClientOAuthApp{
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		Scopes:         []string{"files.content.read", "files.content.write"},
		APIBaseURL:     serverURL + "/api",
		ContentBaseURL: serverURL + "/content",
		AuthURL:        serverURL + "/oauth2/authorize",
		TokenURL:       serverURL + "/oauth2/token",
		RevokeURL:      serverURL + "/revoke",
	}
}

func testAdapterConfig() config.ClientAdapter {
	return config.ClientAdapter{RequestTimeout: 5 * time.Second}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// memFiles is an in-memory DeviceFileStore.
type memFiles struct {
	mu     sync.Mutex
	files  map[string][]byte
	putErr error
	puts   int
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string][]byte{}}
}

func (m *memFiles) Get(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[path]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), content...), nil
}

func (m *memFiles) Put(_ context.Context, path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.files[path] = append([]byte(nil), content...)
	return nil
}
