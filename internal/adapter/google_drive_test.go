package adapter

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoogleDrive(t *testing.T, serverURL string) *googleDriveProvider {
	t.Helper()
	return newGoogleDriveProvider(testApp(serverURL), testAdapterConfig(), logger.Nop())
}

// fileListHandler answers the appDataFolder lookup with ids.
func fileListHandler(t *testing.T, ids ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, appDataFolder, r.URL.Query().Get("spaces"))
		assert.Equal(t, "name = 'vault.json' and trashed = false", r.URL.Query().Get("q"))

		files := make([]map[string]string, 0, len(ids))
		for _, id := range ids {
			files = append(files, map[string]string{"id": id})
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"files": files})
	}
}

// ── FetchUserInfo ───────────────────────────────────────────────────────────

func TestGoogleDrive_FetchUserInfo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/about", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user", r.URL.Query().Get("fields"))
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"user": map[string]string{"displayName": "", "emailAddress": "bob@example.com", "photoLink": "https://example.com/b.png"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	info, err := newTestGoogleDrive(t, srv.URL).FetchUserInfo(context.Background(), "access")

	require.NoError(t, err)
	assert.Equal(t, models.UserInfo{Username: "bob@example.com", Avatar: "https://example.com/b.png"}, info)
}

func TestGoogleDrive_FetchUserInfo_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestGoogleDrive(t, srv.URL).FetchUserInfo(context.Background(), "stale")

	assert.ErrorIs(t, err, ErrAuth)
}

// ── FetchFile ───────────────────────────────────────────────────────────────

func TestGoogleDrive_FetchFile_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", fileListHandler(t, "file-1"))
	mux.HandleFunc("GET /api/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "file-1", r.PathValue("id"))
		assert.Equal(t, "media", r.URL.Query().Get("alt"))
		_, _ = w.Write([]byte("vault-bytes"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	content, err := newTestGoogleDrive(t, srv.URL).FetchFile(context.Background(), "access", "/vault.json")

	require.NoError(t, err)
	assert.Equal(t, "vault-bytes", string(content))
}

func TestGoogleDrive_FetchFile_NoSuchFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", fileListHandler(t))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	content, err := newTestGoogleDrive(t, srv.URL).FetchFile(context.Background(), "access", "/vault.json")

	require.NoError(t, err)
	assert.Nil(t, content)
}

func TestGoogleDrive_FetchFile_DeletedBetweenLookupAndDownload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", fileListHandler(t, "file-1"))
	mux.HandleFunc("GET /api/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	content, err := newTestGoogleDrive(t, srv.URL).FetchFile(context.Background(), "access", "/vault.json")

	require.NoError(t, err)
	assert.Nil(t, content)
}

// ── UploadFile ──────────────────────────────────────────────────────────────

func TestGoogleDrive_UploadFile_CreatesInAppDataFolder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", fileListHandler(t))
	mux.HandleFunc("POST /content/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "multipart", r.URL.Query().Get("uploadType"))

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		assert.NoError(t, err)
		assert.Equal(t, "multipart/related", mediaType)

		mr := multipart.NewReader(r.Body, params["boundary"])

		metaPart, err := mr.NextPart()
		if !assert.NoError(t, err) {
			return
		}
		var meta driveFileMetadata
		assert.NoError(t, json.NewDecoder(metaPart).Decode(&meta))
		assert.Equal(t, "vault.json", meta.Name)
		assert.Equal(t, []string{appDataFolder}, meta.Parents)

		mediaPart, err := mr.NextPart()
		if !assert.NoError(t, err) {
			return
		}
		media, _ := io.ReadAll(mediaPart)
		assert.Equal(t, "payload", string(media))

		writeJSON(t, w, http.StatusOK, map[string]string{"id": "new-id"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := newTestGoogleDrive(t, srv.URL).UploadFile(context.Background(), "access", []byte("payload"), "/vault.json")

	require.NoError(t, err)
}

func TestGoogleDrive_UploadFile_UpdatesExisting(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", fileListHandler(t, "file-1"))
	mux.HandleFunc("PATCH /content/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "file-1", r.PathValue("id"))
		assert.Equal(t, "media", r.URL.Query().Get("uploadType"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))
		writeJSON(t, w, http.StatusOK, map[string]string{"id": "file-1"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := newTestGoogleDrive(t, srv.URL).UploadFile(context.Background(), "access", []byte("payload"), "/vault.json")

	require.NoError(t, err)
}

func TestGoogleDrive_UploadFile_LookupUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestGoogleDrive(t, srv.URL).UploadFile(context.Background(), "stale", []byte("payload"), "/vault.json")

	assert.ErrorIs(t, err, ErrAuth)
}

// ── OAuth ───────────────────────────────────────────────────────────────────

func TestGoogleDrive_AuthCodeURL_RequestsOfflineAccess(t *testing.T) {
	raw := newTestGoogleDrive(t, "http://provider.test").AuthCodeURL("s", "verifier-verifier-verifier-verifier-verifier", "http://127.0.0.1:1/cb")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "offline", u.Query().Get("access_type"))
	assert.Equal(t, "consent", u.Query().Get("prompt"))
	assert.Equal(t, "S256", u.Query().Get("code_challenge_method"))
}

func TestGoogleDrive_ExchangeCode_ReturnsIDToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "access",
			"refresh_token": "refresh",
			"token_type":    "Bearer",
			"expires_in":    3599,
			"id_token":      "header.claims.sig",
		})
	}))
	defer srv.Close()

	grant, err := newTestGoogleDrive(t, srv.URL).ExchangeCode(context.Background(), "code", "verifier", "http://127.0.0.1:1/cb")

	require.NoError(t, err)
	assert.Equal(t, "header.claims.sig", grant.IDToken)
	assert.Equal(t, "refresh", grant.RefreshToken)
}

func TestGoogleDrive_RefreshAccessToken_Rotates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "new-access",
			"refresh_token": "rotated",
			"token_type":    "Bearer",
			"expires_in":    3599,
		})
	}))
	defer srv.Close()

	grant, err := newTestGoogleDrive(t, srv.URL).RefreshAccessToken(context.Background(), "old")

	require.NoError(t, err)
	assert.Equal(t, "rotated", grant.RefreshToken)
}

func TestGoogleDrive_RevokeToken_UsesRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "/revoke", r.URL.Path)
		assert.Equal(t, "refresh", r.PostForm.Get("token"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestGoogleDrive(t, srv.URL).RevokeToken(context.Background(), models.TokenSession{
		Provider:     models.ProviderGoogleDrive,
		AccessToken:  "access",
		RefreshToken: "refresh",
	})

	require.NoError(t, err)
}

func TestGoogleDrive_RevokeToken_NoToken(t *testing.T) {
	err := newTestGoogleDrive(t, "http://provider.test").RevokeToken(context.Background(), models.TokenSession{Provider: models.ProviderGoogleDrive})

	assert.ErrorIs(t, err, ErrNoRevocableToken)
}

func TestDriveFileName(t *testing.T) {
	assert.Equal(t, "vault.json", driveFileName("/vault.json"))
	assert.Equal(t, "vault.json", driveFileName("vault.json"))
	assert.Equal(t, "b.json", driveFileName("/a/b.json"))
}
