package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path"
	"strings"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// appDataFolder is the hidden, app-private Drive space the vault lives in.
const appDataFolder = "appDataFolder"

// googleDriveProvider talks to the Drive v3 REST API. Drive addresses files by
// id, so the remote path is reduced to a file name inside appDataFolder.
type googleDriveProvider struct {
	*oauthClient

	api       *utils.HTTPClient
	upload    *utils.HTTPClient
	revokeURL string
	logger    *logger.Logger
}

func newGoogleDriveProvider(app config.ClientOAuthApp, adapterCfg config.ClientAdapter, log *logger.Logger) *googleDriveProvider {
	api := utils.NewHTTPClient(app.APIBaseURL, adapterCfg.RequestTimeout)

	return &googleDriveProvider{
		// prompt=consent makes Google return a refresh token on every
		// authorization, not only the first one.
		oauthClient: newOAuthClient(app, endpoints.Google, api,
			oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent")),
		api:       api,
		upload:    utils.NewHTTPClient(app.ContentBaseURL, adapterCfg.RequestTimeout),
		revokeURL: app.RevokeURL,
		logger:    log.WithComponent("googleDrive"),
	}
}

func (g *googleDriveProvider) ID() models.ProviderID {
	return models.ProviderGoogleDrive
}

func (g *googleDriveProvider) FetchUserInfo(ctx context.Context, token string) (models.UserInfo, error) {
	var about struct {
		User struct {
			DisplayName  string `json:"displayName"`
			EmailAddress string `json:"emailAddress"`
			PhotoLink    string `json:"photoLink"`
		} `json:"user"`
	}

	resp, err := g.api.BearerRequest(token).
		SetContext(ctx).
		SetQueryParam("fields", "user").
		SetResult(&about).
		Get("/about")
	if err != nil {
		return models.UserInfo{}, mapTransportError("google drive about", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, fmt.Errorf("google drive about: %w", err)
	}

	username := about.User.DisplayName
	if username == "" {
		username = about.User.EmailAddress
	}

	return models.UserInfo{Username: username, Avatar: about.User.PhotoLink}, nil
}

func (g *googleDriveProvider) FetchFile(ctx context.Context, token, remotePath string) ([]byte, error) {
	fileID, err := g.findFileID(ctx, token, remotePath)
	if err != nil {
		return nil, err
	}
	if fileID == "" {
		return nil, nil
	}

	resp, err := g.api.BearerRequest(token).
		SetContext(ctx).
		SetPathParam("id", fileID).
		SetQueryParam("alt", "media").
		Get("/files/{id}")
	if err != nil {
		return nil, mapTransportError("google drive download", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("google drive download: %w", err)
	}

	return resp.Body(), nil
}

func (g *googleDriveProvider) UploadFile(ctx context.Context, token string, content []byte, remotePath string) error {
	fileID, err := g.findFileID(ctx, token, remotePath)
	if err != nil {
		return err
	}

	if fileID != "" {
		resp, err := g.upload.BearerRequest(token).
			SetContext(ctx).
			SetPathParam("id", fileID).
			SetQueryParam("uploadType", "media").
			SetHeader("Content-Type", "application/json").
			SetBody(content).
			Patch("/files/{id}")
		if err != nil {
			return mapTransportError("google drive update", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return fmt.Errorf("google drive update: %w", err)
		}
		return nil
	}

	body, contentType, err := multipartRelated(driveFileMetadata{
		Name:    driveFileName(remotePath),
		Parents: []string{appDataFolder},
	}, content)
	if err != nil {
		return fmt.Errorf("google drive create: %w", err)
	}

	resp, err := g.upload.BearerRequest(token).
		SetContext(ctx).
		SetQueryParam("uploadType", "multipart").
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post("/files")
	if err != nil {
		return mapTransportError("google drive create", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("google drive create: %w", err)
	}

	return nil
}

func (g *googleDriveProvider) RevokeToken(ctx context.Context, session models.TokenSession) error {
	// Revoking the refresh token also invalidates access tokens issued from it.
	token := session.RefreshToken
	if token == "" {
		token = session.AccessToken
	}
	if token == "" {
		return ErrNoRevocableToken
	}

	resp, err := g.api.R().
		SetContext(ctx).
		SetFormData(map[string]string{"token": token}).
		Post(g.revokeURL)
	if err != nil {
		return mapTransportError("google revoke", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("google revoke: %w", err)
	}

	return nil
}

func (g *googleDriveProvider) findFileID(ctx context.Context, token, remotePath string) (string, error) {
	var list struct {
		Files []struct {
			ID string `json:"id"`
		} `json:"files"`
	}

	name := strings.ReplaceAll(driveFileName(remotePath), "'", `\'`)
	resp, err := g.api.BearerRequest(token).
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"spaces":   appDataFolder,
			"q":        fmt.Sprintf("name = '%s' and trashed = false", name),
			"fields":   "files(id)",
			"pageSize": "1",
		}).
		SetResult(&list).
		Get("/files")
	if err != nil {
		return "", mapTransportError("google drive lookup", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("google drive lookup: %w", err)
	}
	if len(list.Files) == 0 {
		g.logger.Debug().Str("func", "googleDriveProvider.findFileID").Str("path", remotePath).Msg("remote file not found")
		return "", nil
	}

	return list.Files[0].ID, nil
}

type driveFileMetadata struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents"`
}

func driveFileName(remotePath string) string {
	return path.Base("/" + strings.TrimLeft(remotePath, "/"))
}

// multipartRelated builds the metadata + media body Drive expects for
// uploadType=multipart.
func multipartRelated(meta driveFileMetadata, content []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaPart, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return nil, "", err
	}
	if err = json.NewEncoder(metaPart).Encode(meta); err != nil {
		return nil, "", err
	}

	mediaPart, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json"}})
	if err != nil {
		return nil, "", err
	}
	if _, err = mediaPart.Write(content); err != nil {
		return nil, "", err
	}
	if err = w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), "multipart/related; boundary=" + w.Boundary(), nil
}
