// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const dropboxAPIArgHeader = "Dropbox-API-Arg"

// dropboxProvider talks to the Dropbox v2 HTTP API. RPC calls go to the API
// host, file transfers to the content host.
type dropboxProvider struct {
	*oauthClient

	api       *utils.HTTPClient
	content   *utils.HTTPClient
	revokeURL string
	logger    *logger.Logger
}

func newDropboxProvider(app config.ClientOAuthApp, adapterCfg config.ClientAdapter, log *logger.Logger) *dropboxProvider {
	api := utils.NewHTTPClient(app.APIBaseURL, adapterCfg.RequestTimeout)

	return &dropboxProvider{
		// Dropbox issues short-lived tokens only; offline access adds a
		// refresh token to the code exchange.
		oauthClient: newOAuthClient(app, endpoints.Dropbox, api,
			oauth2.SetAuthURLParam("token_access_type", "offline")),
		api:       api,
		content:   utils.NewHTTPClient(app.ContentBaseURL, adapterCfg.RequestTimeout),
		revokeURL: app.RevokeURL,
		logger:    log.WithComponent("dropbox"),
	}
}

func (d *dropboxProvider) ID() models.ProviderID {
	return models.ProviderDropbox
}

type dropboxAccount struct {
	Name struct {
		DisplayName string `json:"display_name"`
	} `json:"name"`
	Email           string `json:"email"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

func (d *dropboxProvider) FetchUserInfo(ctx context.Context, token string) (models.UserInfo, error) {
	var account dropboxAccount
	resp, err := d.api.BearerRequest(token).
		SetContext(ctx).
		SetResult(&account).
		Post("/users/get_current_account")
	if err != nil {
		return models.UserInfo{}, mapTransportError("dropbox get account", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, fmt.Errorf("dropbox get account: %w", err)
	}

	username := account.Name.DisplayName
	if username == "" {
		username = account.Email
	}

	return models.UserInfo{Username: username, Avatar: account.ProfilePhotoURL}, nil
}

func (d *dropboxProvider) FetchFile(ctx context.Context, token, remotePath string) ([]byte, error) {
	arg, err := json.Marshal(map[string]string{"path": remotePath})
	if err != nil {
		return nil, fmt.Errorf("dropbox download: encode args: %w", err)
	}

	resp, err := d.content.BearerRequest(token).
		SetContext(ctx).
		SetHeader(dropboxAPIArgHeader, string(arg)).
		Post("/files/download")
	if err != nil {
		return nil, mapTransportError("dropbox download", err)
	}
	if isDropboxNotFound(resp.StatusCode(), resp.Body()) {
		d.logger.Debug().Str("func", "dropboxProvider.FetchFile").Str("path", remotePath).Msg("remote file not found")
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("dropbox download: %w", err)
	}

	return resp.Body(), nil
}

func (d *dropboxProvider) UploadFile(ctx context.Context, token string, content []byte, remotePath string) error {
	arg, err := json.Marshal(struct {
		Path string `json:"path"`
		Mode string `json:"mode"`
		Mute bool   `json:"mute"`
	}{Path: remotePath, Mode: "overwrite", Mute: true})
	if err != nil {
		return fmt.Errorf("dropbox upload: encode args: %w", err)
	}

	resp, err := d.content.BearerRequest(token).
		SetContext(ctx).
		SetHeader(dropboxAPIArgHeader, string(arg)).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(content).
		Post("/files/upload")
	if err != nil {
		return mapTransportError("dropbox upload", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("dropbox upload: %w", err)
	}

	return nil
}

// RevokeToken revokes through the bearer access token; Dropbox has no
// endpoint that takes the refresh token.
func (d *dropboxProvider) RevokeToken(ctx context.Context, session models.TokenSession) error {
	if session.AccessToken == "" {
		return ErrNoRevocableToken
	}

	resp, err := d.api.BearerRequest(session.AccessToken).
		SetContext(ctx).
		Post(d.revokeURL)
	if err != nil {
		return mapTransportError("dropbox revoke", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("dropbox revoke: %w", err)
	}

	return nil
}

// isDropboxNotFound recognises the endpoint-specific 409 Dropbox returns for
// a missing path, e.g. {"error_summary": "path/not_found/..."}.
func isDropboxNotFound(status int, body []byte) bool {
	if status == http.StatusNotFound {
		return true
	}
	if status != http.StatusConflict {
		return false
	}

	var apiErr struct {
		ErrorSummary string `json:"error_summary"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return strings.Contains(string(body), "not_found")
	}

	return strings.HasPrefix(apiErr.ErrorSummary, "path/not_found")
}
