package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
	"golang.org/x/oauth2"
)

// oauthClient holds the token endpoint logic shared by the remote providers.
type oauthClient struct {
	cfg        oauth2.Config
	authParams []oauth2.AuthCodeOption
	http       *utils.HTTPClient
	now        func() time.Time
}

// newOAuthClient builds an OAuth client for app. Empty AuthURL / TokenURL fall
// back to defaults, normally the provider entry of golang.org/x/oauth2/endpoints.
func newOAuthClient(app config.ClientOAuthApp, defaults oauth2.Endpoint, http *utils.HTTPClient, params ...oauth2.AuthCodeOption) *oauthClient {
	endpoint := defaults
	if app.AuthURL != "" {
		endpoint.AuthURL = app.AuthURL
	}
	if app.TokenURL != "" {
		endpoint.TokenURL = app.TokenURL
	}

	return &oauthClient{
		cfg: oauth2.Config{
			ClientID:     app.ClientID,
			ClientSecret: app.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       app.Scopes,
		},
		authParams: params,
		http:       http,
		now:        time.Now,
	}
}

func (o *oauthClient) config(redirectURL string) *oauth2.Config {
	cfg := o.cfg
	cfg.RedirectURL = redirectURL
	return &cfg
}

// clientContext makes the oauth2 package use the adapter's HTTP client, so
// token requests share its timeout and transport.
func (o *oauthClient) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, o.http.GetClient())
}

func (o *oauthClient) AuthCodeURL(state, verifier, redirectURL string) string {
	opts := append([]oauth2.AuthCodeOption{oauth2.S256ChallengeOption(verifier)}, o.authParams...)
	return o.config(redirectURL).AuthCodeURL(state, opts...)
}

func (o *oauthClient) ExchangeCode(ctx context.Context, code, verifier, redirectURL string) (models.TokenGrant, error) {
	tok, err := o.config(redirectURL).Exchange(o.clientContext(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		return models.TokenGrant{}, mapOAuthError("exchange code", err)
	}

	return o.grantFromToken(tok), nil
}

func (o *oauthClient) RefreshAccessToken(ctx context.Context, refreshToken string) (models.TokenGrant, error) {
	if refreshToken == "" {
		return models.TokenGrant{}, fmt.Errorf("refresh token: %w: no refresh token", ErrAuth)
	}

	// A token without an access token is never valid, so the source always
	// hits the token endpoint.
	src := o.config("").TokenSource(o.clientContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return models.TokenGrant{}, mapOAuthError("refresh token", err)
	}

	grant := o.grantFromToken(tok)
	if grant.RefreshToken == "" {
		grant.RefreshToken = refreshToken
	}

	return grant, nil
}

func (o *oauthClient) grantFromToken(tok *oauth2.Token) models.TokenGrant {
	grant := models.TokenGrant{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		grant.ExpiresIn = int64(tok.Expiry.Sub(o.now()).Round(time.Second) / time.Second)
	}
	if idToken, ok := tok.Extra("id_token").(string); ok {
		grant.IDToken = idToken
	}

	return grant
}
