package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims is the subset of OpenID Connect id_token claims the client
// logs after an authorization.
type IDTokenClaims struct {
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// ParseIDTokenUnverified decodes the claims of an OpenID Connect id_token
// without verifying its signature.
//
// The token is received directly from the provider's token endpoint over TLS,
// so it is only used for diagnostics and display, never for authorization
// decisions.
func ParseIDTokenUnverified(raw string) (IDTokenClaims, error) {
	if raw == "" {
		return IDTokenClaims{}, errors.New("empty id_token")
	}

	var claims IDTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return IDTokenClaims{}, fmt.Errorf("error occurred parsing id_token: %w", err)
	}

	return claims, nil
}
