package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuth, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", errNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemote, resp.StatusCode(), body)
	}
}

// mapTransportError wraps an error returned by resty before any response was
// received.
func mapTransportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}

// mapOAuthError classifies token endpoint failures. Rejected grants become
// ErrAuth so the token manager keeps the stored refresh token and lets the
// user re-authorize.
func mapOAuthError(op string, err error) error {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return mapTransportError(op, err)
	}

	switch re.ErrorCode {
	case "invalid_grant", "invalid_client", "unauthorized_client", "invalid_token":
		return fmt.Errorf("%s: %w: %s", op, ErrAuth, re.ErrorCode)
	}
	if re.Response != nil && re.Response.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w: %s", op, ErrAuth, re.ErrorCode)
	}

	return fmt.Errorf("%s: %w: %w", op, ErrRemote, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, errNotFound)
}
