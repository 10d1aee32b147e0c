// Package auth turns a bearer token into the caller's identity.
package auth

import (
	"context"
	"strings"

	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
)

// Identity is the authenticated caller. ID scopes every row the caller touches.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Verifier validates a token and returns the identity it belongs to.
// Any failure must wrap apperr.ErrInvalidToken.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

const bearerPrefix = "Bearer "

// ExtractBearer returns the token carried by an Authorization header value.
// An absent header is ErrMissingHeader; a header with no token is ErrInvalidToken.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", apperr.ErrMissingHeader
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", apperr.ErrInvalidToken
	}
	return token, nil
}

// Authenticate runs the full gate: extract the token, then verify it.
func Authenticate(ctx context.Context, v Verifier, header string) (*Identity, error) {
	token, err := ExtractBearer(header)
	if err != nil {
		return nil, err
	}
	id, err := v.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	if id == nil || id.ID == "" {
		return nil, apperr.ErrInvalidToken
	}
	return id, nil
}
