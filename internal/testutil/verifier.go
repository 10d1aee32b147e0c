package testutil

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/auth"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
)

// StaticVerifier accepts the tokens in its map and rejects everything else.
type StaticVerifier map[string]auth.Identity

// Verify implements auth.Verifier.
func (v StaticVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	id, ok := v[token]
	if !ok {
		return nil, apperr.ErrInvalidToken
	}
	return &id, nil
}
