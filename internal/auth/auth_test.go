package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
)

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "missing", header: "", wantErr: apperr.ErrMissingHeader},
		{name: "prefix only", header: "Bearer ", wantErr: apperr.ErrInvalidToken},
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "bare token", header: "abc.def", want: "abc.def"},
		{name: "padded", header: "Bearer  tok ", want: "tok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func providerStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		switch r.Header.Get("Authorization") {
		case "Bearer good":
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "email": "a@b.co"})
		case "Bearer empty":
			_ = json.NewEncoder(w).Encode(map[string]string{})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
		}
	}))
}

func TestRemoteVerifier(t *testing.T) {
	srv := providerStub(t)
	defer srv.Close()

	v := NewRemoteVerifier(srv.URL+"/", "service-key", time.Second)

	t.Run("valid token", func(t *testing.T) {
		id, err := v.Verify(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, &Identity{ID: "user-1", Email: "a@b.co"}, id)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "bad")
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("no identity", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "empty")
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})
}

func TestRemoteVerifier_Unreachable(t *testing.T) {
	v := NewRemoteVerifier("http://127.0.0.1:1", "k", 200*time.Millisecond)

	_, err := v.Verify(context.Background(), "good")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func sign(t *testing.T, secret string, claims jwt.Claims, method jwt.SigningMethod) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier("s3cret")
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	t.Run("valid", func(t *testing.T) {
		token := sign(t, "s3cret", &accessClaims{
			Email:            "a@b.co",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
		}, jwt.SigningMethodHS256)

		id, err := v.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", id.ID)
		assert.Equal(t, "a@b.co", id.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := sign(t, "other", &accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
		}, jwt.SigningMethodHS256)

		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(t, "s3cret", &accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}, jwt.SigningMethodHS256)

		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("no subject", func(t *testing.T) {
		token := sign(t, "s3cret", &accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		}, jwt.SigningMethodHS256)

		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token := sign(t, "s3cret", &accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
		}, jwt.SigningMethodHS512)

		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})
}

type staticVerifier struct {
	id  *Identity
	err error
}

func (s staticVerifier) Verify(context.Context, string) (*Identity, error) { return s.id, s.err }

func TestAuthenticate(t *testing.T) {
	_, err := Authenticate(context.Background(), staticVerifier{id: &Identity{ID: "u"}}, "")
	assert.ErrorIs(t, err, apperr.ErrMissingHeader)

	_, err = Authenticate(context.Background(), staticVerifier{}, "Bearer x")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken, "nil identity is rejected")

	id, err := Authenticate(context.Background(), staticVerifier{id: &Identity{ID: "u"}}, "Bearer x")
	require.NoError(t, err)
	assert.Equal(t, "u", id.ID)
}
