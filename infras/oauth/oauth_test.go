package oauth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"eyeslot/config"
	"eyeslot/infras/oauth"
	"eyeslot/infras/otel/mocks"
	"eyeslot/shared/failure"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clientID = "client-123.apps.googleusercontent.com"
	keyID    = "test-key"
)

type identityServer struct {
	server   *httptest.Server
	key      *rsa.PrivateKey
	idToken  string
	jwksHits atomic.Int32
}

func newIdentityServer(t *testing.T) *identityServer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	ids := &identityServer{key: key}

	mux := http.NewServeMux()
	mux.HandleFunc("/certs", func(w http.ResponseWriter, _ *http.Request) {
		ids.jwksHits.Add(1)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": keyID,
				"use": "sig",
				"alg": "RS256",
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			}},
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     ids.idToken,
		})
	})

	ids.server = httptest.NewServer(mux)
	t.Cleanup(ids.server.Close)

	return ids
}

func (ids *identityServer) sign(t *testing.T, claims jwt.MapClaims, kid string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(ids.key)
	require.NoError(t, err)

	return signed
}

func (ids *identityServer) config() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Google.ClientID = clientID
	cfg.Auth.Google.ClientSecret = "secret"
	cfg.Auth.Google.RedirectURL = "http://localhost:8080/v1/auth/google/callback"
	cfg.Auth.Google.Scopes = []string{"openid", "email", "profile"}
	cfg.Auth.Google.JWKSURL = ids.server.URL + "/certs"
	cfg.Auth.Google.TokenURL = ids.server.URL + "/token"

	return cfg
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            "https://accounts.google.com",
		"aud":            clientID,
		"sub":            "1089",
		"email":          " Jane@X.com ",
		"email_verified": true,
		"name":           "Jane Doe",
		"exp":            time.Now().Add(time.Hour).Unix(),
		"iat":            time.Now().Unix(),
	}
}

func TestProvider_AuthCodeURL(t *testing.T) {
	ids := newIdentityServer(t)
	provider := oauth.New(ids.config(), mocks.NewOtel())

	parsed, err := url.Parse(provider.AuthCodeURL("state-xyz"))
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, clientID, query.Get("client_id"))
	assert.Equal(t, "state-xyz", query.Get("state"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
}

func TestProvider_Exchange(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		claims       func() jwt.MapClaims
		kid          string
		expected     oauth.Identity
		expectedCode int
	}{
		{
			name:     "verified identity",
			code:     "good-code",
			claims:   validClaims,
			kid:      keyID,
			expected: oauth.Identity{Subject: "1089", Email: "jane@x.com", Name: "Jane Doe"},
		},
		{
			name:         "rejected code",
			code:         "bad-code",
			claims:       validClaims,
			kid:          keyID,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "wrong audience",
			code: "good-code",
			claims: func() jwt.MapClaims {
				c := validClaims()
				c["aud"] = "someone-else"

				return c
			},
			kid:          keyID,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "foreign issuer",
			code: "good-code",
			claims: func() jwt.MapClaims {
				c := validClaims()
				c["iss"] = "https://evil.example.com"

				return c
			},
			kid:          keyID,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "unverified email",
			code: "good-code",
			claims: func() jwt.MapClaims {
				c := validClaims()
				c["email_verified"] = false

				return c
			},
			kid:          keyID,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "expired",
			code: "good-code",
			claims: func() jwt.MapClaims {
				c := validClaims()
				c["exp"] = time.Now().Add(-time.Hour).Unix()

				return c
			},
			kid:          keyID,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unknown signing key",
			code:         "good-code",
			claims:       validClaims,
			kid:          "rotated-away",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := newIdentityServer(t)
			ids.idToken = ids.sign(t, tt.claims(), tt.kid)

			provider := oauth.New(ids.config(), mocks.NewOtel())

			identity, err := provider.Exchange(context.Background(), tt.code)

			if tt.expectedCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}
}

func TestProvider_ExchangeReusesKeySet(t *testing.T) {
	ids := newIdentityServer(t)
	ids.idToken = ids.sign(t, validClaims(), keyID)

	provider := oauth.New(ids.config(), mocks.NewOtel())

	for range 3 {
		_, err := provider.Exchange(context.Background(), "good-code")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), ids.jwksHits.Load())
}

func TestProvider_UnknownKeyIDDoesNotRefetchWithinCooldown(t *testing.T) {
	ids := newIdentityServer(t)
	ids.idToken = ids.sign(t, validClaims(), "rotated-away")

	provider := oauth.New(ids.config(), mocks.NewOtel())

	for range 5 {
		_, err := provider.Exchange(context.Background(), "good-code")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	}

	assert.Equal(t, int32(1), ids.jwksHits.Load())
}
