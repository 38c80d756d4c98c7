package oauth

//go:generate go run go.uber.org/mock/mockgen -source=./oauth.go -destination=./mocks/oauth_mock.go -package=mocks

import (
	"context"
	"errors"
	"eyeslot/config"
	"eyeslot/infras/otel"
	"eyeslot/shared/constant"
	"eyeslot/shared/failure"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	idTokenField   = "id_token"
	keySetLifetime = time.Hour
	// keySetCooldown bounds how often an unknown kid may force a JWKS download.
	keySetCooldown = 5 * time.Minute
	httpTimeout    = 10 * time.Second
	maxKeySetBytes = 1 << 20
)

var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

var (
	errMissingIDToken = errors.New("token response carries no id_token")
	errUnverified     = errors.New("email address is not verified")
	errMissingEmail   = errors.New("id_token carries no email")
)

// Identity is the signed-in customer as asserted by Google.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (Identity, error)
}

type idTokenClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	jwt.RegisteredClaims
}

type googleProvider struct {
	cfg    *config.Config
	oauth  *oauth2.Config
	http   *http.Client
	otel   otel.Otel
	mu     sync.Mutex
	keys   keyfunc.Keyfunc
	loaded time.Time
}

func New(cfg *config.Config, otel otel.Otel) Provider {
	return NewWithHTTPClient(cfg, &http.Client{Timeout: httpTimeout}, otel)
}

func NewWithHTTPClient(cfg *config.Config, httpClient *http.Client, otel otel.Otel) Provider {
	google := cfg.Auth.Google

	endpoint := endpoints.Google
	if google.AuthURL != "" {
		endpoint.AuthURL = google.AuthURL
	}

	if google.TokenURL != "" {
		endpoint.TokenURL = google.TokenURL
		endpoint.AuthStyle = oauth2.AuthStyleInParams
	}

	return &googleProvider{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     google.ClientID,
			ClientSecret: google.ClientSecret,
			RedirectURL:  google.RedirectURL,
			Scopes:       google.Scopes,
			Endpoint:     endpoint,
		},
		http: httpClient,
		otel: otel,
	}
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades the authorization code for tokens and returns the identity of the verified id_token.
func (p *googleProvider) Exchange(ctx context.Context, code string) (identity Identity, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".oauth.Exchange")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err := p.oauth.Exchange(context.WithValue(ctx, oauth2.HTTPClient, p.http), code)
	if err != nil {
		log.Error().Err(err).Msg("failed to exchange authorization code")

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return identity, failure.Unauthorized("sign-in was rejected by the identity provider") //nolint:wrapcheck
		}

		return identity, failure.BadGateway("identity provider is unavailable") //nolint:wrapcheck
	}

	rawIDToken, _ := token.Extra(idTokenField).(string)
	if rawIDToken == "" {
		return identity, failure.Unauthorized(errMissingIDToken.Error()) //nolint:wrapcheck
	}

	identity, err = p.verify(ctx, rawIDToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify id_token")

		return identity, failure.Unauthorized("invalid identity token") //nolint:wrapcheck
	}

	scope.SetAttribute("oauth.subject", identity.Subject)

	return identity, nil
}

func (p *googleProvider) verify(ctx context.Context, rawIDToken string) (Identity, error) {
	keys, err := p.keySet(ctx, false)
	if err != nil {
		return Identity{}, err
	}

	claims := idTokenClaims{}
	parse := func(keys keyfunc.Keyfunc) error {
		_, err := jwt.ParseWithClaims(rawIDToken, &claims, keys.Keyfunc,
			jwt.WithAudience(p.oauth.ClientID),
			jwt.WithExpirationRequired(),
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		)

		return err //nolint:wrapcheck
	}

	err = parse(keys)
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		// Google rotates signing keys; an unknown kid earns one forced refresh per cooldown.
		if keys, err = p.keySet(ctx, true); err != nil {
			return Identity{}, err
		}

		err = parse(keys)
	}

	if err != nil {
		return Identity{}, fmt.Errorf("failed to parse id_token: %w", err)
	}

	if !slices.Contains(googleIssuers, claims.Issuer) {
		return Identity{}, fmt.Errorf("unexpected issuer %q: %w", claims.Issuer, jwt.ErrTokenInvalidIssuer)
	}

	if claims.Email == "" {
		return Identity{}, errMissingEmail
	}

	if !claims.EmailVerified {
		return Identity{}, errUnverified
	}

	return Identity{
		Subject: claims.Subject,
		Email:   strings.ToLower(strings.TrimSpace(claims.Email)),
		Name:    strings.TrimSpace(claims.Name),
	}, nil
}

func (p *googleProvider) keySet(ctx context.Context, refresh bool) (keyfunc.Keyfunc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.keys != nil {
		age := time.Since(p.loaded)

		if (!refresh && age < keySetLifetime) || (refresh && age < keySetCooldown) {
			return p.keys, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.Auth.Google.JWKSURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build JWKS request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS endpoint responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxKeySetBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read JWKS: %w", err)
	}

	keys, err := keyfunc.NewJWKSetJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWKS: %w", err)
	}

	p.keys = keys
	p.loaded = time.Now()

	log.Debug().Str("url", p.cfg.Auth.Google.JWKSURL).Msg("loaded identity provider signing keys")

	return keys, nil
}
