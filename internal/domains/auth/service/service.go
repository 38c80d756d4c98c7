package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"eyeslot/config"
	"eyeslot/infras/jwt"
	"eyeslot/infras/oauth"
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/auth/model/dto"
	userService "eyeslot/internal/domains/user/service"
	"eyeslot/shared/constant"
	"eyeslot/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

const stateBytes = 32

type Auth interface {
	BeginSignIn(ctx context.Context) (dto.SignInStart, error)
	CompleteSignIn(ctx context.Context, req dto.CallbackRequest) (dto.SessionResponse, error)
}

type serviceImpl struct {
	provider   oauth.Provider
	users      userService.User
	jwtService jwt.JWT
	cfg        *config.Config
	otel       otel.Otel
}

func New(provider oauth.Provider, users userService.User, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		provider:   provider,
		users:      users,
		jwtService: jwt,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) BeginSignIn(ctx context.Context) (res dto.SignInStart, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BeginSignIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	buf := make([]byte, stateBytes)
	if _, err = rand.Read(buf); err != nil {
		log.Error().Err(err).Msg("failed to generate sign-in state")

		return res, fmt.Errorf("failed to generate sign-in state: %w", err)
	}

	res.State = base64.RawURLEncoding.EncodeToString(buf)
	res.URL = s.provider.AuthCodeURL(res.State)

	return res, nil
}

// CompleteSignIn turns an authorization code into a session. A failed user sync does
// not block sign-in: the Google subject stands in as the user id until the retry lands.
func (s *serviceImpl) CompleteSignIn(ctx context.Context, req dto.CallbackRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteSignIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.ExpectedState == constant.Empty ||
		subtle.ConstantTimeCompare([]byte(req.State), []byte(req.ExpectedState)) != 1 {
		return res, failure.Unauthorized("sign-in state mismatch") //nolint:wrapcheck
	}

	if req.Code == constant.Empty {
		return res, failure.BadRequestFromString("authorization code is required") //nolint:wrapcheck
	}

	identity, err := s.provider.Exchange(ctx, req.Code)
	if err != nil {
		log.Warn().Err(err).Msg("failed to exchange authorization code")

		return res, err //nolint:wrapcheck
	}

	user := dto.SessionUser{ID: identity.Subject, Email: identity.Email, Name: identity.Name}

	stored, err := s.users.Sync(ctx, dto.ToUserRequest(identity))
	if err != nil {
		log.Warn().Err(err).Str("email", identity.Email).Msg("signing in without a synced user record")
	} else {
		user.ID = stored.ID
	}

	session, err := s.jwtService.GenerateSession(user.ID, user.Email, user.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session")

		return res, fmt.Errorf("failed to generate session: %w", err)
	}

	res.FromSession(session, user)

	return res, nil
}
