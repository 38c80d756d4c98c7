package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"eyeslot/config"
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/user/model"
	"eyeslot/internal/domains/user/model/dto"
	"eyeslot/internal/domains/user/repository"
	"eyeslot/shared"
	"eyeslot/shared/cache"
	"eyeslot/shared/constant"
	gDto "eyeslot/shared/dto"
	"eyeslot/shared/failure"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser = "user:get"
)

type User interface {
	Save(ctx context.Context, req dto.SaveUserRequest) (dto.UserResponse, error)
	Lookup(ctx context.Context, email string) (dto.LookupResponse, error)
	Sync(ctx context.Context, req dto.SaveUserRequest) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.upsert(ctx, req.ToModel())
}

// Sync records a signed-in identity. A failed upsert is retried exactly once after
// AUTH_USER_SYNC_RETRY_SECONDS; the original error is still returned to the caller.
func (s *serviceImpl) Sync(ctx context.Context, req dto.SaveUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sync")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := req.ToModel()

	res, err = s.upsert(ctx, user)
	if err == nil {
		return res, nil
	}

	delay := time.Duration(s.cfg.Auth.UserSyncRetrySeconds) * time.Second

	log.Warn().Err(err).Str("email", user.Email).Dur("retry_in", delay).Msg("failed to sync user, retrying once")

	c := context.WithoutCancel(ctx)

	time.AfterFunc(delay, func() {
		if _, err := s.upsert(c, user); err != nil {
			log.Error().Err(err).Str("email", user.Email).Msg("user sync retry failed")

			return
		}

		log.Info().Str("email", user.Email).Msg("user sync retry succeeded")
	})

	return res, err
}

func (s *serviceImpl) upsert(ctx context.Context, user model.User) (res dto.UserResponse, err error) {
	stored, err := s.repo.Upsert(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to upsert user")

		return res, fmt.Errorf("failed to upsert user: %w", err)
	}

	res.FromModel(stored)

	if cacheErr := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetUser, stored.Email)); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("failed to delete user from cache")
	}

	return res, nil
}

func (s *serviceImpl) Lookup(ctx context.Context, email string) (res dto.LookupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer scope.TraceIfError(err)

	email = dto.NormalizeEmail(email)
	if email == constant.Empty {
		return res, failure.BadRequestFromString("email is required") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetUser, email)

	var cached dto.UserResponse
	if err = s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return dto.LookupResponse{Found: true, User: &cached}, nil
	}

	user, err := s.repo.Get(ctx, gDto.Where(gDto.Eq(model.TableName, model.FieldEmail, email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return dto.LookupResponse{Found: false}, nil
	}

	found := dto.UserResponse{}
	found.FromModel(user)

	if cacheErr := s.cache.Save(ctx, cacheKey, found, s.cfg.Cache.TTL); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("failed to save user to cache")
	}

	return dto.LookupResponse{Found: true, User: &found}, nil
}
