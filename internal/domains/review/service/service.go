package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"context"
	"eyeslot/config"
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/review/model"
	"eyeslot/internal/domains/review/model/dto"
	"eyeslot/internal/domains/review/repository"
	"eyeslot/shared"
	"eyeslot/shared/cache"
	"eyeslot/shared/constant"
	gDto "eyeslot/shared/dto"
	"eyeslot/shared/failure"
	gRepo "eyeslot/shared/repository"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:gets"
)

type Review interface {
	Create(ctx context.Context, req dto.SaveReviewRequest) (dto.ReviewResponse, error)
	Update(ctx context.Context, req dto.SaveReviewRequest) (dto.ReviewResponse, error)
	GetByBooking(ctx context.Context, bookingID string) (*dto.ReviewResponse, error)
	ListByStore(ctx context.Context, storeID string) ([]dto.ReviewResponse, error)
}

type serviceImpl struct {
	repo  repository.Review
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Valid() {
		return res, failure.BadRequestFromString("Invalid review data") //nolint:wrapcheck
	}

	review := req.ToModel()

	if err = s.repo.Insert(ctx, review); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.ReviewAlreadyExists
		}

		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	s.invalidate(ctx, review.StoreID)

	res.FromModel(review)

	return res, nil
}

// Update overwrites the review left for a booking.
func (s *serviceImpl) Update(ctx context.Context, req dto.SaveReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Valid() {
		return res, failure.BadRequestFromString("Invalid review data") //nolint:wrapcheck
	}

	filter := gDto.Where(gDto.Eq(model.TableName, model.FieldBookingID, strings.TrimSpace(req.BookingID)))

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return res, fmt.Errorf("failed to get review: %w", err)
	}

	if existing.ID == constant.Empty {
		return res, failure.NotFound("Review not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.Fields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update review")

		return res, fmt.Errorf("failed to update review: %w", err)
	}

	updated := req.Apply(existing)

	s.invalidate(ctx, existing.StoreID)

	if updated.StoreID != existing.StoreID {
		s.invalidate(ctx, updated.StoreID)
	}

	res.FromModel(updated)

	return res, nil
}

// GetByBooking returns nil when the booking has not been reviewed yet.
func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res *dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingID = strings.TrimSpace(bookingID)
	if bookingID == constant.Empty {
		return nil, failure.BadRequestFromString("booking_id is required") //nolint:wrapcheck
	}

	review, err := s.repo.Get(ctx, gDto.Where(gDto.Eq(model.TableName, model.FieldBookingID, bookingID)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	res = &dto.ReviewResponse{}
	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) ListByStore(ctx context.Context, storeID string) (res []dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByStore")
	defer scope.End()
	defer scope.TraceIfError(err)

	storeID = strings.ToLower(strings.TrimSpace(storeID))
	if storeID == constant.Empty {
		return res, failure.BadRequestFromString("store_id is required") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetAllReview, storeID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	reviews, err := s.repo.GetAll(ctx,
		gDto.SortedBy(gDto.SortDirDesc, constant.FieldCreatedAt),
		gDto.Where(gDto.Eq(model.TableName, model.FieldStoreID, storeID)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res = dto.FromModels(reviews)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("failed to save reviews to cache")
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, storeID string) {
	if storeID == constant.Empty {
		return
	}

	if cacheErr := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetAllReview, storeID)); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("failed to delete reviews from cache")
	}
}
