package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Prescription=MockPrescriptionService

import (
	"context"
	"eyeslot/config"
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/prescription/model"
	"eyeslot/internal/domains/prescription/model/dto"
	"eyeslot/internal/domains/prescription/repository"
	"eyeslot/shared"
	"eyeslot/shared/cache"
	"eyeslot/shared/constant"
	gDto "eyeslot/shared/dto"
	"eyeslot/shared/failure"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPrescription = "prescription:gets"
)

type Prescription interface {
	List(ctx context.Context, userEmail string) ([]dto.PrescriptionResponse, error)
	Create(ctx context.Context, req dto.CreatePrescriptionRequest) (dto.PrescriptionResponse, error)
	Update(ctx context.Context, req dto.UpdatePrescriptionRequest) (dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Prescription
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Prescription, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Prescription {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns the saved prescriptions of a customer, newest first.
func (s *serviceImpl) List(ctx context.Context, userEmail string) (res []dto.PrescriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	if userEmail == constant.Empty {
		return res, failure.BadRequestFromString("user_email is required") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetAllPrescription, userEmail)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for prescriptions")

		return res, nil
	}

	prescriptions, err := s.repo.GetAll(ctx,
		gDto.SortedBy(gDto.SortDirDesc, constant.FieldCreatedAt),
		gDto.Where(gDto.Eq(model.TableName, model.FieldUserEmail, userEmail)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get prescriptions")

		return res, fmt.Errorf("failed to get prescriptions: %w", err)
	}

	res = dto.FromModels(prescriptions)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("failed to save prescriptions to cache")
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePrescriptionRequest) (res dto.PrescriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	prescription := req.ToModel()

	if err = s.repo.Insert(ctx, prescription); err != nil {
		log.Error().Err(err).Msg("failed to create prescription")

		return res, fmt.Errorf("failed to create prescription: %w", err)
	}

	res.FromModel(prescription)

	s.invalidate(ctx, prescription.UserEmail)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePrescriptionRequest) (res dto.PrescriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.find(ctx, req.ID)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, req.Fields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update prescription")

		return res, fmt.Errorf("failed to update prescription: %w", err)
	}

	res.FromModel(req.Apply(existing))

	s.invalidate(ctx, existing.UserEmail)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete prescription")

		return fmt.Errorf("failed to delete prescription: %w", err)
	}

	s.invalidate(ctx, existing.UserEmail)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Prescription, error) {
	if strings.TrimSpace(id) == constant.Empty {
		return model.Prescription{}, failure.BadRequestFromString("Prescription ID is required") //nolint:wrapcheck
	}

	prescription, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get prescription")

		return prescription, fmt.Errorf("failed to get prescription: %w", err)
	}

	if prescription.ID == constant.Empty {
		return prescription, failure.NotFound("prescription not found") //nolint:wrapcheck
	}

	return prescription, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, userEmail string) {
	if cacheErr := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetAllPrescription, userEmail)); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("failed to delete prescriptions from cache")
	}
}
