package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"eyeslot/config"
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/booking/model"
	"eyeslot/internal/domains/booking/model/dto"
	"eyeslot/internal/domains/booking/notifier"
	"eyeslot/internal/domains/booking/repository"
	"eyeslot/shared"
	"eyeslot/shared/cache"
	"eyeslot/shared/constant"
	gDto "eyeslot/shared/dto"
	"eyeslot/shared/failure"
	gModel "eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"eyeslot/stores"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"

	// cancellationNoticeDays is how far ahead of the visit a customer may still cancel.
	cancellationNoticeDays = 2
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	List(ctx context.Context, email string) ([]dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	catalog  *stores.Catalog
	notifier notifier.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	catalog *stores.Catalog,
	notifier notifier.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if booking.VisitDate.DaysAfter(today()) < 0 {
		return res, failure.PastVisitDate
	}

	if !s.catalog.Exists(booking.StoreID) {
		return res, failure.UnknownStore
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, booking.Email)
	s.notify(ctx, booking, model.StatusBooked)

	res.FromModel(booking)

	return res, nil
}

// List returns every booking made with the email, earliest visit first.
func (s *serviceImpl) List(ctx context.Context, email string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	email = dto.NormalizeEmail(email)
	if email == constant.Empty {
		return res, failure.BadRequestFromString("Email is required") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetAllBooking, email)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx,
		gDto.SortedBy(gDto.SortDirAsc, model.FieldVisitDate, model.FieldVisitTime),
		gDto.Where(gDto.Eq(model.TableName, model.FieldEmail, email)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.FromModels(bookings)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("failed to save bookings to cache")
	}

	return res, nil
}

// Cancel removes a booking. Upcoming visits need at least two days notice and tell
// the store; visits already in the past are only dropped from the customer's history.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.TrimSpace(id) == constant.Empty {
		return failure.BadRequestFromString("ID is required") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("Booking not found") //nolint:wrapcheck
	}

	days := booking.VisitDate.DaysAfter(today())
	if days >= 0 && days < cancellationNoticeDays {
		return failure.CancellationWindowClosed
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, booking.Email)

	if days >= cancellationNoticeDays {
		s.notify(ctx, booking, model.StatusCancelled)
	}

	return nil
}

func (s *serviceImpl) notify(ctx context.Context, booking model.Booking, status string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.Send(c, booking, status); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Str("status", status).Msg("failed to notify store")
		}
	}()
}

// invalidate runs before the write returns so the next List reads the database.
func (s *serviceImpl) invalidate(ctx context.Context, email string) {
	if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetAllBooking, email)); err != nil {
		log.Error().Err(err).Msg("failed to delete bookings from cache")
	}
}

func today() gModel.Date {
	return gModel.DateOf(timezone.Now())
}
