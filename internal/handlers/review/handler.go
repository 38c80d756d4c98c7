package review

import (
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/review/model/dto"
	"eyeslot/internal/domains/review/service"
	"eyeslot/shared/constant"
	"eyeslot/shared/failure"
	"eyeslot/shared/validator"
	"eyeslot/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Put("/", handler.UpdateReview)
	})
}

// GetReviews returns the review of one booking or every review of a store.
// @Summary Read reviews
// @Description With booking_id returns that booking's review or null. With store_id returns the store's reviews, newest first.
// @Tags Review
// @Produce json
// @Param booking_id query string false "Booking ID"
// @Param store_id query string false "Store ID"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Review"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	query := request.URL.Query()

	var (
		res any
		err error
	)

	switch {
	case query.Get(constant.RequestParamBookingID) != constant.Empty:
		res, err = handler.service.GetByBooking(ctx, query.Get(constant.RequestParamBookingID))
	case query.Get(constant.RequestParamStoreID) != constant.Empty:
		res, err = handler.service.ListByStore(ctx, query.Get(constant.RequestParamStoreID))
	default:
		err = failure.BadRequestFromString("booking_id or store_id is required")
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateReview leaves the review of a booking.
// @Summary Create a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.SaveReviewRequest true "Review"
// @Success 201 {object} response.Data[dto.ReviewResponse] "Review created"
// @Failure 400 {object} response.Error "Invalid review or review already exists"
// @Failure 500 {object} response.Error
// @Router /v1/reviews [post]
func (handler *Handler) CreateReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.SaveReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	review, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to create review")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, review)
}

// UpdateReview overwrites the review of a booking.
// @Summary Update a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.SaveReviewRequest true "Review"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Review updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [put]
func (handler *Handler) UpdateReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReview")
	defer scope.End()

	req := dto.SaveReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	review, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to update review")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, review)
}
