package booking

import (
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/booking/model/dto"
	"eyeslot/internal/domains/booking/service"
	"eyeslot/shared/constant"
	"eyeslot/shared/validator"
	"eyeslot/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Delete("/", handler.CancelBooking)
	})
}

// CreateBooking handles the creation of a new visit reservation.
// @Summary Create a booking
// @Description Reserve a store visit. The store is notified in the background.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created for store " + booking.StoreID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists the bookings made with an email address.
// @Summary List bookings
// @Description Retrieve the bookings of a customer ordered by visit date and time.
// @Tags Booking
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {object} response.Data[[]dto.BookingResponse] "Bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.List(ctx, request.URL.Query().Get(constant.RequestParamEmail))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// CancelBooking cancels a reservation.
// @Summary Cancel a booking
// @Description Cancel a booking at least two days before the visit, or clear a past one.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [delete]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Cancel(ctx, req.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", req.ID).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled")

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}
