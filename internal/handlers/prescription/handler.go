package prescription

import (
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/prescription/model/dto"
	"eyeslot/internal/domains/prescription/service"
	"eyeslot/shared/constant"
	"eyeslot/shared/validator"
	"eyeslot/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Prescription
	otel    otel.Otel
}

func New(service service.Prescription, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/prescriptions", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPrescriptions)
		routerGroup.Post("/", handler.CreatePrescription)
		routerGroup.Put("/", handler.UpdatePrescription)
		routerGroup.Delete("/", handler.DeletePrescription)
	})
}

// GetPrescriptions lists the saved prescriptions of a customer.
// @Summary List prescriptions
// @Description Retrieve the saved prescriptions of a customer, newest first.
// @Tags Prescription
// @Produce json
// @Param user_email query string true "Customer email"
// @Success 200 {object} response.Data[[]dto.PrescriptionResponse] "Prescriptions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/prescriptions [get]
func (handler *Handler) GetPrescriptions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrescriptions")
	defer scope.End()

	prescriptions, err := handler.service.List(ctx, request.URL.Query().Get(constant.RequestParamUserEmail))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get prescriptions")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, prescriptions)
}

// CreatePrescription saves a new prescription.
// @Summary Create a prescription
// @Tags Prescription
// @Accept json
// @Produce json
// @Param request body dto.CreatePrescriptionRequest true "Create Prescription Request"
// @Success 201 {object} response.Data[dto.PrescriptionResponse] "Prescription created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/prescriptions [post]
func (handler *Handler) CreatePrescription(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePrescription")
	defer scope.End()

	req := dto.CreatePrescriptionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	prescription, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create prescription")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, prescription)
}

// UpdatePrescription overwrites a saved prescription.
// @Summary Update a prescription
// @Tags Prescription
// @Accept json
// @Produce json
// @Param request body dto.UpdatePrescriptionRequest true "Update Prescription Request"
// @Success 200 {object} response.Data[dto.PrescriptionResponse] "Prescription updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/prescriptions [put]
func (handler *Handler) UpdatePrescription(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePrescription")
	defer scope.End()

	req := dto.UpdatePrescriptionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	prescription, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", req.ID).Msg("failed to update prescription")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, prescription)
}

// DeletePrescription removes a saved prescription.
// @Summary Delete a prescription
// @Tags Prescription
// @Accept json
// @Produce json
// @Param request body dto.DeletePrescriptionRequest true "Delete Prescription Request"
// @Success 200 {object} response.Message "Prescription deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/prescriptions [delete]
func (handler *Handler) DeletePrescription(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePrescription")
	defer scope.End()

	req := dto.DeletePrescriptionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, req.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", req.ID).Msg("failed to delete prescription")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Prescription deleted successfully")
}
