package user

import (
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/user/model/dto"
	"eyeslot/internal/domains/user/service"
	"eyeslot/shared/constant"
	"eyeslot/shared/validator"
	"eyeslot/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SaveUser)
		routerGroup.Get("/", handler.LookupUser)
	})
}

// SaveUser records a customer, overwriting the name of an existing email.
// @Summary Save a user
// @Description Insert a user or update the name of the user with the same email.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.SaveUserRequest true "Save User Request"
// @Success 200 {object} response.Data[dto.UserResponse] "Stored user"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users [post]
func (handler *Handler) SaveUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveUser")
	defer scope.End()

	req := dto.SaveUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save user")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// LookupUser reports whether an email belongs to a known customer.
// @Summary Look up a user
// @Tags User
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} response.Data[dto.LookupResponse] "Lookup result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users [get]
func (handler *Handler) LookupUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LookupUser")
	defer scope.End()

	res, err := handler.service.Lookup(ctx, request.URL.Query().Get(constant.RequestParamEmail))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to look up user")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
