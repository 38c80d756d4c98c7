package auth

import (
	"eyeslot/config"
	"eyeslot/infras/otel"
	"eyeslot/internal/domains/auth/model/dto"
	"eyeslot/internal/domains/auth/service"
	"eyeslot/shared/constant"
	"eyeslot/shared/failure"
	"eyeslot/transport/http/middleware"
	"eyeslot/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	session middleware.Auth
	app     middleware.AppMiddleware
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Auth, session middleware.Auth, app middleware.AppMiddleware, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		app:     app,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Group(func(limited chi.Router) {
			limited.Use(handler.app.SignInLimit())
			limited.Get("/google/login", handler.Login)
			limited.Get("/google/callback", handler.Callback)
		})

		routerGroup.With(handler.session.Session).Get("/session", handler.Session)
		routerGroup.Post("/logout", handler.Logout)
	})
}

// Login redirects to the Google consent page.
// @Summary Start Google sign-in
// @Tags Auth
// @Success 302 "Redirect to Google"
// @Failure 429 {object} response.Message
// @Router /v1/auth/google/login [get]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	start, err := handler.service.BeginSignIn(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start sign-in")

		response.WithError(writer, err)

		return
	}

	http.SetCookie(writer, handler.cookie(constant.CookieOAuthState, start.State, constant.CookieOAuthStateMaxAge))
	http.Redirect(writer, request, start.URL, http.StatusFound)
}

// Callback completes Google sign-in and issues the session.
// @Summary Complete Google sign-in
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Anti-forgery state"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/auth/google/callback [get]
func (handler *Handler) Callback(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Callback")
	defer scope.End()

	query := request.URL.Query()

	if reason := query.Get("error"); reason != constant.Empty {
		err := failure.Unauthorized("sign-in was cancelled: " + reason)
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.CallbackRequest{
		Code:  query.Get(constant.RequestParamCode),
		State: query.Get(constant.RequestParamState),
	}

	if cookie, err := request.Cookie(constant.CookieOAuthState); err == nil {
		req.ExpectedState = cookie.Value
	}

	http.SetCookie(writer, handler.cookie(constant.CookieOAuthState, constant.Empty, -1))

	session, err := handler.service.CompleteSignIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete sign-in")

		response.WithError(writer, err)

		return
	}

	http.SetCookie(writer, handler.cookie(handler.cfg.JWT.CookieName, session.Token, int(time.Until(session.ExpiresAt).Seconds())))

	scope.AddEvent("Signed in " + session.User.Email)

	response.WithJSON(writer, http.StatusOK, session)
}

// Session returns the signed-in customer.
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.SessionUser] "Signed-in user"
// @Failure 401 {object} response.Error
// @Router /v1/auth/session [get]
// @Security BearerAuth
func (handler *Handler) Session(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	user := dto.SessionUser{}
	user.ID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	user.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	user.Name, _ = ctx.Value(constant.ContextKeyUserName).(string)

	response.WithJSON(writer, http.StatusOK, user)
}

// Logout clears the session cookie.
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Signed out"
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(writer http.ResponseWriter, _ *http.Request) {
	http.SetCookie(writer, handler.cookie(handler.cfg.JWT.CookieName, constant.Empty, -1))

	response.WithMessage(writer, http.StatusOK, "Signed out successfully")
}

// cookie builds an HttpOnly cookie; a negative maxAge deletes it.
func (handler *Handler) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.cfg.Server.Env != constant.ServerEnvDevelopment,
		SameSite: http.SameSiteLaxMode,
	}
}
