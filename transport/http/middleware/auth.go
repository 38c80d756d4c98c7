package middleware

import (
	"context"
	"errors"
	"eyeslot/config"
	"eyeslot/infras/jwt"
	"eyeslot/infras/otel"
	"eyeslot/shared/constant"
	"eyeslot/shared/failure"
	"eyeslot/transport/http/response"
	"net/http"
)

// Auth guards routes that need a signed-in customer.
type Auth interface {
	Session(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}
}

// Session accepts the session cookie or a Bearer header and stores the claims in the
// request context.
func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "session",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		tokenString, err := m.token(request)
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Session has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid session claims"
			default:
				message = "Invalid session"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, claims.Name)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) token(request *http.Request) (string, error) {
	if cookie, err := request.Cookie(m.cfg.JWT.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == "" {
		return "", failure.Unauthorized("Missing session")
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return "", failure.Unauthorized("Invalid authorization header format")
	}

	return tokenString, nil
}
