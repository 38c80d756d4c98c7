//go:build wireinject
// +build wireinject

package di

import (
	"eyeslot/config"
	"eyeslot/infras/jwt"
	"eyeslot/infras/kafka"
	"eyeslot/infras/oauth"
	"eyeslot/infras/otel"
	"eyeslot/infras/postgres"
	"eyeslot/infras/redis"
	"eyeslot/infras/webhook"
	"eyeslot/shared/cache"
	"eyeslot/stores"
	"eyeslot/transport/http"
	"eyeslot/transport/http/middleware"
	"eyeslot/transport/http/router"

	"github.com/google/wire"

	authService "eyeslot/internal/domains/auth/service"
	bookingNotifier "eyeslot/internal/domains/booking/notifier"
	bookingRepository "eyeslot/internal/domains/booking/repository"
	bookingService "eyeslot/internal/domains/booking/service"
	prescriptionRepository "eyeslot/internal/domains/prescription/repository"
	prescriptionService "eyeslot/internal/domains/prescription/service"
	reviewRepository "eyeslot/internal/domains/review/repository"
	reviewService "eyeslot/internal/domains/review/service"
	userRepository "eyeslot/internal/domains/user/repository"
	userService "eyeslot/internal/domains/user/service"

	authHandler "eyeslot/internal/handlers/auth"
	bookingHandler "eyeslot/internal/handlers/booking"
	prescriptionHandler "eyeslot/internal/handlers/prescription"
	reviewHandler "eyeslot/internal/handlers/review"
	storeHandler "eyeslot/internal/handlers/store"
	userHandler "eyeslot/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	stores.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	oauth.New,
	webhook.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingNotifier.New,
	bookingService.New,
)

var prescriptionDomain = wire.NewSet(
	prescriptionRepository.New,
	prescriptionService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	bookingDomain,
	prescriptionDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	prescriptionHandler.New,
	reviewHandler.New,
	storeHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
