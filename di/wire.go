//go:build wireinject
// +build wireinject

package di

import (
	"campusbook/config"
	"campusbook/infras/jwt"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/infras/redis"
	"campusbook/shared/cache"
	"campusbook/transport/http"
	"campusbook/transport/http/middleware"
	"campusbook/transport/http/router"

	"github.com/google/wire"

	activityRepository "campusbook/internal/domains/activity/repository"
	activityService "campusbook/internal/domains/activity/service"
	authService "campusbook/internal/domains/auth/service"
	bookingRepository "campusbook/internal/domains/booking/repository"
	bookingService "campusbook/internal/domains/booking/service"
	resourceRepository "campusbook/internal/domains/resource/repository"
	resourceService "campusbook/internal/domains/resource/service"
	userRepository "campusbook/internal/domains/user/repository"
	userService "campusbook/internal/domains/user/service"

	activityHandler "campusbook/internal/handlers/activity"
	authHandler "campusbook/internal/handlers/auth"
	bookingHandler "campusbook/internal/handlers/booking"
	resourceHandler "campusbook/internal/handlers/resource"
	userHandler "campusbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
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

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var activityDomain = wire.NewSet(
	activityRepository.New,
	activityService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	userDomain,
	resourceDomain,
	bookingDomain,
	activityDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	resourceHandler.New,
	bookingHandler.New,
	activityHandler.New,
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
