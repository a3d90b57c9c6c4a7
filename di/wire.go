//go:build wireinject
// +build wireinject

package di

import (
	"futsal/config"
	"futsal/infras/jwt"
	"futsal/infras/kafka"
	"futsal/infras/otel"
	"futsal/infras/postgres"
	"futsal/infras/redis"
	"futsal/infras/s3"
	"futsal/internal/app"
	"futsal/internal/domains/notification"
	"futsal/internal/scheduler"
	"futsal/permissions"
	"futsal/shared/cache"
	"futsal/transport/http"
	"futsal/transport/http/middleware"
	"futsal/transport/http/router"

	authService "futsal/internal/domains/auth/service"
	bookingRepository "futsal/internal/domains/booking/repository"
	bookingService "futsal/internal/domains/booking/service"
	fieldRepository "futsal/internal/domains/field/repository"
	fieldService "futsal/internal/domains/field/service"
	historyRepository "futsal/internal/domains/history/repository"
	historyService "futsal/internal/domains/history/service"
	paymentRepository "futsal/internal/domains/payment/repository"
	paymentService "futsal/internal/domains/payment/service"
	promotionRepository "futsal/internal/domains/promotion/repository"
	userRepository "futsal/internal/domains/user/repository"

	adminHandler "futsal/internal/handlers/admin"
	authHandler "futsal/internal/handlers/auth"
	bookingHandler "futsal/internal/handlers/booking"
	fieldHandler "futsal/internal/handlers/field"
	historyHandler "futsal/internal/handlers/history"
	paymentHandler "futsal/internal/handlers/payment"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var fieldDomain = wire.NewSet(
	fieldRepository.New,
	fieldService.New,
)

var historyDomain = wire.NewSet(
	historyRepository.New,
	historyRepository.NewPaymentLog,
	historyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	promotionRepository.New,
	notification.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var domains = wire.NewSet(
	authDomain,
	fieldDomain,
	historyDomain,
	bookingDomain,
	paymentDomain,
	scheduler.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	fieldHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	historyHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *app.App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		app.New,
	)

	return &app.App{}
}
