//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tripgate/config"
	"tripgate/infras/coreapi"
	"tripgate/infras/jwt"
	"tripgate/infras/kafka"
	"tripgate/infras/otel"
	"tripgate/infras/redis"
	"tripgate/internal/email"
	"tripgate/shared/cache"
	"tripgate/transport/http"
	"tripgate/transport/http/middleware"
	"tripgate/transport/http/router"

	adminService "tripgate/internal/domains/admin/service"
	flowGateway "tripgate/internal/domains/bookingflow/gateway"
	flowService "tripgate/internal/domains/bookingflow/service"
	catalogService "tripgate/internal/domains/catalog/service"
	paymentService "tripgate/internal/domains/payment/service"
	ratesService "tripgate/internal/domains/rates/service"
	sessionService "tripgate/internal/domains/session/service"

	adminHandler "tripgate/internal/handlers/admin"
	catalogHandler "tripgate/internal/handlers/catalog"
	flowHandler "tripgate/internal/handlers/flow"
	paymentHandler "tripgate/internal/handlers/payment"
	ratesHandler "tripgate/internal/handlers/rates"
	sessionHandler "tripgate/internal/handlers/session"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	coreapi.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var catalogDomain = wire.NewSet(
	catalogService.New,
)

var ratesDomain = wire.NewSet(
	ratesService.New,
)

var flowDomain = wire.NewSet(
	flowGateway.New,
	flowService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	catalogDomain,
	ratesDomain,
	flowDomain,
	adminDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	sessionHandler.New,
	catalogHandler.New,
	ratesHandler.New,
	flowHandler.New,
	adminHandler.New,
	paymentHandler.New,
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

func InitializeWorker() *Worker {
	wire.Build(
		configurations,
		wire.NewSet(
			otel.New,
			kafka.New,
		),
		email.NewSender,
		NewWorker,
	)

	return &Worker{}
}
