//go:build wireinject
// +build wireinject

package di

import (
	"potteryloop/config"
	"potteryloop/infras/dynamo"
	"potteryloop/infras/otel"
	"potteryloop/infras/redis"
	"potteryloop/infras/ses"
	"potteryloop/shared/cache"
	"potteryloop/transport/http"
	"potteryloop/transport/http/middleware"
	"potteryloop/transport/http/router"

	bookingRepository "potteryloop/internal/domains/booking/repository"
	bookingService "potteryloop/internal/domains/booking/service"
	bookingHandler "potteryloop/internal/handlers/booking"

	contactRepository "potteryloop/internal/domains/contact/repository"
	contactService "potteryloop/internal/domains/contact/service"
	contactHandler "potteryloop/internal/handlers/contact"

	collaborationRepository "potteryloop/internal/domains/collaboration/repository"
	collaborationService "potteryloop/internal/domains/collaboration/service"
	collaborationHandler "potteryloop/internal/handlers/collaboration"

	instructorRepository "potteryloop/internal/domains/instructor/repository"
	instructorService "potteryloop/internal/domains/instructor/service"
	instructorHandler "potteryloop/internal/handlers/instructor"

	openstudioRepository "potteryloop/internal/domains/openstudio/repository"
	openstudioService "potteryloop/internal/domains/openstudio/service"
	openstudioHandler "potteryloop/internal/handlers/openstudio"

	promoRepository "potteryloop/internal/domains/promo/repository"
	promoService "potteryloop/internal/domains/promo/service"
	promoHandler "potteryloop/internal/handlers/promo"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	dynamo.New,
	otel.New,
	redis.New,
	ses.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var collaborationDomain = wire.NewSet(
	collaborationRepository.New,
	collaborationService.New,
)

var instructorDomain = wire.NewSet(
	instructorRepository.New,
	instructorService.New,
)

var openstudioDomain = wire.NewSet(
	openstudioRepository.New,
	openstudioService.New,
)

var promoDomain = wire.NewSet(
	promoRepository.New,
	promoService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	contactDomain,
	collaborationDomain,
	instructorDomain,
	openstudioDomain,
	promoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	contactHandler.New,
	collaborationHandler.New,
	instructorHandler.New,
	openstudioHandler.New,
	promoHandler.New,
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
