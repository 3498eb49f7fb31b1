//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Lucasteinmann/Aarebooking/config"
	"github.com/Lucasteinmann/Aarebooking/infras/kafka"
	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/infras/postgres"
	"github.com/Lucasteinmann/Aarebooking/infras/redis"
	"github.com/Lucasteinmann/Aarebooking/shared/cache"
	"github.com/Lucasteinmann/Aarebooking/transport/http"
	"github.com/Lucasteinmann/Aarebooking/transport/http/middleware"
	"github.com/Lucasteinmann/Aarebooking/transport/http/router"

	addressService "github.com/Lucasteinmann/Aarebooking/internal/domains/address/service"
	boatRepository "github.com/Lucasteinmann/Aarebooking/internal/domains/boat/repository"
	boatService "github.com/Lucasteinmann/Aarebooking/internal/domains/boat/service"
	bookingRepository "github.com/Lucasteinmann/Aarebooking/internal/domains/booking/repository"
	bookingService "github.com/Lucasteinmann/Aarebooking/internal/domains/booking/service"
	sessionService "github.com/Lucasteinmann/Aarebooking/internal/domains/session/service"
	addressHandler "github.com/Lucasteinmann/Aarebooking/internal/handlers/address"
	boatHandler "github.com/Lucasteinmann/Aarebooking/internal/handlers/boat"
	bookingHandler "github.com/Lucasteinmann/Aarebooking/internal/handlers/booking"
	sessionHandler "github.com/Lucasteinmann/Aarebooking/internal/handlers/session"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var boatDomain = wire.NewSet(
	boatRepository.New,
	boatService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	wire.Bind(new(bookingService.CatalogProvider), new(boatService.Boat)),
)

var sessionDomain = wire.NewSet(
	sessionService.New,
	wire.Bind(new(sessionService.BookingGateway), new(bookingService.Booking)),
)

var addressDomain = wire.NewSet(
	addressService.New,
)

var domains = wire.NewSet(
	boatDomain,
	bookingDomain,
	sessionDomain,
	addressDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	boatHandler.New,
	bookingHandler.New,
	sessionHandler.New,
	addressHandler.New,
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
