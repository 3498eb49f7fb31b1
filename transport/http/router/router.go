package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/Lucasteinmann/Aarebooking/internal/handlers/address"
	"github.com/Lucasteinmann/Aarebooking/internal/handlers/boat"
	"github.com/Lucasteinmann/Aarebooking/internal/handlers/booking"
	"github.com/Lucasteinmann/Aarebooking/internal/handlers/session"
)

type DomainHandlers struct {
	Boat    boat.Handler
	Booking booking.Handler
	Session session.Handler
	Address address.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Boat.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Address.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
