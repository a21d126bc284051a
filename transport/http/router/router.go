package router

import (
	"potteryloop/internal/handlers/booking"
	"potteryloop/internal/handlers/collaboration"
	"potteryloop/internal/handlers/contact"
	"potteryloop/internal/handlers/instructor"
	"potteryloop/internal/handlers/openstudio"
	"potteryloop/internal/handlers/promo"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking       booking.Handler
	Contact       contact.Handler
	Collaboration collaboration.Handler
	Instructor    instructor.Handler
	OpenStudio    openstudio.Handler
	Promo         promo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Collaboration.Router(routerGroup)
		r.DomainHandlers.Instructor.Router(routerGroup)
		r.DomainHandlers.OpenStudio.Router(routerGroup)
		r.DomainHandlers.Promo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
