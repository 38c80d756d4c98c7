package router

import (
	"eyeslot/internal/handlers/auth"
	"eyeslot/internal/handlers/booking"
	"eyeslot/internal/handlers/prescription"
	"eyeslot/internal/handlers/review"
	"eyeslot/internal/handlers/store"
	"eyeslot/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	Prescription prescription.Handler
	Review       review.Handler
	Store        store.Handler
	User         user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Prescription.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Store.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
