package router

import (
	"github.com/go-chi/chi/v5"

	"tripgate/internal/handlers/admin"
	"tripgate/internal/handlers/catalog"
	"tripgate/internal/handlers/flow"
	"tripgate/internal/handlers/payment"
	"tripgate/internal/handlers/rates"
	"tripgate/internal/handlers/session"
	"tripgate/transport/http/middleware"
)

type DomainHandlers struct {
	Session session.Handler
	Catalog catalog.Handler
	Rates   rates.Handler
	Flow    flow.Handler
	Payment payment.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

// SetupRoutes mounts the public browsing/booking surface and the session-gated
// admin surface under /v1.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Rates.Router(routerGroup)
		r.DomainHandlers.Flow.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)

		routerGroup.Group(func(authGroup chi.Router) {
			authGroup.Use(r.Auth.Auth)

			r.DomainHandlers.Session.AuthRouter(authGroup)
			r.DomainHandlers.Admin.Router(authGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
