package router

import (
	"tm30/internal/handlers/admin"
	"tm30/internal/handlers/hotel"
	"tm30/internal/handlers/maintenance"
	"tm30/internal/handlers/submission"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Submission  submission.Handler
	Hotel       hotel.Handler
	Admin       admin.Handler
	Maintenance maintenance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Submission.Router(router)
	r.DomainHandlers.Hotel.Router(router)
	r.DomainHandlers.Admin.Router(router)
	r.DomainHandlers.Maintenance.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
