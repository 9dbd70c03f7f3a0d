package router

import (
	"tide/internal/handlers/frontdesk"
	"tide/internal/handlers/guest"
	"tide/internal/handlers/inventory"
	"tide/internal/handlers/maintenance"
	"tide/internal/handlers/restaurant"
	"tide/internal/handlers/settings"
	"tide/internal/handlers/snapshot"
	"tide/internal/handlers/staff"
	"tide/internal/handlers/sync"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Inventory   inventory.Handler
	Guest       guest.Handler
	FrontDesk   frontdesk.Handler
	Restaurant  restaurant.Handler
	Staff       staff.Handler
	Maintenance maintenance.Handler
	Settings    settings.Handler
	Snapshot    snapshot.Handler
	Sync        sync.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.FrontDesk.Router(routerGroup)
		r.DomainHandlers.Restaurant.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Snapshot.Router(routerGroup)
	})

	r.DomainHandlers.Sync.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
