//go:build wireinject
// +build wireinject

package di

import (
	"tide/config"
	"tide/infras/kafka"
	"tide/infras/otel"
	"tide/infras/redis"
	"tide/infras/s3"
	"tide/internal/state/gateway"
	"tide/internal/state/hub"
	"tide/internal/state/persist"
	"tide/internal/state/store"
	"tide/shared/cache"
	"tide/transport/http"
	"tide/transport/http/middleware"
	"tide/transport/http/router"

	"github.com/google/wire"

	frontdeskService "tide/internal/domains/frontdesk/service"
	guestService "tide/internal/domains/guest/service"
	inventoryService "tide/internal/domains/inventory/service"
	maintenanceService "tide/internal/domains/maintenance/service"
	restaurantService "tide/internal/domains/restaurant/service"
	settingsService "tide/internal/domains/settings/service"
	staffService "tide/internal/domains/staff/service"

	frontdeskHandler "tide/internal/handlers/frontdesk"
	guestHandler "tide/internal/handlers/guest"
	inventoryHandler "tide/internal/handlers/inventory"
	maintenanceHandler "tide/internal/handlers/maintenance"
	restaurantHandler "tide/internal/handlers/restaurant"
	settingsHandler "tide/internal/handlers/settings"
	snapshotHandler "tide/internal/handlers/snapshot"
	staffHandler "tide/internal/handlers/staff"
	syncHandler "tide/internal/handlers/sync"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var state = wire.NewSet(
	store.New,
	persist.New,
	hub.New,
	wire.Bind(new(hub.Broadcaster), new(*hub.Hub)),
	gateway.NewPublisher,
	gateway.New,
	wire.Bind(new(gateway.Gateway), new(*gateway.Service)),
	gateway.NewArchiver,
)

var domains = wire.NewSet(
	inventoryService.New,
	guestService.New,
	frontdeskService.New,
	restaurantService.New,
	staffService.New,
	maintenanceService.New,
	settingsService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	inventoryHandler.New,
	guestHandler.New,
	frontdeskHandler.New,
	restaurantHandler.New,
	staffHandler.New,
	maintenanceHandler.New,
	settingsHandler.New,
	snapshotHandler.New,
	syncHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		state,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
