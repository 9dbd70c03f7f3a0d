package di

import (
	"tide/internal/state/gateway"
	"tide/transport/http"

	settingsService "tide/internal/domains/settings/service"
)

// App bundles everything main needs to boot: the HTTP transport plus the
// pieces with their own lifecycle (state restore, settings seeding, the
// snapshot archiver).
type App struct {
	HTTP     *http.HTTP
	Gateway  *gateway.Service
	Settings settingsService.Settings
	Archiver *gateway.Archiver
}
