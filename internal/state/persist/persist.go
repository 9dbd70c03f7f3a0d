// Package persist stores the whole state document durably. Persistence is
// best-effort: the in-memory store is authoritative for the running process,
// and a failed save never rolls back a committed mutation.
package persist

//go:generate go run go.uber.org/mock/mockgen -source=./persist.go -destination=./mocks/persist_mock.go -package=mocks

import (
	"context"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tide/config"
	"tide/infras/otel"
	"tide/infras/postgres"
	"tide/internal/state/model"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Driver loads and saves the full state document. Load reports ok=false when
// no prior state exists, which is not an error.
type Driver interface {
	Load(ctx context.Context) (doc model.Document, ok bool, err error)
	Save(ctx context.Context, doc model.Document) error
}

// New selects the configured driver. The postgres connection is only opened
// when that driver is selected; the redis client is shared with the cache.
func New(cfg *config.Config, redisClient *goRedis.Client, ot otel.Otel) Driver {
	switch cfg.State.Driver {
	case DriverPostgres:
		return NewPostgres(postgres.New(cfg), ot)
	case DriverRedis:
		return NewRedis(redisClient, ot)
	default:
		if cfg.State.Driver != DriverFile {
			log.Warn().Str("driver", cfg.State.Driver).Msg("Unknown persistence driver, falling back to file")
		}

		return NewFile(cfg.State.FilePath, ot)
	}
}
