package persist

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/state/model"
	"tide/shared/constant"
)

const redisSnapshotKey = "tide:state:snapshot"

type redisDriver struct {
	client *goRedis.Client
	otel   otel.Otel
}

func NewRedis(client *goRedis.Client, ot otel.Otel) Driver {
	return &redisDriver{
		client: client,
		otel:   ot,
	}
}

func (d *redisDriver) Load(ctx context.Context) (doc model.Document, ok bool, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelPersistScopeName, "RedisDriver.Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := d.client.Get(ctx, redisSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return model.Document{}, false, nil
		}

		log.Error().Err(err).Msg("[RedisDriver] Failed to load state snapshot")

		return model.Document{}, false, errors.Wrap(err, "loading state snapshot")
	}

	if err = json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Msg("[RedisDriver] Failed to decode state snapshot")

		return model.Document{}, false, errors.Wrap(err, "decoding state snapshot")
	}

	return doc, true, nil
}

func (d *redisDriver) Save(ctx context.Context, doc model.Document) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelPersistScopeName, "RedisDriver.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding state document")
	}

	// Persisted state has no TTL; it survives until the next save replaces it.
	if err = d.client.Set(ctx, redisSnapshotKey, raw, 0).Err(); err != nil {
		log.Error().Err(err).Msg("[RedisDriver] Failed to save state snapshot")

		return errors.Wrap(err, "saving state snapshot")
	}

	return nil
}
