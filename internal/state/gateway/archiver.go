package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"tide/config"
	"tide/infras/s3"
	"tide/shared/constant"
)

const archiveDirectory = "snapshots"

// Archiver periodically copies the full state snapshot to object storage as
// an off-site backup. It is independent of the persistence driver and only
// runs when enabled.
type Archiver struct {
	gateway  Gateway
	storage  s3.S3
	interval time.Duration
	enabled  bool
}

func NewArchiver(cfg *config.Config, gw Gateway, storage s3.S3) *Archiver {
	return &Archiver{
		gateway:  gw,
		storage:  storage,
		interval: time.Duration(cfg.External.S3.BackupIntervalSeconds) * time.Second,
		enabled:  cfg.External.S3.Enable,
	}
}

// Run uploads a snapshot every interval until the context is cancelled.
// Intended to run in its own goroutine.
func (a *Archiver) Run(ctx context.Context) {
	if !a.enabled {
		return
	}

	log.Info().Dur("interval", a.interval).Msg("[Archiver] Snapshot archiving started")

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("[Archiver] Snapshot archiving stopped")

			return
		case <-ticker.C:
			a.archive(ctx)
		}
	}
}

func (a *Archiver) archive(ctx context.Context) {
	snap, err := a.gateway.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("[Archiver] Failed to build snapshot")

		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Msg("[Archiver] Failed to encode snapshot")

		return
	}

	objectName := "state-" + time.Now().UTC().Format("20060102T150405Z") + ".json"

	if err := a.storage.PutObjectBytes(ctx, "", archiveDirectory, objectName, constant.ContentTypeJSON, raw); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("[Archiver] Failed to upload snapshot")

		return
	}

	log.Info().Str("object", objectName).Msg("[Archiver] Snapshot archived")
}
