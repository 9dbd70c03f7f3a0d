// Package gateway is the single write path into the state store. Every
// mutation flows through Commit, which serializes access, records the sync
// log entry, persists the document and fans the fresh snapshot out to
// subscribers.
package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"tide/config"
	"tide/infras/otel"
	"tide/internal/state/hub"
	"tide/internal/state/model"
	"tide/internal/state/persist"
	"tide/internal/state/store"
	"tide/internal/state/synclog"
	"tide/shared/constant"
)

// EventDataUpdate is the event name on every frame pushed to subscribers.
const EventDataUpdate = "data_update"

// Event is the wire frame subscribers receive.
type Event struct {
	Event string         `json:"event"`
	Data  model.Snapshot `json:"data"`
}

// MutateFunc applies one mutation to the store and returns the sync log
// message describing it. Returning an error rejects the whole mutation:
// implementations must validate before touching the store.
type MutateFunc func(s *store.Store) (string, error)

// Gateway is implemented by *Service. Handlers and domain services depend on
// this interface so tests can swap in a mock.
type Gateway interface {
	Commit(ctx context.Context, level model.SyncLevel, fn MutateFunc) error
	Snapshot(ctx context.Context) (model.Snapshot, error)
	SnapshotFrame(ctx context.Context) ([]byte, error)
}

// Service owns the store, the sync log and the single mutation lock.
type Service struct {
	mu        sync.Mutex
	store     *store.Store
	syncLog   *synclog.Log
	driver    persist.Driver
	hub       hub.Broadcaster
	publisher Publisher
	otel      otel.Otel
}

func New(cfg *config.Config, st *store.Store, driver persist.Driver, broadcaster hub.Broadcaster, publisher Publisher, ot otel.Otel) *Service {
	return &Service{
		store:     st,
		syncLog:   synclog.New(cfg.State.SyncLogLimit),
		driver:    driver,
		hub:       broadcaster,
		publisher: publisher,
		otel:      ot,
	}
}

// Start restores the store and sync log from the persistence driver. A
// missing document is a clean first boot, and an unreadable one falls back
// to an empty store; startup never fails on bad persisted state.
func (g *Service) Start(ctx context.Context) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelStateScopeName, "Gateway.Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	g.mu.Lock()
	defer g.mu.Unlock()

	doc, ok, err := g.driver.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("[Gateway] Failed to restore persisted state, starting empty")
		g.syncLog.Append(model.SyncLevelError, fmt.Sprintf("State restore failed: %v", err))

		return nil
	}

	if !ok {
		log.Info().Msg("[Gateway] No persisted state found, starting empty")

		return nil
	}

	g.store.Import(doc)
	g.syncLog.Replace(doc.Data.SyncLog)

	log.Info().
		Int("rooms", g.store.Rooms.Len()).
		Int("guests", g.store.Guests.Len()).
		Int("syncLog", g.syncLog.Len()).
		Msg("[Gateway] Restored persisted state")

	return nil
}

// Commit runs one mutation end to end: apply, log, persist, broadcast. An
// error from fn aborts everything; nothing is logged, persisted or
// broadcast. A persistence failure is recorded in the sync log but the
// committed mutation stands.
func (g *Service) Commit(ctx context.Context, level model.SyncLevel, fn MutateFunc) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelStateScopeName, "Gateway.Commit")
	defer scope.End()
	defer scope.TraceIfError(err)

	g.mu.Lock()
	defer g.mu.Unlock()

	message, err := fn(g.store)
	if err != nil {
		return err
	}

	entry := g.syncLog.Append(level, message)
	g.logEntry(entry)

	if persistErr := g.persistLocked(ctx); persistErr != nil {
		log.Error().Err(persistErr).Msg("[Gateway] Failed to persist committed state")
		g.syncLog.Append(model.SyncLevelError, fmt.Sprintf("Persistence failed: %v", persistErr))
	}

	g.broadcastLocked(ctx)
	g.publisher.Publish(ctx, entry)

	return nil
}

// Snapshot returns a deep copy of the full state, sync log newest-first.
func (g *Service) Snapshot(ctx context.Context) (snap model.Snapshot, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelStateScopeName, "Gateway.Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotLocked()
}

// SnapshotFrame returns the current state encoded as a data_update frame,
// ready to hand a subscriber on connect.
func (g *Service) SnapshotFrame(ctx context.Context) (frame []byte, err error) {
	snap, err := g.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Event{Event: EventDataUpdate, Data: snap})
}

func (g *Service) snapshotLocked() (model.Snapshot, error) {
	snap, err := g.store.Snapshot()
	if err != nil {
		return model.Snapshot{}, err
	}

	snap.SyncLog = g.syncLog.EntriesNewestFirst()

	return snap, nil
}

func (g *Service) persistLocked(ctx context.Context) error {
	doc, err := g.store.Export()
	if err != nil {
		return err
	}

	doc.Data.SyncLog = g.syncLog.Entries()

	return g.driver.Save(ctx, doc)
}

// broadcastLocked pushes the post-commit snapshot to every subscriber. The
// snapshot always reflects the sync log as of this commit, including any
// persistence failure entry appended above.
func (g *Service) broadcastLocked(ctx context.Context) {
	snap, err := g.snapshotLocked()
	if err != nil {
		log.Error().Err(err).Msg("[Gateway] Failed to build broadcast snapshot")

		return
	}

	frame, err := json.Marshal(Event{Event: EventDataUpdate, Data: snap})
	if err != nil {
		log.Error().Err(err).Msg("[Gateway] Failed to encode broadcast frame")

		return
	}

	g.hub.Broadcast(frame)
}

func (g *Service) logEntry(entry model.SyncEntry) {
	event := log.Info()
	switch entry.Level {
	case model.SyncLevelWarn:
		event = log.Warn()
	case model.SyncLevelError:
		event = log.Error()
	}

	event.Str("level", string(entry.Level)).Msg("[Sync] " + entry.Message)
}
