package gateway_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tide/config"
	"tide/infras/otel/mocks"
	"tide/internal/state/gateway"
	gatewayMocks "tide/internal/state/gateway/mocks"
	hubMocks "tide/internal/state/hub/mocks"
	"tide/internal/state/model"
	persistMocks "tide/internal/state/persist/mocks"
	"tide/internal/state/store"
	"tide/shared/failure"
)

type fixture struct {
	gateway   *gateway.Service
	store     *store.Store
	driver    *persistMocks.MockDriver
	hub       *hubMocks.MockBroadcaster
	publisher *gatewayMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.State.SyncLogLimit = 50

	st := store.New()
	driver := persistMocks.NewMockDriver(ctrl)
	broadcaster := hubMocks.NewMockBroadcaster(ctrl)
	publisher := gatewayMocks.NewMockPublisher(ctrl)

	return fixture{
		gateway:   gateway.New(cfg, st, driver, broadcaster, publisher, mocks.NewOtel()),
		store:     st,
		driver:    driver,
		hub:       broadcaster,
		publisher: publisher,
	}
}

func TestGateway_CommitPersistsAndBroadcasts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var savedDoc model.Document
	f.driver.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, doc model.Document) { savedDoc = doc }).
		Return(nil)

	var frame []byte
	f.hub.EXPECT().
		Broadcast(gomock.Any()).
		Do(func(payload []byte) { frame = payload })

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	err := f.gateway.Commit(ctx, model.SyncLevelInfo, func(s *store.Store) (string, error) {
		room := s.Rooms.Insert(model.Room{Number: "101", Status: model.RoomStatusVacant})

		return "Room " + room.Number + " created", nil
	})
	require.NoError(t, err)

	require.Len(t, savedDoc.Data.Rooms, 1)
	require.Len(t, savedDoc.Data.SyncLog, 1)
	assert.Equal(t, "Room 101 created", savedDoc.Data.SyncLog[0].Message)
	assert.Equal(t, model.SyncLevelInfo, savedDoc.Data.SyncLog[0].Level)

	var event gateway.Event
	require.NoError(t, json.Unmarshal(frame, &event))
	assert.Equal(t, gateway.EventDataUpdate, event.Event)
	require.Len(t, event.Data.Rooms, 1)
	assert.Equal(t, "101", event.Data.Rooms[0].Number)
	require.Len(t, event.Data.SyncLog, 1)
	assert.NotEmpty(t, event.Data.SyncLog[0].Timestamp)
}

func TestGateway_RejectedMutationProducesNothing(t *testing.T) {
	f := newFixture(t)

	// No Save, Broadcast or Publish expectations: any call fails the test.
	wantErr := failure.BadRequestFromString("room number already in use")

	err := f.gateway.Commit(context.Background(), model.SyncLevelInfo, func(s *store.Store) (string, error) {
		s.Rooms.Insert(model.Room{Number: "101"})

		return "", wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// The closure inserted before failing; commits must validate first, but
	// even then nothing is logged or broadcast.
	snap, snapErr := f.gateway.Snapshot(context.Background())
	require.NoError(t, snapErr)
	assert.Empty(t, snap.SyncLog)
}

func TestGateway_PersistFailureKeepsMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.driver.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	var frame []byte
	f.hub.EXPECT().
		Broadcast(gomock.Any()).
		Do(func(payload []byte) { frame = payload })

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	err := f.gateway.Commit(ctx, model.SyncLevelInfo, func(s *store.Store) (string, error) {
		s.Guests.Insert(model.Guest{Name: "Alice"})

		return "Guest Alice checked in", nil
	})
	require.NoError(t, err, "a persistence failure must not fail the commit")

	assert.Equal(t, 1, f.store.Guests.Len())

	var event gateway.Event
	require.NoError(t, json.Unmarshal(frame, &event))

	// Newest-first: the persistence error entry precedes the commit entry.
	require.Len(t, event.Data.SyncLog, 2)
	assert.Equal(t, model.SyncLevelError, event.Data.SyncLog[0].Level)
	assert.Equal(t, "Guest Alice checked in", event.Data.SyncLog[1].Message)
}

func TestGateway_StartRestoresState(t *testing.T) {
	f := newFixture(t)

	doc := model.Document{
		Data: model.Data{
			Rooms: []model.Room{{Base: model.Base{ID: 3}, Number: "103"}},
			SyncLog: []model.SyncEntry{
				{Message: "older", Level: model.SyncLevelInfo, Timestamp: "2026-01-01T00:00:00Z"},
				{Message: "newer", Level: model.SyncLevelWarn, Timestamp: "2026-01-02T00:00:00Z"},
			},
		},
		Counters: map[string]int64{model.CollectionRooms: 4},
	}

	f.driver.EXPECT().Load(gomock.Any()).Return(doc, true, nil)

	require.NoError(t, f.gateway.Start(context.Background()))

	assert.Equal(t, 1, f.store.Rooms.Len())

	snap, err := f.gateway.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.SyncLog, 2)
	assert.Equal(t, "newer", snap.SyncLog[0].Message)
	assert.Equal(t, "older", snap.SyncLog[1].Message)
}

func TestGateway_StartFirstBoot(t *testing.T) {
	f := newFixture(t)

	f.driver.EXPECT().Load(gomock.Any()).Return(model.Document{}, false, nil)

	require.NoError(t, f.gateway.Start(context.Background()))
	assert.Equal(t, 0, f.store.Rooms.Len())
}

func TestGateway_StartLoadErrorFallsBackToEmpty(t *testing.T) {
	f := newFixture(t)

	f.driver.EXPECT().Load(gomock.Any()).Return(model.Document{}, false, assert.AnError)

	require.NoError(t, f.gateway.Start(context.Background()))

	snap, err := f.gateway.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Rooms)
	require.Len(t, snap.SyncLog, 1)
	assert.Equal(t, model.SyncLevelError, snap.SyncLog[0].Level)
}

func TestGateway_SnapshotFrame(t *testing.T) {
	f := newFixture(t)

	frame, err := f.gateway.SnapshotFrame(context.Background())
	require.NoError(t, err)

	var event gateway.Event
	require.NoError(t, json.Unmarshal(frame, &event))
	assert.Equal(t, gateway.EventDataUpdate, event.Event)
	assert.Equal(t, model.DefaultTaxSettings(), event.Data.TaxSettings)
}
