package persist_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tide/infras/otel/mocks"
	"tide/internal/state/model"
	"tide/internal/state/persist"
)

func TestFileDriver_LoadMissingFile(t *testing.T) {
	driver := persist.NewFile(filepath.Join(t.TempDir(), "state.json"), mocks.NewOtel())

	_, ok, err := driver.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileDriver_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	driver := persist.NewFile(path, mocks.NewOtel())

	doc := model.Document{
		Data: model.Data{
			Rooms: []model.Room{
				{Base: model.Base{ID: 1}, Number: "101", Type: "Standard", Rate: 120, Status: model.RoomStatusVacant},
			},
			SyncLog: []model.SyncEntry{
				{Message: "Room 101 created", Level: model.SyncLevelInfo, Timestamp: "2026-01-02T15:04:05Z"},
			},
		},
		Counters: map[string]int64{model.CollectionRooms: 2},
	}

	require.NoError(t, driver.Save(context.Background(), doc))

	loaded, ok, err := driver.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, doc, loaded)
}

func TestFileDriver_SaveReplacesPreviousDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	driver := persist.NewFile(path, mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, driver.Save(ctx, model.Document{Counters: map[string]int64{model.CollectionGuests: 1}}))
	require.NoError(t, driver.Save(ctx, model.Document{Counters: map[string]int64{model.CollectionGuests: 7}}))

	loaded, ok, err := driver.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(7), loaded.Counters[model.CollectionGuests])

	// No temp files should survive a completed save.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileDriver_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	driver := persist.NewFile(path, mocks.NewOtel())

	_, _, err := driver.Load(context.Background())
	assert.Error(t, err)
}
