package synclog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tide/internal/state/model"
	"tide/internal/state/synclog"
)

func TestAppendBounded(t *testing.T) {
	log := synclog.New(5)

	for i := range 12 {
		log.Append(model.SyncLevelInfo, fmt.Sprintf("event %d", i))
	}

	assert.Equal(t, 5, log.Len())

	entries := log.Entries()
	assert.Equal(t, "event 7", entries[0].Message)
	assert.Equal(t, "event 11", entries[4].Message)
}

func TestEntriesNewestFirst(t *testing.T) {
	log := synclog.New(10)
	log.Append(model.SyncLevelInfo, "first")
	log.Append(model.SyncLevelWarn, "second")
	log.Append(model.SyncLevelError, "third")

	newest := log.EntriesNewestFirst()

	assert.Equal(t, "third", newest[0].Message)
	assert.Equal(t, model.SyncLevelError, newest[0].Level)
	assert.Equal(t, "first", newest[2].Message)
}

func TestEntriesReturnsCopy(t *testing.T) {
	log := synclog.New(10)
	log.Append(model.SyncLevelInfo, "event")

	entries := log.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "event", log.Entries()[0].Message)
}

func TestReplaceTrimsToCapacity(t *testing.T) {
	log := synclog.New(3)

	persisted := make([]model.SyncEntry, 0, 6)
	for i := range 6 {
		persisted = append(persisted, model.SyncEntry{Message: fmt.Sprintf("event %d", i), Level: model.SyncLevelInfo})
	}

	log.Replace(persisted)

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, "event 3", log.Entries()[0].Message)
}

func TestZeroCapacityUsesDefault(t *testing.T) {
	log := synclog.New(0)

	for i := range synclog.DefaultCapacity + 10 {
		log.Append(model.SyncLevelInfo, fmt.Sprintf("event %d", i))
	}

	assert.Equal(t, synclog.DefaultCapacity, log.Len())
}
