// Package synclog keeps a bounded, insertion-ordered ring of operational
// events for diagnostics. The newest entries evict the oldest once the
// capacity is reached.
package synclog

import (
	"tide/internal/state/model"
	"tide/shared/constant"
	"tide/shared/timezone"
)

const DefaultCapacity = 50

type Log struct {
	entries  []model.SyncEntry
	capacity int
}

func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Log{capacity: capacity}
}

// Append records an event, timestamped now, evicting the oldest entry when
// the log is full.
func (l *Log) Append(level model.SyncLevel, message string) model.SyncEntry {
	entry := model.SyncEntry{
		Timestamp: timezone.Format(timezone.Now(), constant.DateFormat),
		Message:   message,
		Level:     level,
	}

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}

	return entry
}

// Entries returns the log oldest-first.
func (l *Log) Entries() []model.SyncEntry {
	out := make([]model.SyncEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

// EntriesNewestFirst returns the log newest-first, the order clients render.
func (l *Log) EntriesNewestFirst() []model.SyncEntry {
	out := make([]model.SyncEntry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i])
	}

	return out
}

// Replace reloads the log from persisted entries, oldest-first, trimming to
// capacity.
func (l *Log) Replace(entries []model.SyncEntry) {
	if len(entries) > l.capacity {
		entries = entries[len(entries)-l.capacity:]
	}

	l.entries = append([]model.SyncEntry(nil), entries...)
}

func (l *Log) Len() int {
	return len(l.entries)
}
