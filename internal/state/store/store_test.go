package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tide/internal/state/model"
	"tide/internal/state/store"
)

func TestCollection_IDsNeverReused(t *testing.T) {
	s := store.New()

	first := s.Guests.Insert(model.Guest{Name: "Alice"})
	second := s.Guests.Insert(model.Guest{Name: "Bob"})
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	require.True(t, s.Guests.Delete(second.ID))

	third := s.Guests.Insert(model.Guest{Name: "Carol"})
	assert.Equal(t, int64(3), third.ID, "ids must not be reused after a delete")
}

func TestCollection_UpdatePatchesInPlace(t *testing.T) {
	s := store.New()
	room := s.Rooms.Insert(model.Room{Number: "101", Type: "Standard", Rate: 100, Status: model.RoomStatusVacant})

	updated, ok := s.Rooms.Update(room.ID, func(r *model.Room) {
		r.Status = model.RoomStatusOccupied
		r.Rate = 150
	})
	require.True(t, ok)
	assert.Equal(t, model.RoomStatusOccupied, updated.Status)
	assert.Equal(t, float64(150), updated.Rate)
	assert.Equal(t, "101", updated.Number)

	stored, ok := s.Rooms.Get(room.ID)
	require.True(t, ok)
	assert.Equal(t, updated, stored)
}

func TestCollection_UpdateUnknownID(t *testing.T) {
	s := store.New()

	_, ok := s.Rooms.Update(42, func(r *model.Room) { r.Rate = 1 })
	assert.False(t, ok)
}

func TestStore_DeleteGuestCascade(t *testing.T) {
	s := store.New()

	keep := s.Guests.Insert(model.Guest{Name: "Keep"})
	gone := s.Guests.Insert(model.Guest{Name: "Gone"})

	s.Transactions.Insert(model.Transaction{GuestID: keep.ID, Amount: 10})
	s.Transactions.Insert(model.Transaction{GuestID: gone.ID, Amount: 20})
	s.LoyaltyTransactions.Insert(model.LoyaltyTransaction{GuestID: gone.ID, Points: 50})

	guestID := gone.ID
	room := s.Rooms.Insert(model.Room{Number: "201", Status: model.RoomStatusOccupied, GuestID: &guestID})

	require.True(t, s.DeleteGuestCascade(gone.ID))

	assert.Equal(t, 1, s.Guests.Len())
	assert.Equal(t, 1, s.Transactions.Len())
	assert.Equal(t, 0, s.LoyaltyTransactions.Len())

	remaining, ok := s.Transactions.Get(1)
	require.True(t, ok)
	assert.Equal(t, keep.ID, remaining.GuestID)

	// Deleting a guest does not vacate their room.
	stored, ok := s.Rooms.Get(room.ID)
	require.True(t, ok)
	require.NotNil(t, stored.GuestID)
	assert.Equal(t, gone.ID, *stored.GuestID)

	assert.False(t, s.DeleteGuestCascade(gone.ID))
}

func TestStore_ClearPreservesRoomTypesAndSettings(t *testing.T) {
	s := store.New()

	s.RoomTypes.Insert(model.RoomType{Name: "Deluxe", RateNGN: 85000, RateUSD: 200, Capacity: 2})
	s.UpsertSetting(model.SettingKeyTaxSettings, json.RawMessage(`{"isEnabled":false,"rate":10}`))
	s.Rooms.Insert(model.Room{Number: "101"})
	s.Guests.Insert(model.Guest{Name: "Alice"})
	s.Orders.Insert(model.Order{RoomID: 4})

	s.Clear()

	assert.Equal(t, 1, s.RoomTypes.Len())
	assert.Equal(t, 1, s.Settings.Len())
	assert.Equal(t, 0, s.Rooms.Len())
	assert.Equal(t, 0, s.Guests.Len())
	assert.Equal(t, 0, s.Orders.Len())

	// Counters continue past the pre-clear high-water mark.
	room := s.Rooms.Insert(model.Room{Number: "102"})
	assert.Equal(t, int64(2), room.ID)
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	s := store.New()

	s.RoomTypes.Insert(model.RoomType{Name: "Standard", RateNGN: 45000, RateUSD: 100, Capacity: 2})
	s.Rooms.Insert(model.Room{Number: "101", Type: "Standard", Rate: 100, Status: model.RoomStatusVacant})
	guest := s.Guests.Insert(model.Guest{Name: "Alice", LoyaltyPoints: 120, LoyaltyTier: model.LoyaltyTierGold})
	s.Transactions.Insert(model.Transaction{GuestID: guest.ID, Amount: 99.5, Description: "Room charge"})
	s.UpsertSetting(model.SettingKeyStopSell, json.RawMessage(`{"2026-09-01_Standard":true}`))
	s.Guests.Delete(guest.ID)

	doc, err := s.Export()
	require.NoError(t, err)

	restored := store.New()
	restored.Import(doc)

	docAgain, err := restored.Export()
	require.NoError(t, err)
	assert.Equal(t, doc, docAgain)

	// Counters survive the round trip, including tombstoned ids.
	next := restored.Guests.Insert(model.Guest{Name: "Bob"})
	assert.Equal(t, int64(2), next.ID)
}

func TestStore_ImportCorrectsLowCounter(t *testing.T) {
	doc := model.Document{
		Data: model.Data{
			Rooms: []model.Room{
				{Base: model.Base{ID: 5}, Number: "105"},
			},
		},
		Counters: map[string]int64{model.CollectionRooms: 2},
	}

	s := store.New()
	s.Import(doc)

	room := s.Rooms.Insert(model.Room{Number: "106"})
	assert.Equal(t, int64(6), room.ID)
}

func TestStore_ExportIsDeepCopy(t *testing.T) {
	s := store.New()
	s.Guests.Insert(model.Guest{Name: "Alice"})

	doc, err := s.Export()
	require.NoError(t, err)

	doc.Data.Guests[0].Name = "Mallory"

	stored, ok := s.Guests.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Alice", stored.Name)
}

func TestStore_SnapshotDefaults(t *testing.T) {
	s := store.New()

	snap, err := s.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, model.DefaultTaxSettings(), snap.TaxSettings)
	assert.Equal(t, model.StopSell{}, snap.StopSell)
}

func TestStore_SnapshotProjectsSettings(t *testing.T) {
	s := store.New()

	s.UpsertSetting(model.SettingKeyTaxSettings, json.RawMessage(`{"isEnabled":false,"rate":12.5}`))
	s.UpsertSetting(model.SettingKeyStopSell, json.RawMessage(`{"2026-09-01_Deluxe":true}`))

	snap, err := s.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, model.TaxSettings{IsEnabled: false, Rate: 12.5}, snap.TaxSettings)
	assert.Equal(t, model.StopSell{"2026-09-01_Deluxe": true}, snap.StopSell)
}

func TestStore_SettingValueMissing(t *testing.T) {
	s := store.New()

	var tax model.TaxSettings
	ok, err := s.SettingValue(model.SettingKeyTaxSettings, &tax)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_UpsertSettingReplacesValue(t *testing.T) {
	s := store.New()

	created := s.UpsertSetting("theme", json.RawMessage(`"dark"`))
	updated := s.UpsertSetting("theme", json.RawMessage(`"light"`))

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1, s.Settings.Len())

	var theme string
	ok, err := s.SettingValue("theme", &theme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", theme)
}
