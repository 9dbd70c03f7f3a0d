package store

import (
	"encoding/json"
	"fmt"

	"tide/internal/state/model"
)

// Store is the in-memory source of truth for every hotel entity. It performs
// no locking of its own: the mutation gateway serializes all access.
type Store struct {
	RoomTypes           Collection[model.RoomType, *model.RoomType]
	Rooms               Collection[model.Room, *model.Room]
	Guests              Collection[model.Guest, *model.Guest]
	Reservations        Collection[model.Reservation, *model.Reservation]
	Transactions        Collection[model.Transaction, *model.Transaction]
	LoyaltyTransactions Collection[model.LoyaltyTransaction, *model.LoyaltyTransaction]
	WalkInTransactions  Collection[model.WalkInTransaction, *model.WalkInTransaction]
	Orders              Collection[model.Order, *model.Order]
	Employees           Collection[model.Employee, *model.Employee]
	MaintenanceRequests Collection[model.MaintenanceRequest, *model.MaintenanceRequest]
	Settings            Collection[model.Setting, *model.Setting]
}

func New() *Store {
	return &Store{}
}

// DeleteGuestCascade removes a guest together with every transaction and
// loyalty transaction owned by it. Rooms referencing the guest are not
// vacated; vacating is an explicit room operation.
func (s *Store) DeleteGuestCascade(id int64) bool {
	if !s.Guests.Delete(id) {
		return false
	}

	s.Transactions.DeleteWhere(func(t model.Transaction) bool { return t.GuestID == id })
	s.LoyaltyTransactions.DeleteWhere(func(t model.LoyaltyTransaction) bool { return t.GuestID == id })

	return true
}

// Clear resets every transactional collection. Room types and settings are
// preserved; all id counters keep their high-water marks.
func (s *Store) Clear() {
	s.Rooms.Reset()
	s.Guests.Reset()
	s.Reservations.Reset()
	s.Transactions.Reset()
	s.LoyaltyTransactions.Reset()
	s.WalkInTransactions.Reset()
	s.Orders.Reset()
	s.Employees.Reset()
	s.MaintenanceRequests.Reset()
}

// SettingValue unmarshals the payload of the named setting into out,
// reporting whether the setting exists.
func (s *Store) SettingValue(key string, out any) (bool, error) {
	setting, ok := s.Settings.Find(func(st model.Setting) bool { return st.Key == key })
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(setting.Value, out); err != nil {
		return true, fmt.Errorf("failed to unmarshal setting %q: %w", key, err)
	}

	return true, nil
}

// UpsertSetting stores the payload under the named setting key, creating the
// entry on first write.
func (s *Store) UpsertSetting(key string, value json.RawMessage) model.Setting {
	if setting, ok := s.Settings.Find(func(st model.Setting) bool { return st.Key == key }); ok {
		updated, _ := s.Settings.Update(setting.ID, func(st *model.Setting) {
			st.Value = value
		})

		return updated
	}

	return s.Settings.Insert(model.Setting{Key: key, Value: value})
}

// Export deep-copies the full store into the persisted document layout.
func (s *Store) Export() (model.Document, error) {
	doc := model.Document{
		Data: model.Data{
			RoomTypes:           s.RoomTypes.Items(),
			Rooms:               s.Rooms.Items(),
			Guests:              s.Guests.Items(),
			Reservations:        s.Reservations.Items(),
			Transactions:        s.Transactions.Items(),
			LoyaltyTransactions: s.LoyaltyTransactions.Items(),
			WalkInTransactions:  s.WalkInTransactions.Items(),
			Orders:              s.Orders.Items(),
			Employees:           s.Employees.Items(),
			MaintenanceRequests: s.MaintenanceRequests.Items(),
			Settings:            s.Settings.Items(),
		},
		Counters: map[string]int64{
			model.CollectionRoomTypes:           s.RoomTypes.NextID(),
			model.CollectionRooms:               s.Rooms.NextID(),
			model.CollectionGuests:              s.Guests.NextID(),
			model.CollectionReservations:        s.Reservations.NextID(),
			model.CollectionTransactions:        s.Transactions.NextID(),
			model.CollectionLoyaltyTransactions: s.LoyaltyTransactions.NextID(),
			model.CollectionWalkInTransactions:  s.WalkInTransactions.NextID(),
			model.CollectionOrders:              s.Orders.NextID(),
			model.CollectionEmployees:           s.Employees.NextID(),
			model.CollectionMaintenanceRequests: s.MaintenanceRequests.NextID(),
			model.CollectionSettings:            s.Settings.NextID(),
		},
	}

	return deepCopy(doc)
}

// Import replaces the store contents from a persisted document.
func (s *Store) Import(doc model.Document) {
	counter := func(key string) int64 { return doc.Counters[key] }

	s.RoomTypes.load(doc.Data.RoomTypes, counter(model.CollectionRoomTypes))
	s.Rooms.load(doc.Data.Rooms, counter(model.CollectionRooms))
	s.Guests.load(doc.Data.Guests, counter(model.CollectionGuests))
	s.Reservations.load(doc.Data.Reservations, counter(model.CollectionReservations))
	s.Transactions.load(doc.Data.Transactions, counter(model.CollectionTransactions))
	s.LoyaltyTransactions.load(doc.Data.LoyaltyTransactions, counter(model.CollectionLoyaltyTransactions))
	s.WalkInTransactions.load(doc.Data.WalkInTransactions, counter(model.CollectionWalkInTransactions))
	s.Orders.load(doc.Data.Orders, counter(model.CollectionOrders))
	s.Employees.load(doc.Data.Employees, counter(model.CollectionEmployees))
	s.MaintenanceRequests.load(doc.Data.MaintenanceRequests, counter(model.CollectionMaintenanceRequests))
	s.Settings.load(doc.Data.Settings, counter(model.CollectionSettings))
}

// Snapshot deep-copies the store into the client-facing snapshot layout.
// Settings entries are projected into taxSettings and stopSell with their
// documented defaults when absent.
func (s *Store) Snapshot() (model.Snapshot, error) {
	taxSettings := model.DefaultTaxSettings()
	if _, err := s.SettingValue(model.SettingKeyTaxSettings, &taxSettings); err != nil {
		return model.Snapshot{}, err
	}

	stopSell := model.StopSell{}
	if _, err := s.SettingValue(model.SettingKeyStopSell, &stopSell); err != nil {
		return model.Snapshot{}, err
	}

	snap := model.Snapshot{
		RoomTypes:           s.RoomTypes.Items(),
		Rooms:               s.Rooms.Items(),
		Guests:              s.Guests.Items(),
		Reservations:        s.Reservations.Items(),
		Transactions:        s.Transactions.Items(),
		LoyaltyTransactions: s.LoyaltyTransactions.Items(),
		WalkInTransactions:  s.WalkInTransactions.Items(),
		Orders:              s.Orders.Items(),
		Employees:           s.Employees.Items(),
		MaintenanceRequests: s.MaintenanceRequests.Items(),
		TaxSettings:         taxSettings,
		StopSell:            stopSell,
	}

	return deepCopy(snap)
}

// deepCopy produces a fully independent copy through a JSON round trip, so
// callers never share slices or maps with the live store.
func deepCopy[T any](in T) (T, error) {
	var out T

	raw, err := json.Marshal(in)
	if err != nil {
		return out, fmt.Errorf("failed to serialize state: %w", err)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to copy state: %w", err)
	}

	return out, nil
}
