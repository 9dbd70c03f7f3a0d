package model

// Setting keys with a dedicated place in the snapshot.
const (
	SettingKeyTaxSettings = "tax_settings"
	SettingKeyStopSell    = "stop_sell"
)

// TaxSettings is the payload stored under the "tax_settings" setting key.
type TaxSettings struct {
	IsEnabled bool    `json:"isEnabled"`
	Rate      float64 `json:"rate"`
}

func DefaultTaxSettings() TaxSettings {
	return TaxSettings{IsEnabled: true, Rate: 7.5}
}

// StopSell maps "<date>_<roomType>" keys to a closed-for-sale flag. It is the
// payload stored under the "stop_sell" setting key.
type StopSell map[string]bool

// SyncEntry is one operational event in the bounded sync log.
type SyncEntry struct {
	Timestamp string    `json:"timestamp"`
	Message   string    `json:"message"`
	Level     SyncLevel `json:"level"`
}

// Data holds every entity collection in insertion order.
type Data struct {
	RoomTypes           []RoomType           `json:"roomTypes"`
	Rooms               []Room               `json:"rooms"`
	Guests              []Guest              `json:"guests"`
	Reservations        []Reservation        `json:"reservations"`
	Transactions        []Transaction        `json:"transactions"`
	LoyaltyTransactions []LoyaltyTransaction `json:"loyaltyTransactions"`
	WalkInTransactions  []WalkInTransaction  `json:"walkInTransactions"`
	Orders              []Order              `json:"orders"`
	Employees           []Employee           `json:"employees"`
	MaintenanceRequests []MaintenanceRequest `json:"maintenanceRequests"`
	Settings            []Setting            `json:"settings"`
	SyncLog             []SyncEntry          `json:"syncLog"`
}

// Document is the persisted artifact: the full data set plus the per-type
// next-id counters. It is loaded whole at startup and rewritten whole on
// every committed mutation.
type Document struct {
	Data     Data             `json:"data"`
	Counters map[string]int64 `json:"counters"`
}

// Snapshot is the full, internally consistent state pushed to subscribers and
// served by the data endpoint. Settings entries are projected into their
// named keys; the sync log is newest-first.
type Snapshot struct {
	RoomTypes           []RoomType           `json:"roomTypes"`
	Rooms               []Room               `json:"rooms"`
	Guests              []Guest              `json:"guests"`
	Reservations        []Reservation        `json:"reservations"`
	Transactions        []Transaction        `json:"transactions"`
	LoyaltyTransactions []LoyaltyTransaction `json:"loyaltyTransactions"`
	WalkInTransactions  []WalkInTransaction  `json:"walkInTransactions"`
	Orders              []Order              `json:"orders"`
	Employees           []Employee           `json:"employees"`
	MaintenanceRequests []MaintenanceRequest `json:"maintenanceRequests"`
	SyncLog             []SyncEntry          `json:"syncLog"`
	TaxSettings         TaxSettings          `json:"taxSettings"`
	StopSell            StopSell             `json:"stopSell"`
}

// Collection names, used as counter keys in the persisted document.
const (
	CollectionRoomTypes           = "roomTypes"
	CollectionRooms               = "rooms"
	CollectionGuests              = "guests"
	CollectionReservations        = "reservations"
	CollectionTransactions        = "transactions"
	CollectionLoyaltyTransactions = "loyaltyTransactions"
	CollectionWalkInTransactions  = "walkInTransactions"
	CollectionOrders              = "orders"
	CollectionEmployees           = "employees"
	CollectionMaintenanceRequests = "maintenanceRequests"
	CollectionSettings            = "settings"
)
