package model

// RoomStatus is the housekeeping lifecycle state of a room.
type RoomStatus string

const (
	RoomStatusVacant     RoomStatus = "Vacant"
	RoomStatusOccupied   RoomStatus = "Occupied"
	RoomStatusDirty      RoomStatus = "Dirty"
	RoomStatusCleaning   RoomStatus = "Cleaning"
	RoomStatusOutOfOrder RoomStatus = "Out of Order"
)

// roomTransitions is the room lifecycle. A room can always be taken out of
// order from a non-occupied state; an occupied room must be checked out first.
var roomTransitions = map[RoomStatus][]RoomStatus{
	RoomStatusVacant:     {RoomStatusOccupied, RoomStatusDirty, RoomStatusOutOfOrder},
	RoomStatusOccupied:   {RoomStatusDirty, RoomStatusVacant},
	RoomStatusDirty:      {RoomStatusCleaning, RoomStatusOutOfOrder},
	RoomStatusCleaning:   {RoomStatusVacant, RoomStatusDirty, RoomStatusOutOfOrder},
	RoomStatusOutOfOrder: {RoomStatusVacant, RoomStatusDirty},
}

func (s RoomStatus) Valid() bool {
	_, ok := roomTransitions[s]

	return ok
}

func (s RoomStatus) CanTransition(to RoomStatus) bool {
	if s == to {
		return true
	}

	for _, next := range roomTransitions[s] {
		if next == to {
			return true
		}
	}

	return false
}

// OrderStatus is the forward-only room-service order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusDelivered OrderStatus = "Delivered"
)

var orderStatusOrder = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPreparing: 1,
	OrderStatusReady:     2,
	OrderStatusDelivered: 3,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusOrder[s]

	return ok
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	from, okFrom := orderStatusOrder[s]
	next, okTo := orderStatusOrder[to]

	return okFrom && okTo && next >= from
}

// MaintenanceStatus is the forward-only maintenance request lifecycle.
type MaintenanceStatus string

const (
	MaintenanceStatusReported   MaintenanceStatus = "Reported"
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

var maintenanceStatusOrder = map[MaintenanceStatus]int{
	MaintenanceStatusReported:   0,
	MaintenanceStatusInProgress: 1,
	MaintenanceStatusCompleted:  2,
}

func (s MaintenanceStatus) Valid() bool {
	_, ok := maintenanceStatusOrder[s]

	return ok
}

func (s MaintenanceStatus) CanTransition(to MaintenanceStatus) bool {
	from, okFrom := maintenanceStatusOrder[s]
	next, okTo := maintenanceStatusOrder[to]

	return okFrom && okTo && next >= from
}

// MaintenancePriority classifies maintenance requests.
type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "Low"
	MaintenancePriorityMedium MaintenancePriority = "Medium"
	MaintenancePriorityHigh   MaintenancePriority = "High"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh:
		return true
	default:
		return false
	}
}

// LoyaltyTier is the guest loyalty tier. It is set explicitly and is not
// derived from the guest's loyalty points.
type LoyaltyTier string

const (
	LoyaltyTierBronze   LoyaltyTier = "Bronze"
	LoyaltyTierSilver   LoyaltyTier = "Silver"
	LoyaltyTierGold     LoyaltyTier = "Gold"
	LoyaltyTierPlatinum LoyaltyTier = "Platinum"
)

func (t LoyaltyTier) Valid() bool {
	switch t {
	case LoyaltyTierBronze, LoyaltyTierSilver, LoyaltyTierGold, LoyaltyTierPlatinum:
		return true
	default:
		return false
	}
}

// SyncLevel is the severity of a sync log entry.
type SyncLevel string

const (
	SyncLevelInfo  SyncLevel = "info"
	SyncLevelWarn  SyncLevel = "warn"
	SyncLevelError SyncLevel = "error"
)
