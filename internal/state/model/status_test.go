package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tide/internal/state/model"
)

func TestRoomStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from model.RoomStatus
		to   model.RoomStatus
		want bool
	}{
		{name: "vacant to occupied", from: model.RoomStatusVacant, to: model.RoomStatusOccupied, want: true},
		{name: "occupied to dirty", from: model.RoomStatusOccupied, to: model.RoomStatusDirty, want: true},
		{name: "occupied to vacant", from: model.RoomStatusOccupied, to: model.RoomStatusVacant, want: true},
		{name: "dirty to cleaning", from: model.RoomStatusDirty, to: model.RoomStatusCleaning, want: true},
		{name: "cleaning to vacant", from: model.RoomStatusCleaning, to: model.RoomStatusVacant, want: true},
		{name: "occupied to out of order", from: model.RoomStatusOccupied, to: model.RoomStatusOutOfOrder, want: false},
		{name: "vacant to cleaning", from: model.RoomStatusVacant, to: model.RoomStatusCleaning, want: false},
		{name: "same state", from: model.RoomStatusDirty, to: model.RoomStatusDirty, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestOrderStatusForwardOnly(t *testing.T) {
	assert.True(t, model.OrderStatusPending.CanTransition(model.OrderStatusPreparing))
	assert.True(t, model.OrderStatusPending.CanTransition(model.OrderStatusDelivered))
	assert.True(t, model.OrderStatusReady.CanTransition(model.OrderStatusReady))
	assert.False(t, model.OrderStatusDelivered.CanTransition(model.OrderStatusPending))
	assert.False(t, model.OrderStatusReady.CanTransition(model.OrderStatusPreparing))
	assert.False(t, model.OrderStatusPending.CanTransition(model.OrderStatus("Cancelled")))
}

func TestMaintenanceStatusForwardOnly(t *testing.T) {
	assert.True(t, model.MaintenanceStatusReported.CanTransition(model.MaintenanceStatusInProgress))
	assert.True(t, model.MaintenanceStatusInProgress.CanTransition(model.MaintenanceStatusCompleted))
	assert.False(t, model.MaintenanceStatusCompleted.CanTransition(model.MaintenanceStatusReported))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, model.RoomStatusOutOfOrder.Valid())
	assert.False(t, model.RoomStatus("Closed").Valid())
	assert.True(t, model.LoyaltyTierPlatinum.Valid())
	assert.False(t, model.LoyaltyTier("Diamond").Valid())
	assert.True(t, model.MaintenancePriorityHigh.Valid())
	assert.False(t, model.MaintenancePriority("Urgent").Valid())
}
