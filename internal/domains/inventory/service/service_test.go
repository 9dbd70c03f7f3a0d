package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tide/infras/otel/mocks"
	"tide/internal/domains/inventory/dto"
	"tide/internal/domains/inventory/service"
	"tide/internal/state/gateway"
	gatewayMocks "tide/internal/state/gateway/mocks"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/failure"
)

// passthroughCommit runs the commit closure against the given store, the way
// the real gateway would, without persistence or broadcast.
func passthroughCommit(st *store.Store) func(context.Context, model.SyncLevel, gateway.MutateFunc) error {
	return func(_ context.Context, _ model.SyncLevel, fn gateway.MutateFunc) error {
		_, err := fn(st)

		return err
	}
}

func newService(t *testing.T, st *store.Store) service.Inventory {
	ctrl := gomock.NewController(t)

	mockGw := gatewayMocks.NewMockGateway(ctrl)
	mockGw.EXPECT().
		Commit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(passthroughCommit(st)).
		AnyTimes()

	return service.New(mockGw, mocks.NewOtel())
}

func TestInventory_CreateRoomType(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	created, err := svc.CreateRoomType(ctx, dto.CreateRoomTypeRequest{
		Name: "Deluxe", RateNGN: 50000, RateUSD: 80, Capacity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	_, err = svc.CreateRoomType(ctx, dto.CreateRoomTypeRequest{
		Name: "Deluxe", RateNGN: 60000, RateUSD: 90, Capacity: 3,
	})
	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
	assert.Equal(t, 1, st.RoomTypes.Len())
}

func TestInventory_RoomTypeRenameBlockedWhileInUse(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	rt, err := svc.CreateRoomType(ctx, dto.CreateRoomTypeRequest{
		Name: "Standard", RateNGN: 45000, RateUSD: 70, Capacity: 2,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(ctx, dto.CreateRoomRequest{Number: "101", Type: "Standard", Rate: 45000})
	require.NoError(t, err)

	newName := "Classic"
	_, err = svc.UpdateRoomType(ctx, rt.ID, dto.UpdateRoomTypeRequest{Name: &newName})
	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))

	// Rates stay editable while rooms reference the type.
	rate := 48000.0
	updated, err := svc.UpdateRoomType(ctx, rt.ID, dto.UpdateRoomTypeRequest{RateNGN: &rate})
	require.NoError(t, err)
	assert.Equal(t, 48000.0, updated.RateNGN)
	assert.Equal(t, "Standard", updated.Name)
}

func TestInventory_CreateRoom(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	_, err := svc.CreateRoomType(ctx, dto.CreateRoomTypeRequest{
		Name: "Deluxe", RateNGN: 50000, RateUSD: 80, Capacity: 2,
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		req      dto.CreateRoomRequest
		wantCode int
	}{
		{
			name: "defaults to vacant",
			req:  dto.CreateRoomRequest{Number: "101", Type: "Deluxe", Rate: 50000},
		},
		{
			name:     "duplicate number",
			req:      dto.CreateRoomRequest{Number: "101", Type: "Deluxe", Rate: 50000},
			wantCode: 409,
		},
		{
			name:     "unknown room type",
			req:      dto.CreateRoomRequest{Number: "102", Type: "Penthouse", Rate: 90000},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := svc.CreateRoom(ctx, tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.RoomStatusVacant, room.Status)
			assert.Nil(t, room.GuestID)
		})
	}
}

func TestInventory_AssignAndVacate(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	_, err := svc.CreateRoomType(ctx, dto.CreateRoomTypeRequest{
		Name: "Deluxe", RateNGN: 50000, RateUSD: 80, Capacity: 2,
	})
	require.NoError(t, err)

	room, err := svc.CreateRoom(ctx, dto.CreateRoomRequest{Number: "101", Type: "Deluxe", Rate: 50000})
	require.NoError(t, err)

	guest := st.Guests.Insert(model.Guest{Name: "Alice"})

	occupied, err := svc.AssignGuest(ctx, room.ID, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoomStatusOccupied, occupied.Status)
	require.NotNil(t, occupied.GuestID)
	assert.Equal(t, guest.ID, *occupied.GuestID)

	_, err = svc.AssignGuest(ctx, room.ID, int64(99))
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))

	vacated, err := svc.VacateRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoomStatusVacant, vacated.Status)
	assert.Nil(t, vacated.GuestID)
}

func TestInventory_UpdateRoomStatusTransition(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	_, err := svc.CreateRoomType(ctx, dto.CreateRoomTypeRequest{
		Name: "Deluxe", RateNGN: 50000, RateUSD: 80, Capacity: 2,
	})
	require.NoError(t, err)

	room, err := svc.CreateRoom(ctx, dto.CreateRoomRequest{Number: "101", Type: "Deluxe", Rate: 50000})
	require.NoError(t, err)

	// Vacant cannot go straight to Cleaning.
	cleaning := model.RoomStatusCleaning
	_, err = svc.UpdateRoom(ctx, room.ID, dto.UpdateRoomRequest{Status: &cleaning})
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))

	dirty := model.RoomStatusDirty
	updated, err := svc.UpdateRoom(ctx, room.ID, dto.UpdateRoomRequest{Status: &dirty})
	require.NoError(t, err)
	assert.Equal(t, model.RoomStatusDirty, updated.Status)
}

func TestInventory_DeleteRoomTypeInUse(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	rt, err := svc.CreateRoomType(ctx, dto.CreateRoomTypeRequest{
		Name: "Deluxe", RateNGN: 50000, RateUSD: 80, Capacity: 2,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(ctx, dto.CreateRoomRequest{Number: "101", Type: "Deluxe", Rate: 50000})
	require.NoError(t, err)

	err = svc.DeleteRoomType(ctx, rt.ID)
	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
	assert.Equal(t, 1, st.RoomTypes.Len())
}
