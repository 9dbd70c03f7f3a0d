package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tide/infras/otel/mocks"
	"tide/internal/domains/restaurant/dto"
	"tide/internal/domains/restaurant/service"
	"tide/internal/state/gateway"
	gatewayMocks "tide/internal/state/gateway/mocks"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/failure"
)

func newService(t *testing.T, st *store.Store) service.Restaurant {
	ctrl := gomock.NewController(t)

	mockGw := gatewayMocks.NewMockGateway(ctrl)
	mockGw.EXPECT().
		Commit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.SyncLevel, fn gateway.MutateFunc) error {
			_, err := fn(st)

			return err
		}).
		AnyTimes()

	return service.New(mockGw, mocks.NewOtel())
}

func TestRestaurant_CreateComputesTotal(t *testing.T) {
	st := store.New()
	svc := newService(t, st)

	room := st.Rooms.Insert(model.Room{Number: "101", Status: model.RoomStatusOccupied})

	order, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		RoomID: room.ID,
		Items: []dto.OrderItemRequest{
			{Name: "Jollof rice", Quantity: 2, Price: 3500},
			{Name: "Chapman", Quantity: 1, Price: 1500},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, 8500.0, order.Total)
	assert.Len(t, order.Items, 2)
}

func TestRestaurant_CreateUnknownRoom(t *testing.T) {
	svc := newService(t, store.New())

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		RoomID: 9,
		Items:  []dto.OrderItemRequest{{Name: "Tea", Quantity: 1, Price: 800}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestRestaurant_StatusForwardOnly(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	room := st.Rooms.Insert(model.Room{Number: "101"})
	order, err := svc.Create(ctx, dto.CreateOrderRequest{
		RoomID: room.ID,
		Items:  []dto.OrderItemRequest{{Name: "Tea", Quantity: 1, Price: 800}},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		to       model.OrderStatus
		wantCode int
	}{
		{name: "pending to preparing", to: model.OrderStatusPreparing},
		{name: "preparing to delivered skips ready", to: model.OrderStatusDelivered},
		{name: "delivered back to pending", to: model.OrderStatusPending, wantCode: 400},
		{name: "unknown status", to: "Burnt", wantCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := svc.UpdateStatus(ctx, order.ID, dto.UpdateOrderStatusRequest{Status: tt.to})
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
		})
	}
}

func TestRestaurant_Delete(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	room := st.Rooms.Insert(model.Room{Number: "101"})
	order, err := svc.Create(ctx, dto.CreateOrderRequest{
		RoomID: room.ID,
		Items:  []dto.OrderItemRequest{{Name: "Tea", Quantity: 1, Price: 800}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, order.ID))
	assert.Equal(t, 0, st.Orders.Len())

	err = svc.Delete(ctx, order.ID)
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
