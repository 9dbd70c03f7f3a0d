package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tide/internal/domains/restaurant/dto"
	"tide/internal/state/model"
)

func TestCreateOrderRequest_ToModel(t *testing.T) {
	req := dto.CreateOrderRequest{
		RoomID: 7,
		Items: []dto.OrderItemRequest{
			{Name: "Club sandwich", Quantity: 2, Price: 4500},
			{Name: "Fresh juice", Quantity: 3, Price: 1200},
		},
	}

	order := req.ToModel()

	assert.Equal(t, int64(7), order.RoomID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, 12600.0, order.Total, "total is derived from items, never taken from the client")
	assert.Len(t, order.Items, 2)
	assert.NotEmpty(t, order.CreatedAt)
}
