package dto

import (
	"tide/internal/state/model"
	"tide/shared/constant"
	"tide/shared/timezone"
)

type OrderItemRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gte=0"`
}

type CreateOrderRequest struct {
	RoomID int64              `json:"roomId" validate:"required,gt=0"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ToModel computes the order total from its items; clients never supply it.
func (r *CreateOrderRequest) ToModel() model.Order {
	items := make([]model.OrderItem, len(r.Items))
	total := 0.0

	for i, item := range r.Items {
		items[i] = model.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		total += item.Price * float64(item.Quantity)
	}

	return model.Order{
		Base:   model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		RoomID: r.RoomID,
		Items:  items,
		Total:  total,
		Status: model.OrderStatusPending,
	}
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required"`
}
