package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tide/infras/otel"
	"tide/internal/domains/restaurant/dto"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/shared/failure"
)

// Restaurant manages room-service orders and their forward-only lifecycle.
type Restaurant interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (model.Order, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateOrderStatusRequest) (model.Order, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gw gateway.Gateway, ot otel.Otel) Restaurant {
	return &serviceImpl{
		gateway: gw,
		otel:    ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		room, ok := st.Rooms.Get(req.RoomID)
		if !ok {
			return "", failure.NotFound("room")
		}

		res = st.Orders.Insert(req.ToModel())

		return fmt.Sprintf("Order of %.2f placed for room %s", res.Total, room.Number), nil
	})

	return res, err
}

// UpdateStatus advances the order lifecycle. Moving backwards is rejected.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateOrderStatusRequest) (res model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateOrderStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid order status %q", req.Status))
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current, ok := st.Orders.Get(id)
		if !ok {
			return "", failure.NotFound("order")
		}

		if !current.Status.CanTransition(req.Status) {
			return "", failure.BadRequestFromString(fmt.Sprintf("order cannot go from %s to %s", current.Status, req.Status))
		}

		res, _ = st.Orders.Update(id, func(o *model.Order) {
			o.Status = req.Status
		})

		return fmt.Sprintf("Order %d moved to %s", res.ID, res.Status), nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		if !st.Orders.Delete(id) {
			return "", failure.NotFound("order")
		}

		return fmt.Sprintf("Order %d cancelled", id), nil
	})
}
