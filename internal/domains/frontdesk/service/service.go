package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tide/infras/otel"
	"tide/internal/domains/frontdesk/dto"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/shared/failure"
)

// FrontDesk manages inbound reservations not yet linked to a room or guest.
type FrontDesk interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (model.Reservation, error)
	Update(ctx context.Context, id int64, req dto.UpdateReservationRequest) (model.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gw gateway.Gateway, ot otel.Otel) FrontDesk {
	return &serviceImpl{
		gateway: gw,
		otel:    ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		res = st.Reservations.Insert(req.ToModel())

		return fmt.Sprintf("Reservation for %s (%s) created", res.GuestName, res.RoomType), nil
	})

	return res, err
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateReservationRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		var ok bool
		res, ok = st.Reservations.Update(id, func(r *model.Reservation) {
			if req.GuestName != nil {
				r.GuestName = *req.GuestName
			}
			if req.GuestEmail != nil {
				r.GuestEmail = *req.GuestEmail
			}
			if req.GuestPhone != nil {
				r.GuestPhone = *req.GuestPhone
			}
			if req.CheckInDate != nil {
				r.CheckInDate = *req.CheckInDate
			}
			if req.CheckOutDate != nil {
				r.CheckOutDate = *req.CheckOutDate
			}
			if req.RoomType != nil {
				r.RoomType = *req.RoomType
			}
			if req.OTA != nil {
				r.OTA = *req.OTA
			}
		})
		if !ok {
			return "", failure.NotFound("reservation")
		}

		return fmt.Sprintf("Reservation for %s updated", res.GuestName), nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		reservation, ok := st.Reservations.Get(id)
		if !ok {
			return "", failure.NotFound("reservation")
		}

		st.Reservations.Delete(id)

		return fmt.Sprintf("Reservation for %s cancelled", reservation.GuestName), nil
	})
}
