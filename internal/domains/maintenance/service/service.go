package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tide/infras/otel"
	"tide/internal/domains/maintenance/dto"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/shared/failure"
)

// Maintenance manages maintenance tickets and their forward-only lifecycle.
type Maintenance interface {
	Create(ctx context.Context, req dto.CreateRequestRequest) (model.MaintenanceRequest, error)
	Update(ctx context.Context, id int64, req dto.UpdateRequestRequest) (model.MaintenanceRequest, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gw gateway.Gateway, ot otel.Otel) Maintenance {
	return &serviceImpl{
		gateway: gw,
		otel:    ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest) (res model.MaintenanceRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMaintenanceRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Priority != "" && !req.Priority.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid priority %q", req.Priority))
	}

	err = s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		if req.RoomID != nil {
			if _, ok := st.Rooms.Get(*req.RoomID); !ok {
				return "", failure.NotFound("room")
			}
		}

		res = st.MaintenanceRequests.Insert(req.ToModel())

		return fmt.Sprintf("Maintenance reported at %s (%s priority)", res.Location, res.Priority), nil
	})

	return res, err
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateRequestRequest) (res model.MaintenanceRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMaintenanceRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if req.Priority != nil && !req.Priority.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid priority %q", *req.Priority))
	}

	if req.Status != nil && !req.Status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid maintenance status %q", *req.Status))
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current, ok := st.MaintenanceRequests.Get(id)
		if !ok {
			return "", failure.NotFound("maintenance request")
		}

		if req.Status != nil && !current.Status.CanTransition(*req.Status) {
			return "", failure.BadRequestFromString(fmt.Sprintf("maintenance request cannot go from %s to %s", current.Status, *req.Status))
		}

		res, _ = st.MaintenanceRequests.Update(id, func(m *model.MaintenanceRequest) {
			if req.Location != nil {
				m.Location = *req.Location
			}
			if req.Description != nil {
				m.Description = *req.Description
			}
			if req.Priority != nil {
				m.Priority = *req.Priority
			}
			if req.Status != nil {
				m.Status = *req.Status
			}
		})

		return fmt.Sprintf("Maintenance at %s now %s", res.Location, res.Status), nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMaintenanceRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		current, ok := st.MaintenanceRequests.Get(id)
		if !ok {
			return "", failure.NotFound("maintenance request")
		}

		st.MaintenanceRequests.Delete(id)

		return fmt.Sprintf("Maintenance at %s closed and removed", current.Location), nil
	})
}
