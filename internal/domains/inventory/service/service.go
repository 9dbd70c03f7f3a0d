package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tide/infras/otel"
	"tide/internal/domains/inventory/dto"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/shared/failure"
)

// Inventory manages room types and rooms, including the room lifecycle.
type Inventory interface {
	CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) (model.RoomType, error)
	UpdateRoomType(ctx context.Context, id int64, req dto.UpdateRoomTypeRequest) (model.RoomType, error)
	DeleteRoomType(ctx context.Context, id int64) error
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error)
	UpdateRoom(ctx context.Context, id int64, req dto.UpdateRoomRequest) (model.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
	AssignGuest(ctx context.Context, roomID, guestID int64) (model.Room, error)
	VacateRoom(ctx context.Context, roomID int64) (model.Room, error)
}

type serviceImpl struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gw gateway.Gateway, ot otel.Otel) Inventory {
	return &serviceImpl{
		gateway: gw,
		otel:    ot,
	}
}

func (s *serviceImpl) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) (res model.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		if _, exists := st.RoomTypes.Find(func(rt model.RoomType) bool { return rt.Name == req.Name }); exists {
			return "", failure.Conflict(fmt.Sprintf("room type %q already exists", req.Name))
		}

		res = st.RoomTypes.Insert(req.ToModel())

		return fmt.Sprintf("Room type %q created", res.Name), nil
	})

	return res, err
}

func (s *serviceImpl) UpdateRoomType(ctx context.Context, id int64, req dto.UpdateRoomTypeRequest) (res model.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current, ok := st.RoomTypes.Get(id)
		if !ok {
			return "", failure.NotFound("room type")
		}

		if req.Name != nil && *req.Name != current.Name {
			if s.roomTypeInUse(st, current.Name) {
				return "", failure.Conflict(fmt.Sprintf("room type %q is referenced by rooms and cannot be renamed", current.Name))
			}

			if _, exists := st.RoomTypes.Find(func(rt model.RoomType) bool { return rt.Name == *req.Name }); exists {
				return "", failure.Conflict(fmt.Sprintf("room type %q already exists", *req.Name))
			}
		}

		res, _ = st.RoomTypes.Update(id, func(rt *model.RoomType) {
			if req.Name != nil {
				rt.Name = *req.Name
			}
			if req.RateNGN != nil {
				rt.RateNGN = *req.RateNGN
			}
			if req.RateUSD != nil {
				rt.RateUSD = *req.RateUSD
			}
			if req.Capacity != nil {
				rt.Capacity = *req.Capacity
			}
		})

		return fmt.Sprintf("Room type %q updated", res.Name), nil
	})

	return res, err
}

func (s *serviceImpl) DeleteRoomType(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		current, ok := st.RoomTypes.Get(id)
		if !ok {
			return "", failure.NotFound("room type")
		}

		if s.roomTypeInUse(st, current.Name) {
			return "", failure.Conflict(fmt.Sprintf("room type %q is referenced by rooms and cannot be deleted", current.Name))
		}

		st.RoomTypes.Delete(id)

		return fmt.Sprintf("Room type %q deleted", current.Name), nil
	})
}

func (s *serviceImpl) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status != "" && !req.Status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid room status %q", req.Status))
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		if _, exists := st.Rooms.Find(func(r model.Room) bool { return r.Number == req.Number }); exists {
			return "", failure.Conflict(fmt.Sprintf("room number %q already in use", req.Number))
		}

		if _, ok := st.RoomTypes.Find(func(rt model.RoomType) bool { return rt.Name == req.Type }); !ok {
			return "", failure.BadRequestFromString(fmt.Sprintf("unknown room type %q", req.Type))
		}

		res = st.Rooms.Insert(req.ToModel())

		return fmt.Sprintf("Room %s created", res.Number), nil
	})

	return res, err
}

func (s *serviceImpl) UpdateRoom(ctx context.Context, id int64, req dto.UpdateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if req.Status != nil && !req.Status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid room status %q", *req.Status))
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current, ok := st.Rooms.Get(id)
		if !ok {
			return "", failure.NotFound("room")
		}

		if req.Number != nil && *req.Number != current.Number {
			if _, exists := st.Rooms.Find(func(r model.Room) bool { return r.Number == *req.Number }); exists {
				return "", failure.Conflict(fmt.Sprintf("room number %q already in use", *req.Number))
			}
		}

		if req.Type != nil {
			if _, ok := st.RoomTypes.Find(func(rt model.RoomType) bool { return rt.Name == *req.Type }); !ok {
				return "", failure.BadRequestFromString(fmt.Sprintf("unknown room type %q", *req.Type))
			}
		}

		if req.Status != nil && !current.Status.CanTransition(*req.Status) {
			return "", failure.BadRequestFromString(fmt.Sprintf("room cannot go from %s to %s", current.Status, *req.Status))
		}

		res, _ = st.Rooms.Update(id, func(r *model.Room) {
			if req.Number != nil {
				r.Number = *req.Number
			}
			if req.Type != nil {
				r.Type = *req.Type
			}
			if req.Rate != nil {
				r.Rate = *req.Rate
			}
			if req.Status != nil {
				r.Status = *req.Status
				if *req.Status != model.RoomStatusOccupied {
					r.GuestID = nil
				}
			}
		})

		return fmt.Sprintf("Room %s updated", res.Number), nil
	})

	return res, err
}

func (s *serviceImpl) DeleteRoom(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		current, ok := st.Rooms.Get(id)
		if !ok {
			return "", failure.NotFound("room")
		}

		st.Rooms.Delete(id)

		return fmt.Sprintf("Room %s deleted", current.Number), nil
	})
}

// AssignGuest checks a guest into a room: status moves to Occupied and the
// back-reference is set.
func (s *serviceImpl) AssignGuest(ctx context.Context, roomID, guestID int64) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current, ok := st.Rooms.Get(roomID)
		if !ok {
			return "", failure.NotFound("room")
		}

		guest, ok := st.Guests.Get(guestID)
		if !ok {
			return "", failure.NotFound("guest")
		}

		if !current.Status.CanTransition(model.RoomStatusOccupied) {
			return "", failure.BadRequestFromString(fmt.Sprintf("room %s cannot be occupied while %s", current.Number, current.Status))
		}

		res, _ = st.Rooms.Update(roomID, func(r *model.Room) {
			r.Status = model.RoomStatusOccupied
			r.GuestID = &guest.ID
		})

		return fmt.Sprintf("Guest %s checked into room %s", guest.Name, res.Number), nil
	})

	return res, err
}

// VacateRoom clears the guest reference and returns the room to Vacant. This
// is the only operation that vacates; deleting a guest does not.
func (s *serviceImpl) VacateRoom(ctx context.Context, roomID int64) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VacateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current, ok := st.Rooms.Get(roomID)
		if !ok {
			return "", failure.NotFound("room")
		}

		if !current.Status.CanTransition(model.RoomStatusVacant) {
			return "", failure.BadRequestFromString(fmt.Sprintf("room %s cannot be vacated while %s", current.Number, current.Status))
		}

		res, _ = st.Rooms.Update(roomID, func(r *model.Room) {
			r.Status = model.RoomStatusVacant
			r.GuestID = nil
		})

		return fmt.Sprintf("Room %s vacated", res.Number), nil
	})

	return res, err
}

func (s *serviceImpl) roomTypeInUse(st *store.Store, name string) bool {
	_, inUse := st.Rooms.Find(func(r model.Room) bool { return r.Type == name })

	return inUse
}
