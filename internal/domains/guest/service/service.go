package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tide/infras/otel"
	"tide/internal/domains/guest/dto"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/shared/failure"
	"tide/shared/timezone"
)

// Guest manages guests, their folio transactions, loyalty and walk-in POS
// transactions.
type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (model.Guest, error)
	Update(ctx context.Context, id int64, req dto.UpdateGuestRequest) (model.Guest, error)
	Delete(ctx context.Context, id int64) error
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	AddLoyaltyPoints(ctx context.Context, guestID int64, req dto.AddLoyaltyPointsRequest) (model.Guest, error)
	SetLoyaltyTier(ctx context.Context, guestID int64, req dto.SetLoyaltyTierRequest) (model.Guest, error)
	CreateWalkIn(ctx context.Context, req dto.CreateWalkInRequest) (model.WalkInTransaction, error)
}

type serviceImpl struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gw gateway.Gateway, ot otel.Otel) Guest {
	return &serviceImpl{
		gateway: gw,
		otel:    ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		res = st.Guests.Insert(req.ToModel())

		return fmt.Sprintf("Guest %s checked in", res.Name), nil
	})

	return res, err
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateGuestRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateGuestRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		var ok bool
		res, ok = st.Guests.Update(id, func(g *model.Guest) {
			applyGuestPatch(g, req)
		})
		if !ok {
			return "", failure.NotFound("guest")
		}

		return fmt.Sprintf("Guest %s updated", res.Name), nil
	})

	return res, err
}

// Delete removes the guest and cascades to their transactions. The guest's
// room, if any, stays occupied until explicitly vacated.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		guest, ok := st.Guests.Get(id)
		if !ok {
			return "", failure.NotFound("guest")
		}

		st.DeleteGuestCascade(id)

		return fmt.Sprintf("Guest %s deleted with all transactions", guest.Name), nil
	})
}

func (s *serviceImpl) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (res model.Transaction, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddTransaction")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		guest, ok := st.Guests.Get(req.GuestID)
		if !ok {
			return "", failure.NotFound("guest")
		}

		res = st.Transactions.Insert(req.ToModel())

		return fmt.Sprintf("Transaction of %.2f posted to guest %s", res.Amount, guest.Name), nil
	})

	return res, err
}

func (s *serviceImpl) DeleteTransaction(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTransaction")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		if !st.Transactions.Delete(id) {
			return "", failure.NotFound("transaction")
		}

		return fmt.Sprintf("Transaction %d deleted", id), nil
	})
}

// AddLoyaltyPoints records a loyalty transaction and adjusts the guest's
// balance. Negative deltas redeem points; the balance floors at zero.
func (s *serviceImpl) AddLoyaltyPoints(ctx context.Context, guestID int64, req dto.AddLoyaltyPointsRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddLoyaltyPoints")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		var ok bool
		res, ok = st.Guests.Update(guestID, func(g *model.Guest) {
			g.LoyaltyPoints += req.Points
			if g.LoyaltyPoints < 0 {
				g.LoyaltyPoints = 0
			}
		})
		if !ok {
			return "", failure.NotFound("guest")
		}

		description := req.Description
		if description == "" {
			description = "Points adjustment"
		}

		st.LoyaltyTransactions.Insert(model.LoyaltyTransaction{
			Base:        model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
			GuestID:     guestID,
			Points:      req.Points,
			Description: description,
			Date:        timezone.Format(timezone.Now(), constant.DateFormat),
		})

		return fmt.Sprintf("Loyalty points for %s adjusted by %d", res.Name, req.Points), nil
	})

	return res, err
}

// SetLoyaltyTier sets the tier explicitly. Tier is not derived from points.
func (s *serviceImpl) SetLoyaltyTier(ctx context.Context, guestID int64, req dto.SetLoyaltyTierRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetLoyaltyTier")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Tier.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid loyalty tier %q", req.Tier))
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		var ok bool
		res, ok = st.Guests.Update(guestID, func(g *model.Guest) {
			g.LoyaltyTier = req.Tier
		})
		if !ok {
			return "", failure.NotFound("guest")
		}

		return fmt.Sprintf("Guest %s moved to %s tier", res.Name, res.LoyaltyTier), nil
	})

	return res, err
}

func (s *serviceImpl) CreateWalkIn(ctx context.Context, req dto.CreateWalkInRequest) (res model.WalkInTransaction, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateWalkIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		res = st.WalkInTransactions.Insert(req.ToModel())

		return fmt.Sprintf("Walk-in %s sale of %.2f recorded", res.Service, res.Amount), nil
	})

	return res, err
}

func applyGuestPatch(g *model.Guest, req dto.UpdateGuestRequest) {
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Email != nil {
		g.Email = *req.Email
	}
	if req.Phone != nil {
		g.Phone = *req.Phone
	}
	if req.Birthdate != nil {
		g.Birthdate = *req.Birthdate
	}
	if req.Nationality != nil {
		g.Nationality = *req.Nationality
	}
	if req.IDType != nil {
		g.IDType = *req.IDType
	}
	if req.IDNumber != nil {
		g.IDNumber = *req.IDNumber
	}
	if req.IDOtherType != nil {
		g.IDOtherType = *req.IDOtherType
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.ArrivalDate != nil {
		g.ArrivalDate = *req.ArrivalDate
	}
	if req.DepartureDate != nil {
		g.DepartureDate = *req.DepartureDate
	}
	if req.Adults != nil {
		g.Adults = *req.Adults
	}
	if req.Children != nil {
		g.Children = *req.Children
	}
	if req.RoomNumber != nil {
		g.RoomNumber = *req.RoomNumber
	}
	if req.RoomType != nil {
		g.RoomType = *req.RoomType
	}
	if req.BookingSource != nil {
		g.BookingSource = *req.BookingSource
	}
	if req.Currency != nil {
		g.Currency = *req.Currency
	}
	if req.Discount != nil {
		g.Discount = *req.Discount
	}
	if req.SpecialRequests != nil {
		g.SpecialRequests = *req.SpecialRequests
	}
}
