package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tide/infras/otel/mocks"
	"tide/internal/domains/guest/dto"
	"tide/internal/domains/guest/service"
	"tide/internal/state/gateway"
	gatewayMocks "tide/internal/state/gateway/mocks"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/failure"
)

func newService(t *testing.T, st *store.Store) service.Guest {
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

func createGuest(t *testing.T, svc service.Guest) model.Guest {
	guest, err := svc.Create(context.Background(), dto.CreateGuestRequest{
		Name:          "Alice",
		ArrivalDate:   "2026-09-01",
		DepartureDate: "2026-09-05",
	})
	require.NoError(t, err)

	return guest
}

func TestGuest_CreateDefaultsToBronze(t *testing.T) {
	svc := newService(t, store.New())

	guest := createGuest(t, svc)
	assert.Equal(t, model.LoyaltyTierBronze, guest.LoyaltyTier)
	assert.Equal(t, 0, guest.LoyaltyPoints)
	assert.NotEmpty(t, guest.CreatedAt)
}

func TestGuest_DeleteCascades(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	guest := createGuest(t, svc)

	_, err := svc.AddTransaction(ctx, dto.CreateTransactionRequest{
		GuestID: guest.ID, Description: "Room charge", Amount: 50000,
	})
	require.NoError(t, err)

	_, err = svc.AddLoyaltyPoints(ctx, guest.ID, dto.AddLoyaltyPointsRequest{Points: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, guest.ID))

	assert.Equal(t, 0, st.Guests.Len())
	assert.Equal(t, 0, st.Transactions.Len())
	assert.Equal(t, 0, st.LoyaltyTransactions.Len())

	err = svc.Delete(ctx, guest.ID)
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestGuest_TransactionRequiresGuest(t *testing.T) {
	svc := newService(t, store.New())

	_, err := svc.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		GuestID: 42, Description: "Room charge", Amount: 50000,
	})
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestGuest_NegativeTransactionIsCredit(t *testing.T) {
	st := store.New()
	svc := newService(t, st)

	guest := createGuest(t, svc)

	txn, err := svc.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		GuestID: guest.ID, Description: "Refund", Amount: -15000,
	})
	require.NoError(t, err)
	assert.Equal(t, -15000.0, txn.Amount)
	assert.NotEmpty(t, txn.Date)
}

func TestGuest_LoyaltyPointsFloorAtZero(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	guest := createGuest(t, svc)

	updated, err := svc.AddLoyaltyPoints(ctx, guest.ID, dto.AddLoyaltyPointsRequest{Points: 120})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.LoyaltyPoints)

	updated, err = svc.AddLoyaltyPoints(ctx, guest.ID, dto.AddLoyaltyPointsRequest{Points: -500, Description: "Redemption"})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.LoyaltyPoints)

	assert.Equal(t, 2, st.LoyaltyTransactions.Len())
}

func TestGuest_SetLoyaltyTier(t *testing.T) {
	svc := newService(t, store.New())
	ctx := context.Background()

	guest := createGuest(t, svc)

	updated, err := svc.SetLoyaltyTier(ctx, guest.ID, dto.SetLoyaltyTierRequest{Tier: model.LoyaltyTierPlatinum})
	require.NoError(t, err)
	assert.Equal(t, model.LoyaltyTierPlatinum, updated.LoyaltyTier)

	// Tier is explicit, never recomputed from points.
	updated, err = svc.AddLoyaltyPoints(ctx, guest.ID, dto.AddLoyaltyPointsRequest{Points: 5})
	require.NoError(t, err)
	assert.Equal(t, model.LoyaltyTierPlatinum, updated.LoyaltyTier)

	_, err = svc.SetLoyaltyTier(ctx, guest.ID, dto.SetLoyaltyTierRequest{Tier: "Diamond"})
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestGuest_UpdateEmptyRequest(t *testing.T) {
	svc := newService(t, store.New())

	_, err := svc.Update(context.Background(), 1, dto.UpdateGuestRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestGuest_CreateWalkIn(t *testing.T) {
	st := store.New()
	svc := newService(t, st)

	walkIn, err := svc.CreateWalkIn(context.Background(), dto.CreateWalkInRequest{
		Service:       "Pool pass",
		Amount:        5000,
		Tax:           375,
		AmountPaid:    5375,
		PaymentMethod: "cash",
		Currency:      "NGN",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), walkIn.ID)
	assert.NotEmpty(t, walkIn.Date)
	assert.Equal(t, 1, st.WalkInTransactions.Len())
}
