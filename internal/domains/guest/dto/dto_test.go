package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tide/internal/domains/guest/dto"
	"tide/internal/state/model"
)

func TestCreateGuestRequest_ToModel(t *testing.T) {
	req := dto.CreateGuestRequest{
		Name:          "Amaka Obi",
		Email:         "amaka@example.com",
		ArrivalDate:   "2026-09-01",
		DepartureDate: "2026-09-05",
		Adults:        2,
		Currency:      "NGN",
	}

	guest := req.ToModel()

	assert.Equal(t, req.Name, guest.Name)
	assert.Equal(t, req.Email, guest.Email)
	assert.Equal(t, req.ArrivalDate, guest.ArrivalDate)
	assert.Equal(t, model.LoyaltyTierBronze, guest.LoyaltyTier)
	assert.Zero(t, guest.LoyaltyPoints)
	assert.NotEmpty(t, guest.CreatedAt, "expected CreatedAt to be set")
}

func TestCreateTransactionRequest_ToModel(t *testing.T) {
	req := dto.CreateTransactionRequest{
		GuestID:     3,
		Description: "Refund for cancelled tour",
		Amount:      -12000,
	}

	txn := req.ToModel()

	assert.Equal(t, int64(3), txn.GuestID)
	assert.Equal(t, -12000.0, txn.Amount, "negative amounts stay negative")
	assert.NotEmpty(t, txn.Date, "expected empty date to default to now")

	req.Date = "2026-08-30"
	assert.Equal(t, "2026-08-30", req.ToModel().Date)
}

func TestCreateWalkInRequest_ToModel(t *testing.T) {
	req := dto.CreateWalkInRequest{
		Service:       "Pool pass",
		Amount:        5000,
		AmountPaid:    5000,
		PaymentMethod: "Cash",
	}

	walkIn := req.ToModel()

	assert.Equal(t, "Pool pass", walkIn.Service)
	assert.Equal(t, 5000.0, walkIn.Amount)
	assert.NotEmpty(t, walkIn.Date, "expected empty date to default to now")
}
