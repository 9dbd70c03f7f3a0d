package dto

import (
	"tide/internal/state/model"
	"tide/shared/constant"
	"tide/shared/timezone"
)

type CreateGuestRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Email           string  `json:"email" validate:"omitempty,email"`
	Phone           string  `json:"phone" validate:"omitempty,max=30"`
	Birthdate       string  `json:"birthdate" validate:"omitempty"`
	Nationality     string  `json:"nationality" validate:"omitempty,max=100"`
	IDType          string  `json:"idType" validate:"omitempty,max=50"`
	IDNumber        string  `json:"idNumber" validate:"omitempty,max=50"`
	IDOtherType     string  `json:"idOtherType" validate:"omitempty,max=50"`
	Address         string  `json:"address" validate:"omitempty,max=500"`
	ArrivalDate     string  `json:"arrivalDate" validate:"required"`
	DepartureDate   string  `json:"departureDate" validate:"required"`
	Adults          int     `json:"adults" validate:"omitempty,gte=0"`
	Children        int     `json:"children" validate:"omitempty,gte=0"`
	RoomNumber      string  `json:"roomNumber" validate:"omitempty,max=20"`
	RoomType        string  `json:"roomType" validate:"omitempty,max=100"`
	BookingSource   string  `json:"bookingSource" validate:"omitempty,max=100"`
	Currency        string  `json:"currency" validate:"omitempty,max=10"`
	Discount        float64 `json:"discount" validate:"omitempty,gte=0"`
	SpecialRequests string  `json:"specialRequests" validate:"omitempty,max=1000"`
}

func (r *CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		Base:            model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Birthdate:       r.Birthdate,
		Nationality:     r.Nationality,
		IDType:          r.IDType,
		IDNumber:        r.IDNumber,
		IDOtherType:     r.IDOtherType,
		Address:         r.Address,
		ArrivalDate:     r.ArrivalDate,
		DepartureDate:   r.DepartureDate,
		Adults:          r.Adults,
		Children:        r.Children,
		RoomNumber:      r.RoomNumber,
		RoomType:        r.RoomType,
		BookingSource:   r.BookingSource,
		Currency:        r.Currency,
		Discount:        r.Discount,
		SpecialRequests: r.SpecialRequests,
		LoyaltyTier:     model.LoyaltyTierBronze,
	}
}

type UpdateGuestRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=200"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Phone           *string  `json:"phone" validate:"omitempty,max=30"`
	Birthdate       *string  `json:"birthdate" validate:"omitempty"`
	Nationality     *string  `json:"nationality" validate:"omitempty,max=100"`
	IDType          *string  `json:"idType" validate:"omitempty,max=50"`
	IDNumber        *string  `json:"idNumber" validate:"omitempty,max=50"`
	IDOtherType     *string  `json:"idOtherType" validate:"omitempty,max=50"`
	Address         *string  `json:"address" validate:"omitempty,max=500"`
	ArrivalDate     *string  `json:"arrivalDate" validate:"omitempty"`
	DepartureDate   *string  `json:"departureDate" validate:"omitempty"`
	Adults          *int     `json:"adults" validate:"omitempty,gte=0"`
	Children        *int     `json:"children" validate:"omitempty,gte=0"`
	RoomNumber      *string  `json:"roomNumber" validate:"omitempty,max=20"`
	RoomType        *string  `json:"roomType" validate:"omitempty,max=100"`
	BookingSource   *string  `json:"bookingSource" validate:"omitempty,max=100"`
	Currency        *string  `json:"currency" validate:"omitempty,max=10"`
	Discount        *float64 `json:"discount" validate:"omitempty,gte=0"`
	SpecialRequests *string  `json:"specialRequests" validate:"omitempty,max=1000"`
}

type CreateTransactionRequest struct {
	GuestID     int64   `json:"guestId" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,max=500"`
	Amount      float64 `json:"amount" validate:"required"`
	Date        string  `json:"date" validate:"omitempty"`
}

// ToModel fills the transaction date with the current time when the request
// leaves it empty. Amount keeps its sign: negative is a credit.
func (r *CreateTransactionRequest) ToModel() model.Transaction {
	date := r.Date
	if date == "" {
		date = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	return model.Transaction{
		Base:        model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		GuestID:     r.GuestID,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        date,
	}
}

type AddLoyaltyPointsRequest struct {
	Points      int    `json:"points" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type SetLoyaltyTierRequest struct {
	Tier model.LoyaltyTier `json:"tier" validate:"required"`
}

type CreateWalkInRequest struct {
	Service        string  `json:"service" validate:"required,max=200"`
	ServiceDetails string  `json:"serviceDetails" validate:"omitempty,max=1000"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Discount       float64 `json:"discount" validate:"omitempty,gte=0"`
	Tax            float64 `json:"tax" validate:"omitempty,gte=0"`
	AmountPaid     float64 `json:"amountPaid" validate:"omitempty,gte=0"`
	PaymentMethod  string  `json:"paymentMethod" validate:"required,max=50"`
	Currency       string  `json:"currency" validate:"omitempty,max=10"`
	Date           string  `json:"date" validate:"omitempty"`
}

func (r *CreateWalkInRequest) ToModel() model.WalkInTransaction {
	date := r.Date
	if date == "" {
		date = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	return model.WalkInTransaction{
		Base:           model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		Service:        r.Service,
		ServiceDetails: r.ServiceDetails,
		Amount:         r.Amount,
		Discount:       r.Discount,
		Tax:            r.Tax,
		AmountPaid:     r.AmountPaid,
		PaymentMethod:  r.PaymentMethod,
		Currency:       r.Currency,
		Date:           date,
	}
}
