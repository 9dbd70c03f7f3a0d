package model

import "encoding/json"

// Base carries the fields every stored entity shares. Ids are assigned by the
// store's per-collection counter, start at 1 and are never reused.
type Base struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (b *Base) GetID() int64 {
	return b.ID
}

func (b *Base) SetID(id int64) {
	b.ID = id
}

type RoomType struct {
	Base
	Name     string  `json:"name"`
	RateNGN  float64 `json:"rateNGN"`
	RateUSD  float64 `json:"rateUSD"`
	Capacity int     `json:"capacity"`
}

type Room struct {
	Base
	Number  string     `json:"number"`
	Type    string     `json:"type"`
	Rate    float64    `json:"rate"`
	Status  RoomStatus `json:"status"`
	GuestID *int64     `json:"guestId"`
}

type Guest struct {
	Base
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Birthdate       string      `json:"birthdate,omitempty"`
	Nationality     string      `json:"nationality,omitempty"`
	IDType          string      `json:"idType"`
	IDNumber        string      `json:"idNumber"`
	IDOtherType     string      `json:"idOtherType,omitempty"`
	Address         string      `json:"address,omitempty"`
	ArrivalDate     string      `json:"arrivalDate"`
	DepartureDate   string      `json:"departureDate"`
	Adults          int         `json:"adults"`
	Children        int         `json:"children"`
	RoomNumber      string      `json:"roomNumber"`
	RoomType        string      `json:"roomType"`
	BookingSource   string      `json:"bookingSource"`
	Currency        string      `json:"currency"`
	Discount        float64     `json:"discount"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
	LoyaltyPoints   int         `json:"loyaltyPoints"`
	LoyaltyTier     LoyaltyTier `json:"loyaltyTier"`
}

// Transaction is a folio line on a guest account. Amount is positive for a
// charge, negative for a credit.
type Transaction struct {
	Base
	GuestID     int64   `json:"guestId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

type LoyaltyTransaction struct {
	Base
	GuestID     int64  `json:"guestId"`
	Points      int    `json:"points"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type WalkInTransaction struct {
	Base
	Service        string  `json:"service"`
	ServiceDetails string  `json:"serviceDetails,omitempty"`
	Amount         float64 `json:"amount"`
	Discount       float64 `json:"discount"`
	Tax            float64 `json:"tax"`
	AmountPaid     float64 `json:"amountPaid"`
	PaymentMethod  string  `json:"paymentMethod"`
	Currency       string  `json:"currency"`
	Date           string  `json:"date"`
}

// Reservation is an inbound booking not yet linked to a room or guest.
type Reservation struct {
	Base
	GuestName    string `json:"guestName"`
	GuestEmail   string `json:"guestEmail"`
	GuestPhone   string `json:"guestPhone"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomType     string `json:"roomType"`
	OTA          string `json:"ota"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	Base
	RoomID int64       `json:"roomId"`
	Items  []OrderItem `json:"items"`
	Total  float64     `json:"total"`
	Status OrderStatus `json:"status"`
}

type Employee struct {
	Base
	Name                  string  `json:"name"`
	Department            string  `json:"department"`
	JobTitle              string  `json:"jobTitle"`
	Salary                float64 `json:"salary"`
	HireDate              string  `json:"hireDate"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	EmergencyContactName  string  `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string  `json:"emergencyContactPhone,omitempty"`
	ProfilePicture        string  `json:"profilePicture,omitempty"`
}

type MaintenanceRequest struct {
	Base
	RoomID      *int64              `json:"roomId"`
	Location    string              `json:"location"`
	Description string              `json:"description"`
	ReportedAt  string              `json:"reportedAt"`
	Status      MaintenanceStatus   `json:"status"`
	Priority    MaintenancePriority `json:"priority"`
}

// Setting is a named configuration entry holding an arbitrary JSON payload.
type Setting struct {
	Base
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
