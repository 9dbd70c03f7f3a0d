package dto

import (
	"tide/internal/state/model"
	"tide/shared/constant"
	"tide/shared/timezone"
)

type CreateReservationRequest struct {
	GuestName    string `json:"guestName" validate:"required,max=200"`
	GuestEmail   string `json:"guestEmail" validate:"omitempty,email"`
	GuestPhone   string `json:"guestPhone" validate:"omitempty,max=30"`
	CheckInDate  string `json:"checkInDate" validate:"required"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
	RoomType     string `json:"roomType" validate:"required,max=100"`
	OTA          string `json:"ota" validate:"omitempty,max=100"`
}

func (r *CreateReservationRequest) ToModel() model.Reservation {
	return model.Reservation{
		Base:         model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		GuestPhone:   r.GuestPhone,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		RoomType:     r.RoomType,
		OTA:          r.OTA,
	}
}

type UpdateReservationRequest struct {
	GuestName    *string `json:"guestName" validate:"omitempty,max=200"`
	GuestEmail   *string `json:"guestEmail" validate:"omitempty,email"`
	GuestPhone   *string `json:"guestPhone" validate:"omitempty,max=30"`
	CheckInDate  *string `json:"checkInDate" validate:"omitempty"`
	CheckOutDate *string `json:"checkOutDate" validate:"omitempty"`
	RoomType     *string `json:"roomType" validate:"omitempty,max=100"`
	OTA          *string `json:"ota" validate:"omitempty,max=100"`
}

func (r *UpdateReservationRequest) Empty() bool {
	return *r == (UpdateReservationRequest{})
}
