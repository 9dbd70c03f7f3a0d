package dto

import (
	"tide/internal/state/model"
	"tide/shared/constant"
	"tide/shared/timezone"
)

type CreateRoomTypeRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	RateNGN  float64 `json:"rateNGN" validate:"required,gt=0"`
	RateUSD  float64 `json:"rateUSD" validate:"required,gt=0"`
	Capacity int     `json:"capacity" validate:"required,gt=0"`
}

func (r *CreateRoomTypeRequest) ToModel() model.RoomType {
	return model.RoomType{
		Base:     model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		Name:     r.Name,
		RateNGN:  r.RateNGN,
		RateUSD:  r.RateUSD,
		Capacity: r.Capacity,
	}
}

type UpdateRoomTypeRequest struct {
	Name     *string  `json:"name" validate:"omitempty,max=100"`
	RateNGN  *float64 `json:"rateNGN" validate:"omitempty,gt=0"`
	RateUSD  *float64 `json:"rateUSD" validate:"omitempty,gt=0"`
	Capacity *int     `json:"capacity" validate:"omitempty,gt=0"`
}

func (r *UpdateRoomTypeRequest) Empty() bool {
	return r.Name == nil && r.RateNGN == nil && r.RateUSD == nil && r.Capacity == nil
}

type CreateRoomRequest struct {
	Number string           `json:"number" validate:"required,max=20"`
	Type   string           `json:"type" validate:"required,max=100"`
	Rate   float64          `json:"rate" validate:"required,gt=0"`
	Status model.RoomStatus `json:"status" validate:"omitempty"`
}

func (r *CreateRoomRequest) ToModel() model.Room {
	status := r.Status
	if status == "" {
		status = model.RoomStatusVacant
	}

	return model.Room{
		Base:   model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		Number: r.Number,
		Type:   r.Type,
		Rate:   r.Rate,
		Status: status,
	}
}

type UpdateRoomRequest struct {
	Number *string           `json:"number" validate:"omitempty,max=20"`
	Type   *string           `json:"type" validate:"omitempty,max=100"`
	Rate   *float64          `json:"rate" validate:"omitempty,gt=0"`
	Status *model.RoomStatus `json:"status" validate:"omitempty"`
}

func (r *UpdateRoomRequest) Empty() bool {
	return r.Number == nil && r.Type == nil && r.Rate == nil && r.Status == nil
}

type AssignGuestRequest struct {
	GuestID int64 `json:"guestId" validate:"required,gt=0"`
}
