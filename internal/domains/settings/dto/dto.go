package dto

type UpdateTaxSettingsRequest struct {
	IsEnabled *bool    `json:"isEnabled" validate:"omitempty"`
	Rate      *float64 `json:"rate" validate:"omitempty,gte=0"`
}

func (r *UpdateTaxSettingsRequest) Empty() bool {
	return r.IsEnabled == nil && r.Rate == nil
}

// SetStopSellRequest flags one date/room-type combination as closed for sale
// (or reopens it). The snapshot key is "<date>_<roomType>".
type SetStopSellRequest struct {
	Date     string `json:"date" validate:"required"`
	RoomType string `json:"roomType" validate:"required,max=100"`
	Closed   bool   `json:"closed"`
}

func (r *SetStopSellRequest) Key() string {
	return r.Date + "_" + r.RoomType
}
