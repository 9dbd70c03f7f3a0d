package dto

import (
	"tide/internal/state/model"
	"tide/shared/constant"
	"tide/shared/timezone"
)

type CreateRequestRequest struct {
	RoomID      *int64                    `json:"roomId" validate:"omitempty,gt=0"`
	Location    string                    `json:"location" validate:"required,max=200"`
	Description string                    `json:"description" validate:"required,max=1000"`
	Priority    model.MaintenancePriority `json:"priority" validate:"omitempty"`
}

func (r *CreateRequestRequest) ToModel() model.MaintenanceRequest {
	priority := r.Priority
	if priority == "" {
		priority = model.MaintenancePriorityMedium
	}

	return model.MaintenanceRequest{
		Base:        model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		RoomID:      r.RoomID,
		Location:    r.Location,
		Description: r.Description,
		ReportedAt:  timezone.Format(timezone.Now(), constant.DateFormat),
		Status:      model.MaintenanceStatusReported,
		Priority:    priority,
	}
}

type UpdateRequestRequest struct {
	Location    *string                    `json:"location" validate:"omitempty,max=200"`
	Description *string                    `json:"description" validate:"omitempty,max=1000"`
	Priority    *model.MaintenancePriority `json:"priority" validate:"omitempty"`
	Status      *model.MaintenanceStatus   `json:"status" validate:"omitempty"`
}

func (r *UpdateRequestRequest) Empty() bool {
	return *r == (UpdateRequestRequest{})
}
