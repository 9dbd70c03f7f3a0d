package dto

import (
	"tide/internal/state/model"
	"tide/shared/constant"
	"tide/shared/timezone"
)

type CreateEmployeeRequest struct {
	Name                  string  `json:"name" validate:"required,max=200"`
	Department            string  `json:"department" validate:"required,max=100"`
	JobTitle              string  `json:"jobTitle" validate:"required,max=100"`
	Salary                float64 `json:"salary" validate:"omitempty,gte=0"`
	HireDate              string  `json:"hireDate" validate:"omitempty"`
	Email                 string  `json:"email" validate:"omitempty,email"`
	Phone                 string  `json:"phone" validate:"omitempty,max=30"`
	EmergencyContactName  string  `json:"emergencyContactName" validate:"omitempty,max=200"`
	EmergencyContactPhone string  `json:"emergencyContactPhone" validate:"omitempty,max=30"`
	ProfilePicture        string  `json:"profilePicture" validate:"omitempty,max=500"`
}

func (r *CreateEmployeeRequest) ToModel() model.Employee {
	hireDate := r.HireDate
	if hireDate == "" {
		hireDate = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	return model.Employee{
		Base:                  model.Base{CreatedAt: timezone.Format(timezone.Now(), constant.DateFormat)},
		Name:                  r.Name,
		Department:            r.Department,
		JobTitle:              r.JobTitle,
		Salary:                r.Salary,
		HireDate:              hireDate,
		Email:                 r.Email,
		Phone:                 r.Phone,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		ProfilePicture:        r.ProfilePicture,
	}
}

type UpdateEmployeeRequest struct {
	Name                  *string  `json:"name" validate:"omitempty,max=200"`
	Department            *string  `json:"department" validate:"omitempty,max=100"`
	JobTitle              *string  `json:"jobTitle" validate:"omitempty,max=100"`
	Salary                *float64 `json:"salary" validate:"omitempty,gte=0"`
	HireDate              *string  `json:"hireDate" validate:"omitempty"`
	Email                 *string  `json:"email" validate:"omitempty,email"`
	Phone                 *string  `json:"phone" validate:"omitempty,max=30"`
	EmergencyContactName  *string  `json:"emergencyContactName" validate:"omitempty,max=200"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone" validate:"omitempty,max=30"`
	ProfilePicture        *string  `json:"profilePicture" validate:"omitempty,max=500"`
}

func (r *UpdateEmployeeRequest) Empty() bool {
	return *r == (UpdateEmployeeRequest{})
}
