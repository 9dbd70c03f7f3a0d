package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tide/infras/otel"
	"tide/internal/domains/staff/dto"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/shared/failure"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (model.Employee, error)
	Update(ctx context.Context, id int64, req dto.UpdateEmployeeRequest) (model.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gw gateway.Gateway, ot otel.Otel) Staff {
	return &serviceImpl{
		gateway: gw,
		otel:    ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (res model.Employee, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		res = st.Employees.Insert(req.ToModel())

		return fmt.Sprintf("Employee %s added to %s", res.Name, res.Department), nil
	})

	return res, err
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateEmployeeRequest) (res model.Employee, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		var ok bool
		res, ok = st.Employees.Update(id, func(e *model.Employee) {
			if req.Name != nil {
				e.Name = *req.Name
			}
			if req.Department != nil {
				e.Department = *req.Department
			}
			if req.JobTitle != nil {
				e.JobTitle = *req.JobTitle
			}
			if req.Salary != nil {
				e.Salary = *req.Salary
			}
			if req.HireDate != nil {
				e.HireDate = *req.HireDate
			}
			if req.Email != nil {
				e.Email = *req.Email
			}
			if req.Phone != nil {
				e.Phone = *req.Phone
			}
			if req.EmergencyContactName != nil {
				e.EmergencyContactName = *req.EmergencyContactName
			}
			if req.EmergencyContactPhone != nil {
				e.EmergencyContactPhone = *req.EmergencyContactPhone
			}
			if req.ProfilePicture != nil {
				e.ProfilePicture = *req.ProfilePicture
			}
		})
		if !ok {
			return "", failure.NotFound("employee")
		}

		return fmt.Sprintf("Employee %s updated", res.Name), nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.gateway.Commit(ctx, model.SyncLevelWarn, func(st *store.Store) (string, error) {
		employee, ok := st.Employees.Get(id)
		if !ok {
			return "", failure.NotFound("employee")
		}

		st.Employees.Delete(id)

		return fmt.Sprintf("Employee %s removed", employee.Name), nil
	})
}
