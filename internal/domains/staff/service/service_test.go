package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tide/infras/otel/mocks"
	"tide/internal/domains/staff/dto"
	"tide/internal/domains/staff/service"
	"tide/internal/state/gateway"
	gatewayMocks "tide/internal/state/gateway/mocks"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/failure"
)

func newService(t *testing.T, st *store.Store) service.Staff {
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

func TestStaff_CreateDefaultsHireDate(t *testing.T) {
	st := store.New()
	svc := newService(t, st)

	employee, err := svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:       "Tunde Bakare",
		Department: "Housekeeping",
		JobTitle:   "Supervisor",
		Salary:     150000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), employee.ID)
	assert.NotEmpty(t, employee.HireDate)

	stored, ok := st.Employees.Get(employee.ID)
	require.True(t, ok)
	assert.Equal(t, "Housekeeping", stored.Department)
}

func TestStaff_CreateKeepsExplicitHireDate(t *testing.T) {
	svc := newService(t, store.New())

	employee, err := svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:       "Tunde Bakare",
		Department: "Housekeeping",
		JobTitle:   "Supervisor",
		HireDate:   "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", employee.HireDate)
}

func TestStaff_UpdateEmployee(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	employee, err := svc.Create(ctx, dto.CreateEmployeeRequest{
		Name:       "Tunde Bakare",
		Department: "Housekeeping",
		JobTitle:   "Supervisor",
		Salary:     150000,
	})
	require.NoError(t, err)

	salary := 180000.0
	jobTitle := "Manager"
	updated, err := svc.Update(ctx, employee.ID, dto.UpdateEmployeeRequest{
		Salary:   &salary,
		JobTitle: &jobTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, 180000.0, updated.Salary)
	assert.Equal(t, "Manager", updated.JobTitle)
	assert.Equal(t, "Tunde Bakare", updated.Name)
}

func TestStaff_UpdateEmptyRequest(t *testing.T) {
	svc := newService(t, store.New())

	_, err := svc.Update(context.Background(), 1, dto.UpdateEmployeeRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestStaff_DeleteEmployee(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	employee, err := svc.Create(ctx, dto.CreateEmployeeRequest{
		Name:       "Tunde Bakare",
		Department: "Housekeeping",
		JobTitle:   "Supervisor",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, employee.ID))

	_, ok := st.Employees.Get(employee.ID)
	assert.False(t, ok)

	err = svc.Delete(ctx, employee.ID)
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
