package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tide/infras/otel/mocks"
	"tide/internal/domains/settings/dto"
	"tide/internal/domains/settings/service"
	"tide/internal/state/gateway"
	gatewayMocks "tide/internal/state/gateway/mocks"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/failure"
)

func newService(t *testing.T, st *store.Store) service.Settings {
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

func TestSettings_UpdateTaxSettingsPartial(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	rate := 12.5
	updated, err := svc.UpdateTaxSettings(ctx, dto.UpdateTaxSettingsRequest{Rate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 12.5, updated.Rate)
	assert.True(t, updated.IsEnabled, "enabled flag keeps its default when not patched")

	disabled := false
	updated, err = svc.UpdateTaxSettings(ctx, dto.UpdateTaxSettingsRequest{IsEnabled: &disabled})
	require.NoError(t, err)
	assert.False(t, updated.IsEnabled)
	assert.Equal(t, 12.5, updated.Rate, "rate keeps the previously stored value")

	_, err = svc.UpdateTaxSettings(ctx, dto.UpdateTaxSettingsRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestSettings_StopSellSetAndClear(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	stopSell, err := svc.SetStopSell(ctx, dto.SetStopSellRequest{Date: "2026-09-01", RoomType: "Deluxe", Closed: true})
	require.NoError(t, err)
	assert.Equal(t, model.StopSell{"2026-09-01_Deluxe": true}, stopSell)

	stopSell, err = svc.SetStopSell(ctx, dto.SetStopSellRequest{Date: "2026-09-01", RoomType: "Deluxe", Closed: false})
	require.NoError(t, err)
	assert.Empty(t, stopSell)

	snap, err := st.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.StopSell)
}

func TestSettings_SeedOnlyWhenMissing(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	assert.Equal(t, 2, st.Settings.Len())

	var tax model.TaxSettings
	ok, err := st.SettingValue(model.SettingKeyTaxSettings, &tax)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.DefaultTaxSettings(), tax)

	// Second seed finds both keys present and commits nothing.
	require.NoError(t, svc.Seed(ctx))
	assert.Equal(t, 2, st.Settings.Len())
}

func TestSettings_SeedKeepsExistingValues(t *testing.T) {
	st := store.New()
	svc := newService(t, st)
	ctx := context.Background()

	rate := 10.0
	_, err := svc.UpdateTaxSettings(ctx, dto.UpdateTaxSettingsRequest{Rate: &rate})
	require.NoError(t, err)

	require.NoError(t, svc.Seed(ctx))

	var tax model.TaxSettings
	_, err = st.SettingValue(model.SettingKeyTaxSettings, &tax)
	require.NoError(t, err)
	assert.Equal(t, 10.0, tax.Rate)
}
