package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"tide/infras/otel"
	"tide/internal/domains/settings/dto"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/shared/failure"
)

// Settings manages the named settings entries projected into the snapshot:
// tax settings and the stop-sell calendar.
type Settings interface {
	UpdateTaxSettings(ctx context.Context, req dto.UpdateTaxSettingsRequest) (model.TaxSettings, error)
	SetStopSell(ctx context.Context, req dto.SetStopSellRequest) (model.StopSell, error)
	Seed(ctx context.Context) error
}

type serviceImpl struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gw gateway.Gateway, ot otel.Otel) Settings {
	return &serviceImpl{
		gateway: gw,
		otel:    ot,
	}
}

func (s *serviceImpl) UpdateTaxSettings(ctx context.Context, req dto.UpdateTaxSettingsRequest) (res model.TaxSettings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTaxSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current := model.DefaultTaxSettings()
		if _, err := st.SettingValue(model.SettingKeyTaxSettings, &current); err != nil {
			return "", err
		}

		if req.IsEnabled != nil {
			current.IsEnabled = *req.IsEnabled
		}
		if req.Rate != nil {
			current.Rate = *req.Rate
		}

		raw, err := json.Marshal(current)
		if err != nil {
			return "", fmt.Errorf("failed to encode tax settings: %w", err)
		}

		st.UpsertSetting(model.SettingKeyTaxSettings, raw)
		res = current

		return fmt.Sprintf("Tax settings updated (enabled=%t, rate=%.2f)", current.IsEnabled, current.Rate), nil
	})

	return res, err
}

func (s *serviceImpl) SetStopSell(ctx context.Context, req dto.SetStopSellRequest) (res model.StopSell, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStopSell")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		current := model.StopSell{}
		if _, err := st.SettingValue(model.SettingKeyStopSell, &current); err != nil {
			return "", err
		}

		key := req.Key()
		if req.Closed {
			current[key] = true
		} else {
			delete(current, key)
		}

		raw, err := json.Marshal(current)
		if err != nil {
			return "", fmt.Errorf("failed to encode stop-sell map: %w", err)
		}

		st.UpsertSetting(model.SettingKeyStopSell, raw)
		res = current

		action := "opened"
		if req.Closed {
			action = "closed"
		}

		return fmt.Sprintf("%s %s for %s", req.RoomType, action, req.Date), nil
	})

	return res, err
}

// Seed writes the default settings entries when they are absent, matching
// first-run behavior. Existing values are never overwritten, and nothing is
// committed when both keys already exist.
func (s *serviceImpl) Seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SeedSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	seeded := false

	err = s.gateway.Commit(ctx, model.SyncLevelInfo, func(st *store.Store) (string, error) {
		var tax model.TaxSettings
		ok, err := st.SettingValue(model.SettingKeyTaxSettings, &tax)
		if err != nil {
			return "", err
		}

		if !ok {
			raw, err := json.Marshal(model.DefaultTaxSettings())
			if err != nil {
				return "", fmt.Errorf("failed to encode tax settings: %w", err)
			}

			st.UpsertSetting(model.SettingKeyTaxSettings, raw)
			seeded = true
		}

		var stopSell model.StopSell
		ok, err = st.SettingValue(model.SettingKeyStopSell, &stopSell)
		if err != nil {
			return "", err
		}

		if !ok {
			st.UpsertSetting(model.SettingKeyStopSell, json.RawMessage(`{}`))
			seeded = true
		}

		if !seeded {
			return "", errSeedNotNeeded
		}

		return "Default settings initialized", nil
	})

	if err == errSeedNotNeeded {
		return nil
	}

	return err
}

// errSeedNotNeeded aborts the seed commit when both keys already exist, so
// startup does not emit a spurious sync event.
var errSeedNotNeeded = fmt.Errorf("settings already seeded")
