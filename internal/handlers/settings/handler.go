package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/domains/settings/dto"
	"tide/internal/domains/settings/service"
	"tide/shared/constant"
	"tide/shared/validator"
	"tide/transport/http/response"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Put("/tax", handler.UpdateTaxSettings)
		routerGroup.Put("/stop-sell", handler.SetStopSell)
	})
}

// UpdateTaxSettings patches the property tax configuration.
// @Summary Update tax settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateTaxSettingsRequest true "Update Tax Settings Request"
// @Success 200 {object} model.TaxSettings
// @Failure 400 {object} response.Error
// @Router /api/settings/tax [put]
func (handler *Handler) UpdateTaxSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTaxSettings")
	defer scope.End()

	req := dto.UpdateTaxSettingsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	taxSettings, err := handler.service.UpdateTaxSettings(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, taxSettings)
}

// SetStopSell opens or closes a room type for a date.
// @Summary Set a stop-sell flag
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.SetStopSellRequest true "Set Stop Sell Request"
// @Success 200 {object} model.StopSell
// @Failure 400 {object} response.Error
// @Router /api/settings/stop-sell [put]
func (handler *Handler) SetStopSell(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetStopSell")
	defer scope.End()

	req := dto.SetStopSellRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	stopSell, err := handler.service.SetStopSell(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, stopSell)
}
