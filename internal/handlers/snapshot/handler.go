package snapshot

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tide/infras/otel"
	"tide/internal/state/gateway"
	"tide/internal/state/model"
	"tide/internal/state/store"
	"tide/shared/constant"
	"tide/transport/http/response"
)

// Handler serves the whole-state surface: the full snapshot read and
// the destructive reset used to wipe operational data.
type Handler struct {
	gateway gateway.Gateway
	otel    otel.Otel
}

func New(gateway gateway.Gateway, otel otel.Otel) Handler {
	return Handler{
		gateway: gateway,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/data", handler.GetData)
	router.Post("/clear", handler.ClearData)
}

// GetData returns the full application snapshot.
// @Summary Get the full state snapshot
// @Tags Snapshot
// @Produce json
// @Success 200 {object} model.Snapshot
// @Router /api/data [get]
func (handler *Handler) GetData(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetData")
	defer scope.End()

	snap, err := handler.gateway.Snapshot(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, snap)
}

// ClearData wipes all operational data. Room types, tax settings, and
// stop-sell flags survive the reset.
// @Summary Clear all operational data
// @Tags Snapshot
// @Produce json
// @Success 200 {object} response.Message
// @Router /api/clear [post]
func (handler *Handler) ClearData(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearData")
	defer scope.End()

	err := handler.gateway.Commit(ctx, model.SyncLevelWarn, func(s *store.Store) (string, error) {
		s.Clear()

		return "All operational data cleared", nil
	})
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Data cleared successfully")
}
