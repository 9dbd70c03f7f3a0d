package restaurant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/domains/restaurant/dto"
	"tide/internal/domains/restaurant/service"
	"tide/shared"
	"tide/shared/constant"
	"tide/shared/validator"
	"tide/transport/http/response"
)

type Handler struct {
	service service.Restaurant
	otel    otel.Otel
}

func New(service service.Restaurant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Put("/{id}/status", handler.UpdateOrderStatus)
		routerGroup.Delete("/{id}", handler.DeleteOrder)
	})
}

// CreateOrder places a room-service order.
// @Summary Create an order
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} model.Order
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/orders [post]
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	order, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, order)
}

// UpdateOrderStatus advances an order through its lifecycle.
// @Summary Update order status
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "Update Order Status Request"
// @Success 200 {object} model.Order
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/orders/{id}/status [put]
func (handler *Handler) UpdateOrderStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateOrderStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	order, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, order)
}

// DeleteOrder cancels an order.
// @Summary Delete an order
// @Tags Restaurant
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/orders/{id} [delete]
func (handler *Handler) DeleteOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrder")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Order deleted successfully")
}
