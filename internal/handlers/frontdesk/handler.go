package frontdesk

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/domains/frontdesk/dto"
	"tide/internal/domains/frontdesk/service"
	"tide/shared"
	"tide/shared/constant"
	"tide/shared/validator"
	"tide/transport/http/response"
)

type Handler struct {
	service service.FrontDesk
	otel    otel.Otel
}

func New(service service.FrontDesk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

// CreateReservation records an inbound booking.
// @Summary Create a reservation
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} model.Reservation
// @Failure 400 {object} response.Error
// @Router /api/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, reservation)
}

// UpdateReservation patches a booking.
// @Summary Update a reservation
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/reservations/{id} [put]
func (handler *Handler) UpdateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}

// DeleteReservation cancels a booking.
// @Summary Delete a reservation
// @Tags FrontDesk
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/reservations/{id} [delete]
func (handler *Handler) DeleteReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
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

	response.WithMessage(writer, http.StatusOK, "Reservation deleted successfully")
}
