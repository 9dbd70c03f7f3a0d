package maintenance

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/domains/maintenance/dto"
	"tide/internal/domains/maintenance/service"
	"tide/shared"
	"tide/shared/constant"
	"tide/shared/validator"
	"tide/transport/http/response"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Put("/{id}", handler.UpdateRequest)
		routerGroup.Delete("/{id}", handler.DeleteRequest)
	})
}

// CreateRequest files a maintenance request.
// @Summary Create a maintenance request
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Create Maintenance Request"
// @Success 201 {object} model.MaintenanceRequest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/maintenance [post]
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	maintenanceRequest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, maintenanceRequest)
}

// UpdateRequest patches a maintenance request.
// @Summary Update a maintenance request
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body dto.UpdateRequestRequest true "Update Maintenance Request"
// @Success 200 {object} model.MaintenanceRequest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/maintenance/{id} [put]
func (handler *Handler) UpdateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRequest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	maintenanceRequest, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, maintenanceRequest)
}

// DeleteRequest removes a maintenance request.
// @Summary Delete a maintenance request
// @Tags Maintenance
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/maintenance/{id} [delete]
func (handler *Handler) DeleteRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRequest")
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

	response.WithMessage(writer, http.StatusOK, "Maintenance request deleted successfully")
}
