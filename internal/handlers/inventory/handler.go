package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/domains/inventory/dto"
	"tide/internal/domains/inventory/service"
	"tide/shared"
	"tide/shared/constant"
	"tide/shared/validator"
	"tide/transport/http/response"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Put("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Post("/{id}/assign", handler.AssignGuest)
		routerGroup.Post("/{id}/vacate", handler.VacateRoom)
	})
}

// CreateRoomType registers a new room category.
// @Summary Create a room type
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} model.RoomType
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/room-types [post]
func (handler *Handler) CreateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	roomType, err := handler.service.CreateRoomType(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, roomType)
}

// UpdateRoomType patches a room category.
// @Summary Update a room type
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Room type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} model.RoomType
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/room-types/{id} [put]
func (handler *Handler) UpdateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	roomType, err := handler.service.UpdateRoomType(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomType)
}

// DeleteRoomType removes an unused room category.
// @Summary Delete a room type
// @Tags Inventory
// @Produce json
// @Param id path int true "Room type ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/room-types/{id} [delete]
func (handler *Handler) DeleteRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteRoomType(ctx, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room type deleted successfully")
}

// CreateRoom adds a room to the inventory.
// @Summary Create a room
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} model.Room
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/rooms [post]
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.CreateRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, room)
}

// UpdateRoom patches a room, including lifecycle status changes.
// @Summary Update a room
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} model.Room
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/rooms/{id} [put]
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.UpdateRoom(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}

// DeleteRoom removes a room from the inventory.
// @Summary Delete a room
// @Tags Inventory
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/rooms/{id} [delete]
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteRoom(ctx, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room deleted successfully")
}

// AssignGuest checks a guest into a room.
// @Summary Assign a guest to a room
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.AssignGuestRequest true "Assign Guest Request"
// @Success 200 {object} model.Room
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/rooms/{id}/assign [post]
func (handler *Handler) AssignGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignGuest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.AssignGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.AssignGuest(ctx, id, req.GuestID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}

// VacateRoom returns an occupied room to vacant.
// @Summary Vacate a room
// @Tags Inventory
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} model.Room
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/rooms/{id}/vacate [post]
func (handler *Handler) VacateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VacateRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	room, err := handler.service.VacateRoom(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}
