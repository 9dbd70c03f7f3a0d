package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/domains/guest/dto"
	"tide/internal/domains/guest/service"
	"tide/shared"
	"tide/shared/constant"
	"tide/shared/validator"
	"tide/transport/http/response"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Put("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
		routerGroup.Post("/{id}/loyalty/points", handler.AddLoyaltyPoints)
		routerGroup.Put("/{id}/loyalty/tier", handler.SetLoyaltyTier)
	})

	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTransaction)
		routerGroup.Delete("/{id}", handler.DeleteTransaction)
	})

	router.Post("/walk-ins", handler.CreateWalkIn)
}

// CreateGuest checks a guest in.
// @Summary Create a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} model.Guest
// @Failure 400 {object} response.Error
// @Router /api/guests [post]
func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, guest)
}

// UpdateGuest patches a guest's record.
// @Summary Update a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} model.Guest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/guests/{id} [put]
func (handler *Handler) UpdateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guest)
}

// DeleteGuest removes a guest and all of their transactions.
// @Summary Delete a guest
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/guests/{id} [delete]
func (handler *Handler) DeleteGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
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

	response.WithMessage(writer, http.StatusOK, "Guest deleted successfully")
}

// AddLoyaltyPoints adjusts a guest's loyalty balance.
// @Summary Add or redeem loyalty points
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.AddLoyaltyPointsRequest true "Loyalty Points Request"
// @Success 200 {object} model.Guest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/guests/{id}/loyalty/points [post]
func (handler *Handler) AddLoyaltyPoints(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddLoyaltyPoints")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.AddLoyaltyPointsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.AddLoyaltyPoints(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guest)
}

// SetLoyaltyTier sets a guest's tier explicitly.
// @Summary Set loyalty tier
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.SetLoyaltyTierRequest true "Loyalty Tier Request"
// @Success 200 {object} model.Guest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/guests/{id}/loyalty/tier [put]
func (handler *Handler) SetLoyaltyTier(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetLoyaltyTier")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.SetLoyaltyTierRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.SetLoyaltyTier(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guest)
}

// CreateTransaction posts a folio charge or credit to a guest.
// @Summary Create a transaction
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/transactions [post]
func (handler *Handler) CreateTransaction(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransaction")
	defer scope.End()

	req := dto.CreateTransactionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	txn, err := handler.service.AddTransaction(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, txn)
}

// DeleteTransaction removes a posted folio line.
// @Summary Delete a transaction
// @Tags Guest
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/transactions/{id} [delete]
func (handler *Handler) DeleteTransaction(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTransaction")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteTransaction(ctx, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Transaction deleted successfully")
}

// CreateWalkIn records a point-of-sale transaction for a non-resident.
// @Summary Create a walk-in transaction
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateWalkInRequest true "Create Walk-In Request"
// @Success 201 {object} model.WalkInTransaction
// @Failure 400 {object} response.Error
// @Router /api/walk-ins [post]
func (handler *Handler) CreateWalkIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWalkIn")
	defer scope.End()

	req := dto.CreateWalkInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	walkIn, err := handler.service.CreateWalkIn(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, walkIn)
}
