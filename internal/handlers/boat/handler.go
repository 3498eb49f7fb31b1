package boat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/boat/service"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	gDto "github.com/Lucasteinmann/Aarebooking/shared/dto"
	"github.com/Lucasteinmann/Aarebooking/shared/validator"
	"github.com/Lucasteinmann/Aarebooking/transport/http/response"
)

type Handler struct {
	service service.Boat
	otel    otel.Otel
}

func New(service service.Boat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/boats", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBoat)
		routerGroup.Get("/", handler.GetBoats)
		routerGroup.Get("/{id}", handler.GetBoatByID)
		routerGroup.Patch("/{id}", handler.UpdateBoat)
		routerGroup.Delete("/{id}", handler.DeleteBoat)
	})
}

// CreateBoat registers a new craft type in the rental catalog.
// @Summary Create a new boat
// @Description Register a craft type with its unit price and inventory.
// @Tags Boat
// @Accept json
// @Produce json
// @Param request body dto.CreateBoatRequest true "Create Boat Request"
// @Success 201 {object} response.Message "Boat created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/boats [post]
func (handler *Handler) CreateBoat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBoat")
	defer scope.End()

	req := dto.CreateBoatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create boat")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Boat created successfully")
}

// GetBoats lists catalog entries with pagination and name filtering.
// @Summary Get all boats
// @Description Retrieve catalog entries with optional filtering and pagination.
// @Tags Boat
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetBoatsResponse "List of boats"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/boats [get]
func (handler *Handler) GetBoats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoats")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := request.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get boats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBoatByID returns a single catalog entry.
// @Summary Get a boat
// @Description Retrieve one catalog entry by its identifier.
// @Tags Boat
// @Accept json
// @Produce json
// @Param id path string true "Boat ID"
// @Success 200 {object} dto.BoatResponse "Boat"
// @Failure 404 {object} response.Error
// @Router /v1/boats/{id} [get]
func (handler *Handler) GetBoatByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoatByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get boat")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBoat changes price, inventory or active state of a catalog entry.
// @Summary Update a boat
// @Description Update selected fields of one catalog entry.
// @Tags Boat
// @Accept json
// @Produce json
// @Param id path string true "Boat ID"
// @Param request body dto.UpdateBoatRequest true "Update Boat Request"
// @Success 200 {object} response.Message "Boat updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/boats/{id} [patch]
func (handler *Handler) UpdateBoat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBoat")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateBoatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update boat")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Boat updated successfully")
}

// DeleteBoat removes a catalog entry.
// @Summary Delete a boat
// @Description Remove one catalog entry. Existing booking lines keep their item id.
// @Tags Boat
// @Accept json
// @Produce json
// @Param id path string true "Boat ID"
// @Success 200 {object} response.Message "Boat deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/boats/{id} [delete]
func (handler *Handler) DeleteBoat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBoat")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete boat")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Boat deleted successfully")
}
