package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/session/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/session/service"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/shared/validator"
	"github.com/Lucasteinmann/Aarebooking/transport/http/response"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSession)
		routerGroup.Get("/{id}", handler.GetSession)
		routerGroup.Put("/{id}/date", handler.ChooseDate)
		routerGroup.Put("/{id}/time", handler.ChooseTime)
		routerGroup.Patch("/{id}/quantity", handler.AdjustQuantity)
		routerGroup.Post("/{id}/proceed", handler.Proceed)
		routerGroup.Post("/{id}/back", handler.Back)
		routerGroup.Post("/{id}/confirm", handler.Confirm)
		routerGroup.Delete("/{id}", handler.CloseSession)
	})
}

// CreateSession opens a fresh booking session in the selection step.
// @Summary Create a booking session
// @Description Open a new session for stepping through a booking.
// @Tags Session
// @Accept json
// @Produce json
// @Success 201 {object} dto.SessionResponse "Session"
// @Router /v1/booking-sessions [post]
func (handler *Handler) CreateSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	res, err := handler.service.Create(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetSession returns the current state of a session.
// @Summary Get a booking session
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 404 {object} response.Error
// @Router /v1/booking-sessions/{id} [get]
func (handler *Handler) GetSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChooseDate sets the rental date and starts the availability reload.
// @Summary Choose the rental date
// @Description Set the date; availability for it loads in the background.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ChooseDateRequest true "Choose Date Request"
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{id}/date [put]
func (handler *Handler) ChooseDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseDate")
	defer scope.End()

	req := dto.ChooseDateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ChooseDate(ctx, chi.URLParam(request, constant.RequestParamID), req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to choose date")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChooseTime sets the rental time slot.
// @Summary Choose the time slot
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ChooseTimeRequest true "Choose Time Request"
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{id}/time [put]
func (handler *Handler) ChooseTime(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseTime")
	defer scope.End()

	req := dto.ChooseTimeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ChooseTime(ctx, chi.URLParam(request, constant.RequestParamID), req.Time)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to choose time")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AdjustQuantity changes one line's count by a delta, clamped to [0, available].
// @Summary Adjust a line quantity
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.AdjustQuantityRequest true "Adjust Quantity Request"
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{id}/quantity [patch]
func (handler *Handler) AdjustQuantity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdjustQuantity")
	defer scope.End()

	req := dto.AdjustQuantityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AdjustQuantity(ctx, chi.URLParam(request, constant.RequestParamID), req.ItemID, req.Change)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust quantity")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Proceed freezes the selection and moves the session to details entry.
// @Summary Proceed to details entry
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{id}/proceed [post]
func (handler *Handler) Proceed(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Proceed")
	defer scope.End()

	res, err := handler.service.Proceed(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to proceed session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Back returns a session from details entry to selection.
// @Summary Back to selection
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{id}/back [post]
func (handler *Handler) Back(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	res, err := handler.service.Back(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move session back")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Confirm submits the frozen snapshot with the customer's contact details.
// @Summary Confirm the booking
// @Description Validate contact details and reserve the snapshot atomically.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ConfirmRequest true "Confirm Request"
// @Success 201 {object} bookingDto.SubmitBookingResponse "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-sessions/{id}/confirm [post]
func (handler *Handler) Confirm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	req := dto.ConfirmRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Confirm(ctx, chi.URLParam(request, constant.RequestParamID), req.Contact)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking session confirmed")

	response.WithJSON(writer, http.StatusCreated, res)
}

// CloseSession discards a session and cancels any pending availability load.
// @Summary Close a booking session
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message "Session closed"
// @Failure 404 {object} response.Error
// @Router /v1/booking-sessions/{id} [delete]
func (handler *Handler) CloseSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseSession")
	defer scope.End()

	if err := handler.service.Close(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Session closed")
}
