package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/service"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
	"github.com/Lucasteinmann/Aarebooking/shared/validator"
	"github.com/Lucasteinmann/Aarebooking/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)
	router.Get("/slots", handler.GetTimeSlots)
	router.Post("/bookings", handler.SubmitBooking)
}

// GetAvailability returns remaining inventory per craft type for one date.
// @Summary Get availability for a date
// @Description Remaining inventory per catalog item on the given rental date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date query string true "Rental date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetAvailabilityResponse "Availability"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	date := request.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		err := failure.BadRequestFromString("date query parameter is required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AvailabilityForDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTimeSlots lists the bookable time slots of a rental day.
// @Summary Get time slots
// @Description The "HH:MM" slots bookings can start at.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {array} string "Time slots"
// @Router /v1/slots [get]
func (handler *Handler) GetTimeSlots(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeSlots")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.TimeSlots())
}

// SubmitBooking validates and persists a booking atomically.
// @Summary Submit a booking
// @Description Reserve one or more craft for a date and time slot. All lines land or none do.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Submit Booking Request"
// @Success 201 {object} dto.SubmitBookingResponse "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking confirmed for " + res.Date)

	response.WithJSON(writer, http.StatusCreated, res)
}
