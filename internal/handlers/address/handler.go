package address

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/address/service"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/transport/http/response"
)

type Handler struct {
	service service.Address
	otel    otel.Otel
}

func New(service service.Address, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/address-suggestions", handler.GetSuggestions)
}

// GetSuggestions returns address completions for the contact form.
// @Summary Suggest addresses
// @Description Address completions for the typed text. With the provider disabled the text echoes back.
// @Tags Address
// @Produce json
// @Param query query string true "Typed address text"
// @Success 200 {object} dto.GetSuggestionsResponse "Suggestions"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/address-suggestions [get]
func (handler *Handler) GetSuggestions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSuggestions")
	defer scope.End()

	res, err := handler.service.Suggest(ctx, request.URL.Query().Get("query"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get address suggestions")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
