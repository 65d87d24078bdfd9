package rates

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tripgate/infras/otel"
	"tripgate/internal/domains/rates/service"
	"tripgate/shared/constant"
	"tripgate/transport/http/response"
)

type Handler struct {
	service service.Rates
	otel    otel.Otel
}

func New(service service.Rates, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/exchange-rates", handler.ListRates)
}

// ListRates retrieves the exchange-rate table.
// @Summary List exchange rates
// @Description Retrieve the table of currency codes and their USD rates.
// @Tags Rates
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]model.Rate] "Exchange rates"
// @Failure 502 {object} response.Error
// @Router /v1/exchange-rates [get]
func (handler *Handler) ListRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRates")
	defer scope.End()

	rates, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list exchange rates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rates)
}
