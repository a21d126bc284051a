package promo

import (
	"encoding/json"
	"net/http"

	"potteryloop/infras/otel"
	"potteryloop/internal/domains/promo/model/dto"
	"potteryloop/internal/domains/promo/service"
	"potteryloop/shared/constant"
	"potteryloop/shared/failure"
	"potteryloop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Promo
	otel    otel.Otel
}

func New(service service.Promo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cybermonday", func(routerGroup chi.Router) {
		routerGroup.Options("/", handler.Preflight)
		routerGroup.Post("/", handler.Spin)
	})
}

func (handler *Handler) Preflight(writer http.ResponseWriter, request *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}

// Spin plays one round of the promotional wheel. Field checks live in the
// service so its rejection messages reach the player verbatim.
func (handler *Handler) Spin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Spin")
	defer scope.End()

	req := dto.SpinRequest{}

	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode spin request")

		response.WithRejection(writer, failure.BadRequest(err), "Something went wrong.")

		return
	}

	res, err := handler.service.Spin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process spin")

		response.WithRejection(writer, err, "Something went wrong.")

		return
	}

	scope.AddEvent("Offer issued: " + res.Code)

	response.WithPayload(writer, http.StatusOK, res)
}
