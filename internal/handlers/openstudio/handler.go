package openstudio

import (
	"net/http"

	"potteryloop/infras/otel"
	"potteryloop/internal/domains/openstudio/model/dto"
	"potteryloop/internal/domains/openstudio/service"
	"potteryloop/shared/constant"
	"potteryloop/shared/validator"
	"potteryloop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.OpenStudio
	otel    otel.Otel
}

func New(service service.OpenStudio, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/open-studio", func(routerGroup chi.Router) {
		routerGroup.Options("/", handler.Preflight)
		routerGroup.Post("/", handler.CreateWaitlistRequest)
	})
}

func (handler *Handler) Preflight(writer http.ResponseWriter, request *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}

// CreateWaitlistRequest stores an open studio waitlist signup and notifies
// the studio inbox.
func (handler *Handler) CreateWaitlistRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWaitlistRequest")
	defer scope.End()

	req := dto.CreateWaitlistRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate waitlist request")

		response.WithRejection(writer, err, "Failed to process waitlist request")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process waitlist request")

		response.WithRejection(writer, err, "Failed to process waitlist request")

		return
	}

	scope.AddEvent("Waitlist request submitted: " + res.WaitlistID)

	response.WithPayload(writer, http.StatusOK, res)
}
