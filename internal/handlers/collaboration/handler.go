package collaboration

import (
	"net/http"

	"potteryloop/infras/otel"
	"potteryloop/internal/domains/collaboration/model/dto"
	"potteryloop/internal/domains/collaboration/service"
	"potteryloop/shared/constant"
	"potteryloop/shared/validator"
	"potteryloop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Collaboration
	otel    otel.Otel
}

func New(service service.Collaboration, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/collaborations", func(routerGroup chi.Router) {
		routerGroup.Options("/", handler.Preflight)
		routerGroup.Post("/", handler.CreateInquiry)
	})
}

func (handler *Handler) Preflight(writer http.ResponseWriter, request *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}

// CreateInquiry stores a collaboration inquiry and notifies the studio inbox.
func (handler *Handler) CreateInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate collaboration request")

		response.WithRejection(writer, err, "Failed to process collaboration inquiry")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process collaboration inquiry")

		response.WithRejection(writer, err, "Failed to process collaboration inquiry")

		return
	}

	scope.AddEvent("Collaboration inquiry submitted: " + res.CollaborationID)

	response.WithPayload(writer, http.StatusOK, res)
}
