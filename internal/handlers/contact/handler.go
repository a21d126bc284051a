package contact

import (
	"net/http"

	"potteryloop/infras/otel"
	"potteryloop/internal/domains/contact/model/dto"
	"potteryloop/internal/domains/contact/service"
	"potteryloop/shared/constant"
	"potteryloop/shared/validator"
	"potteryloop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Options("/", handler.Preflight)
		routerGroup.Post("/", handler.CreateMessage)
	})
}

func (handler *Handler) Preflight(writer http.ResponseWriter, request *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}

// CreateMessage stores a contact form message and forwards it to the studio
// inbox.
func (handler *Handler) CreateMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	req := dto.CreateMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate contact request")

		response.WithRejection(writer, err, "Failed to send message")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process contact message")

		response.WithRejection(writer, err, "Failed to send message")

		return
	}

	scope.AddEvent("Contact message submitted: " + res.MessageID)

	response.WithPayload(writer, http.StatusOK, res)
}
