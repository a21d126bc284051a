package instructor

import (
	"net/http"

	"potteryloop/infras/otel"
	"potteryloop/internal/domains/instructor/model/dto"
	"potteryloop/internal/domains/instructor/service"
	"potteryloop/shared/constant"
	"potteryloop/shared/validator"
	"potteryloop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Instructor
	otel    otel.Otel
}

func New(service service.Instructor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/instructors", func(routerGroup chi.Router) {
		routerGroup.Options("/", handler.Preflight)
		routerGroup.Post("/", handler.CreateApplication)
	})
}

func (handler *Handler) Preflight(writer http.ResponseWriter, request *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}

// CreateApplication stores an instructor application and notifies the studio
// inbox.
func (handler *Handler) CreateApplication(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateApplication")
	defer scope.End()

	req := dto.CreateApplicationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate instructor application")

		response.WithRejection(writer, err, "Failed to process application")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process instructor application")

		response.WithRejection(writer, err, "Failed to process application")

		return
	}

	scope.AddEvent("Instructor application submitted: " + res.ApplicationID)

	response.WithPayload(writer, http.StatusOK, res)
}
