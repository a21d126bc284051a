package booking

import (
	"net/http"

	"potteryloop/infras/otel"
	"potteryloop/internal/domains/booking/model/dto"
	"potteryloop/internal/domains/booking/service"
	"potteryloop/shared/constant"
	"potteryloop/shared/validator"
	"potteryloop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Options("/", handler.Preflight)
		routerGroup.Post("/", handler.CreateBooking)
	})
}

// Preflight answers the CORS probe the site sends before each POST.
func (handler *Handler) Preflight(writer http.ResponseWriter, request *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}

// CreateBooking accepts the wizard's aggregate payload, stores it, and
// notifies the studio inbox.
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking request")

		response.WithRejection(writer, err, "Failed to process booking")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process booking")

		response.WithRejection(writer, err, "Failed to process booking")

		return
	}

	scope.AddEvent("Booking submitted: " + res.BookingID)

	response.WithPayload(writer, http.StatusOK, res)
}
