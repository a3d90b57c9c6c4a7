package history

import (
	"net/http"

	"futsal/infras/otel"
	"futsal/internal/domains/history/service"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Logger
	otel    otel.Otel
}

func New(service service.Logger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/histories", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings/{id}", handler.GetBookingHistory)
	})
}

// GetBookingHistory lists the audit trail of a booking.
// @Summary Get booking history
// @Description Retrieve the append-only audit trail of a booking, newest first.
// @Tags History
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingHistoriesResponse] "Booking history entries"
// @Failure 500 {object} response.Error
// @Router /v1/histories/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingHistory")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	histories, err := handler.service.GetBookingHistory(ctx, bookingID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking history retrieved successfully")

	response.WithJSON(w, http.StatusOK, histories)
}
