package hotel

import (
	"net/http"
	"tm30/infras/otel"
	"tm30/internal/domains/roomkey/service"
	"tm30/shared/constant"
	"tm30/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomKeyService
	otel    otel.Otel
}

func New(service service.RoomKeyService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotels", handler.GetHotels)
}

// GetHotels lists hotels with their currently bookable rooms.
// @Summary List hotels and available rooms
// @Description Retrieve every hotel with its enabled room numbers and key codes.
// @Tags Hotel
// @Produce json
// @Success 200 {object} dto.HotelList
// @Failure 500 {object} response.Error
// @Router /hotels [get]
func (handler *Handler) GetHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	result, err := handler.service.ListHotels(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list hotels")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(writer, http.StatusOK, result)
}
