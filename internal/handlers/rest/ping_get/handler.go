package ping_get

import (
	"net/http"

	"shipment/internal/generated/dto"
	"shipment/internal/handlers/rest/response"
	"shipment/pkg/logger"
)

const pong = "pong"

// Handler ping без обращения к базе и перевозчику, заодно показывает,
// выдает ли сервис настоящие накладные или demo.
type Handler struct {
	log         handlerLogger
	carrierMode dto.PingResponseCarrierMode
}

func New(log handlerLogger, carrierMode string) *Handler {
	return &Handler{
		log:         log.With(),
		carrierMode: dto.PingResponseCarrierMode(carrierMode),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	res := dto.PingResponse{
		Message: &message,
	}
	if h.carrierMode != "" {
		res.CarrierMode = &h.carrierMode
	}

	if err := response.WriteJSON(w, res, http.StatusOK); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
