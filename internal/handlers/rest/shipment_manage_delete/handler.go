package shipment_manage_delete

import (
	"net/http"

	"shipment/internal/generated/dto"
	"shipment/internal/handlers/rest/response"
	"shipment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отмена отправления по накладной, сама запись не удаляется.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	waybill := r.URL.Query().Get("waybill")
	if waybill == "" {
		response.WriteBadRequest(w, h.log, "waybill is required")
		return
	}

	shipment, err := h.service.CancelShipmentByWaybill(r.Context(), waybill)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("waybill", waybill),
		logger.NewField("shipment", shipment.ID),
	).Info("shipment cancelled")

	res := dto.ShipmentResponse{
		Success:  true,
		Shipment: response.ShipmentToDTO(shipment),
	}

	err = response.WriteJSON(w, res, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
