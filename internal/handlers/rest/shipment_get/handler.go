package shipment_get

import (
	"net/http"

	"shipment/internal/entities"
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

// ServeHTTP ровно один из параметров: waybill, shipmentId или orderId.
// По заказу отдается список, по остальным одно отправление.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	waybill := query.Get("waybill")
	shipmentID := query.Get("shipmentId")
	orderID := query.Get("orderId")

	if countNonEmpty(waybill, shipmentID, orderID) != 1 {
		response.WriteBadRequest(w, h.log, "exactly one of waybill, shipmentId, orderId is required")
		return
	}

	var (
		payload any
		err     error
	)
	switch {
	case orderID != "":
		payload, err = h.byOrder(r, orderID)
	case shipmentID != "":
		payload, err = h.one(h.service.GetShipmentByID(r.Context(), shipmentID))
	default:
		payload, err = h.one(h.service.GetShipmentByWaybill(r.Context(), waybill))
	}
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	err = response.WriteJSON(w, payload, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) byOrder(r *http.Request, orderID string) (any, error) {
	shipments, err := h.service.GetShipmentDetails(r.Context(), orderID)
	if err != nil {
		return nil, err
	}
	return dto.ShipmentListResponse{
		Success:   true,
		Shipments: response.ShipmentsToDTO(shipments),
	}, nil
}

func (h *Handler) one(shipment *entities.Shipment, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return dto.ShipmentResponse{
		Success:  true,
		Shipment: response.ShipmentToDTO(shipment),
	}, nil
}

func countNonEmpty(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
