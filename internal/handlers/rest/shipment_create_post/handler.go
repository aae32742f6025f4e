package shipment_create_post

import (
	"encoding/json"
	"net/http"

	"shipment/internal/entities"
	"shipment/internal/generated/dto"
	"shipment/internal/handlers/rest/response"
	"shipment/internal/service/shipment"
	"shipment/pkg/logger"
)

// ActorHeader кто из админов инициировал создание, уходит в reservedBy накладных.
const (
	ActorHeader  = "X-Admin-User"
	defaultActor = "admin"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShipmentRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	actor := r.Header.Get(ActorHeader)
	if actor == "" {
		actor = defaultActor
	}

	createReq := shipment.CreateShipmentRequest{
		OrderID:        req.OrderId,
		ShipmentType:   entities.ShipmentType(req.ShipmentType),
		PickupLocation: req.PickupLocation,
		WeightGrams:    req.Weight,
		LengthCm:       req.Length,
		BreadthCm:      req.Breadth,
		HeightCm:       req.Height,
		Actor:          actor,
	}
	if req.ShippingMode != nil {
		createReq.ShippingMode = entities.ShippingModeType(*req.ShippingMode)
	}
	if req.PackageCount != nil {
		createReq.PackageCount = *req.PackageCount
	}
	if req.CustomFields != nil {
		createReq.CustomFields = *req.CustomFields
	}

	result, err := h.service.CreateShipment(r.Context(), createReq)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	res := dto.CreateShipmentResponse{
		Success:         true,
		WaybillNumbers:  result.WaybillNumbers,
		ShipmentDetails: response.ShipmentToDTO(result.Shipment),
	}

	err = response.WriteJSON(w, res, http.StatusCreated)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
