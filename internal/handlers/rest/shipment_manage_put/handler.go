package shipment_manage_put

import (
	"encoding/json"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ManageShipmentRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	shipment, err := h.service.UpdateShipment(r.Context(), req.Waybill, editToEntity(req.EditData))
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

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

func editToEntity(data dto.ShipmentEditData) entities.ShipmentEdit {
	edit := entities.ShipmentEdit{
		Name:               data.Name,
		Phone:              data.Phone,
		Address:            data.Address,
		CODAmount:          data.CodAmount,
		WeightGrams:        data.Weight,
		LengthCm:           data.Length,
		BreadthCm:          data.Breadth,
		HeightCm:           data.Height,
		ProductDescription: data.ProductDescription,
	}
	if data.PaymentMode != nil {
		mode := entities.PaymentModeType(*data.PaymentMode)
		edit.PaymentMode = &mode
	}
	return edit
}
