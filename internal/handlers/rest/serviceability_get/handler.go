package serviceability_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pincode := query.Get("pincode")
	if pincode == "" {
		response.WriteBadRequest(w, h.log, "pincode is required")
		return
	}
	productType := entities.ProductType(query.Get("productType"))

	result, err := h.service.CheckServiceability(r.Context(), pincode, productType)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	data := dto.ServiceabilityData{
		Pincode:     result.Pincode,
		Serviceable: result.Serviceable,
		Cod:         result.COD,
		Prepaid:     result.Prepaid,
		Pickup:      result.Pickup,
	}
	// embargo и remark отдаем только когда они есть
	if result.Embargo {
		data.Embargo = &result.Embargo
	}
	if result.Remark != "" {
		data.Remark = &result.Remark
	}
	if result.City != "" {
		data.City = &result.City
	}
	if result.State != "" {
		data.State = &result.State
	}

	res := dto.ServiceabilityResponse{
		Success: true,
		Data:    data,
	}

	err = response.WriteJSON(w, res, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
