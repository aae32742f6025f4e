package shipment_tracking_get

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
	waybill := r.URL.Query().Get("waybill")
	if waybill == "" {
		response.WriteBadRequest(w, h.log, "waybill is required")
		return
	}

	info, err := h.service.TrackShipment(r.Context(), waybill)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	res := dto.TrackingResponse{
		Success: true,
		Data:    trackingToDTO(info),
	}

	err = response.WriteJSON(w, res, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// trackingToDTO "не найдено" у перевозчика не ошибка, а found=false.
func trackingToDTO(info *entities.TrackingInfo) dto.TrackingData {
	data := dto.TrackingData{
		Found: info.Found,
		Scans: response.TrackingScansToDTO(info.Scans),
	}
	if !info.Found {
		return data
	}

	status := response.StatusLabel(info.Status)
	data.Status = &status
	if info.CurrentLocation != "" {
		data.CurrentLocation = &info.CurrentLocation
	}
	data.EstimatedDelivery = info.EstimatedDelivery

	return data
}
