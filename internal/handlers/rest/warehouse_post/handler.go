package warehouse_post

import (
	"encoding/json"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterWarehouseRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	registration, err := h.service.RegisterWarehouse(r.Context(), req.Name)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("warehouse", registration.Name),
		logger.NewField("strategy", registration.Strategy),
	).Info("warehouse registered with carrier")

	var res dto.RegisterWarehouseResponse
	res.Success = true
	res.Data.Name = registration.Name
	res.Data.Strategy = registration.Strategy
	if registration.Message != "" {
		res.Data.Message = &registration.Message
	}

	err = response.WriteJSON(w, res, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
