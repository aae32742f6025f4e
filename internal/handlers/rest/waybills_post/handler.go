package waybills_post

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
	var req dto.GenerateWaybillsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	var mode entities.WaybillFetchMode
	if req.Mode != nil {
		mode = entities.WaybillFetchMode(*req.Mode)
	}

	waybills, err := h.service.GenerateWaybills(r.Context(), req.Count, mode)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	var res dto.WaybillsResponse
	res.Success = true
	res.Data.Waybills = make([]dto.Waybill, 0, len(waybills))
	for _, wb := range waybills {
		res.Data.Waybills = append(res.Data.Waybills, dto.Waybill{
			Code:   wb.Code,
			Status: wb.Status.String(),
			Source: wb.Source.String(),
		})
	}

	err = response.WriteJSON(w, res, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
