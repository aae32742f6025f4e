package warehouses_get

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

// ServeHTTP список складов у перевозчика, заодно синхронизирует локальный флаг регистрации.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sync, err := h.service.SyncWarehouses(r.Context())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	var res dto.WarehouseSyncResponse
	res.Success = true
	res.Data.Registered = sync.Registered
	res.Data.Warehouses = make([]dto.CarrierWarehouse, 0, len(sync.CarrierWarehouses))
	for _, wh := range sync.CarrierWarehouses {
		item := dto.CarrierWarehouse{
			Name:   wh.Name,
			Active: &wh.Active,
		}
		if wh.City != "" {
			item.City = &wh.City
		}
		if wh.Pincode != "" {
			item.Pincode = &wh.Pincode
		}
		res.Data.Warehouses = append(res.Data.Warehouses, item)
	}

	err = response.WriteJSON(w, res, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
