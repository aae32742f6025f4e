package label_get

import (
	"fmt"
	"net/http"
	"strconv"

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

// ServeHTTP pdf=true отдает сам документ, иначе сырые данные этикетки в конверте.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	waybill := query.Get("waybill")
	if waybill == "" {
		response.WriteBadRequest(w, h.log, "waybill is required")
		return
	}

	opts := entities.LabelOptions{
		Size: entities.LabelSize(query.Get("pdf_size")),
	}
	if raw := query.Get("pdf"); raw != "" {
		pdf, err := strconv.ParseBool(raw)
		if err != nil {
			response.WriteBadRequest(w, h.log, "pdf must be a boolean")
			return
		}
		opts.PDF = pdf
	}

	label, err := h.service.GenerateShippingLabel(r.Context(), waybill, opts)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	if opts.PDF && len(label.Document) > 0 {
		h.writePDF(w, label)
		return
	}

	var res dto.LabelResponse
	res.Success = true
	res.Data.Waybill = label.Waybill
	if label.DownloadURL != "" {
		res.Data.DownloadUrl = &label.DownloadURL
	}
	if len(label.Data) > 0 {
		res.Data.LabelData = &label.Data
	}

	err = response.WriteJSON(w, res, http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writePDF(w http.ResponseWriter, label *entities.Label) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", label.Waybill+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(label.Document)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(label.Document); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("waybill", label.Waybill),
		).Error("write label document")
	}
}
