package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipment/internal/gateway/delhivery"
	"shipment/internal/generated/dto"
	"shipment/internal/service/shipment"
	"shipment/internal/service/warehouse"
	"shipment/internal/service/waybill"
	"shipment/pkg/logger"
)

const internalErrorMessage = "internal error"

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// WriteBadRequest для ошибок разбора запроса до вызова сервиса.
func WriteBadRequest(w http.ResponseWriter, log errorLogger, message string) {
	write(w, log, http.StatusBadRequest, dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// WriteError переводит ошибку сервиса в HTTP статус и конверт {success:false, error}.
// Текст перевозчика отдается как есть, внутренние ошибки наружу не раскрываются.
func WriteError(w http.ResponseWriter, log errorLogger, err error) {
	code := StatusCode(err)

	res := dto.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	}

	var carrierErr *delhivery.CarrierError
	if errors.As(err, &carrierErr) {
		res.Error = carrierErr.Message
		res.Code = &carrierErr.Code
	}

	if code >= http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
			logger.NewField("status", code),
		).Error("request failed")

		if code == http.StatusInternalServerError {
			res.Error = internalErrorMessage
			res.Code = nil
		}
	}

	write(w, log, code, res)
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, shipment.ErrValidation),
		errors.Is(err, shipment.ErrInvalidOrderID),
		errors.Is(err, shipment.ErrInvalidWaybill),
		errors.Is(err, shipment.ErrInvalidShipmentID),
		errors.Is(err, shipment.ErrInvalidPackageCount),
		errors.Is(err, shipment.ErrInvalidProductType),
		errors.Is(err, shipment.ErrNothingToUpdate),
		errors.Is(err, waybill.ErrInvalidCount),
		errors.Is(err, waybill.ErrInvalidCode),
		errors.Is(err, waybill.ErrInvalidFetchMode),
		errors.Is(err, warehouse.ErrInvalidName),
		errors.Is(err, delhivery.ErrInvalidPincode),
		errors.Is(err, delhivery.ErrInvalidRequest):
		return http.StatusBadRequest

	case errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, shipment.ErrOrderNotFound),
		errors.Is(err, shipment.ErrWarehouseNotFound),
		errors.Is(err, warehouse.ErrWarehouseNotFound),
		errors.Is(err, waybill.ErrWaybillNotFound),
		errors.Is(err, delhivery.ErrLabelNotAvailable):
		return http.StatusNotFound

	// до бизнес-ошибок перевозчика: ErrStateNotAllowed у них общий
	case errors.Is(err, shipment.ErrStateNotAllowed),
		errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, shipment.ErrOrderStatusNotAllowed),
		errors.Is(err, shipment.ErrActiveShipmentExists),
		errors.Is(err, shipment.ErrShipmentConflict),
		errors.Is(err, shipment.ErrWarehouseInactive),
		errors.Is(err, warehouse.ErrWarehouseInactive):
		return http.StatusConflict

	case errors.Is(err, delhivery.ErrCarrierRejected),
		errors.Is(err, delhivery.ErrNoStrategySucceeded):
		return http.StatusUnprocessableEntity

	case errors.Is(err, delhivery.ErrNotConfigured),
		errors.Is(err, waybill.ErrPoolExhausted),
		errors.Is(err, waybill.ErrCarrierNoStock):
		return http.StatusServiceUnavailable

	case errors.Is(err, delhivery.ErrTransport),
		errors.Is(err, delhivery.ErrMalformedResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, log errorLogger, code int, payload any) {
	if err := WriteJSON(w, payload, code); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
