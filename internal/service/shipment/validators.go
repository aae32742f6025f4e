package shipment

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"shipment/internal/entities"
)

var validate = validator.New()

func validateCreateRequest(req CreateShipmentRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// packageCountFor mps это минимум две посылки, остальные типы ровно одна.
func packageCountFor(shipmentType entities.ShipmentType, requested int) (int, error) {
	if shipmentType == entities.ShipmentMPS {
		if requested < 2 {
			return 0, ErrInvalidPackageCount
		}
		return requested, nil
	}
	if requested > 1 {
		return 0, ErrInvalidPackageCount
	}
	return 1, nil
}

// orderAllows прямые отправления только для подтвержденных заказов, обратные только после доставки.
func orderAllows(shipmentType entities.ShipmentType, status entities.OrderStatusType) bool {
	switch shipmentType {
	case entities.ShipmentForward, entities.ShipmentMPS:
		return status == entities.OrderConfirmed || status == entities.OrderProcessing
	case entities.ShipmentReverse, entities.ShipmentReplacement:
		return status == entities.OrderDelivered
	default:
		return false
	}
}

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidLabelSize(size entities.LabelSize) bool {
	return size == entities.LabelSizeA4 || size == entities.LabelSize4R
}
