package delhivery

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"shipment/internal/entities"
)

// Перевозчик отдает время без зоны, подразумевая IST.
var istLocation = time.FixedZone("IST", 5*60*60+30*60)

const carrierTimeLayout = "2006-01-02T15:04:05"

var carrierTimeLayouts = []string{
	"2006-01-02T15:04:05.000",
	carrierTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseCarrierTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), true
	}
	for _, layout := range carrierTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, istLocation); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// mapStatus сводит текст статуса и StatusType перевозчика к нашему словарю.
// ok=false для статусов, которые не двигают state machine.
func mapStatus(status, statusType string) (entities.ShipmentStatusType, bool) {
	s := strings.ToLower(strings.TrimSpace(status))
	st := strings.ToUpper(strings.TrimSpace(statusType))

	switch {
	case st == "DL" || s == "delivered":
		return entities.ShipmentDelivered, true
	case st == "RT" || strings.HasPrefix(s, "rto") || s == "returned":
		return entities.ShipmentReturnToOrigin, true
	case st == "CN" || s == "cancelled" || s == "canceled":
		return entities.ShipmentCancelled, true
	}

	switch s {
	case "manifested", "not picked", "open":
		return entities.ShipmentManifested, true
	case "in transit", "dispatched", "pending", "scheduled":
		return entities.ShipmentInTransit, true
	}
	return "", false
}

func toTrackingInfo(waybill string, resp *TrackingResponse) *entities.TrackingInfo {
	info := &entities.TrackingInfo{
		Waybill: waybill,
		Raw:     resp.Raw,
	}
	if len(resp.ShipmentData) == 0 {
		return info
	}

	shipment := resp.ShipmentData[0].Shipment
	info.Found = true
	if shipment.AWB != "" {
		info.Waybill = shipment.AWB
	}
	info.RawStatus = shipment.Status.Status
	info.CurrentLocation = shipment.Status.StatusLocation
	if status, ok := mapStatus(shipment.Status.Status, shipment.Status.StatusType); ok {
		info.Status = status
	}

	for _, candidate := range []string{shipment.ExpectedDeliveryDate, shipment.PromisedDeliveryDate} {
		if t, ok := parseCarrierTime(candidate); ok {
			info.EstimatedDelivery = &t
			break
		}
	}

	info.Scans = make([]entities.TrackingScan, 0, len(shipment.Scans))
	for _, scan := range shipment.Scans {
		detail := scan.ScanDetail
		occurredAt, ok := parseCarrierTime(detail.ScanDateTime)
		if !ok {
			occurredAt, ok = parseCarrierTime(detail.StatusDateTime)
		}
		if !ok {
			continue
		}
		info.Scans = append(info.Scans, entities.TrackingScan{
			OccurredAt:  occurredAt,
			Status:      detail.Scan,
			Location:    detail.ScannedLocation,
			Description: detail.Instructions,
		})
	}
	sort.SliceStable(info.Scans, func(i, j int) bool {
		return info.Scans[i].OccurredAt.Before(info.Scans[j].OccurredAt)
	})

	return info
}

func paymentModeToWire(mode entities.PaymentModeType, shipmentType entities.ShipmentType) string {
	switch shipmentType {
	case entities.ShipmentReverse:
		return "Pickup"
	case entities.ShipmentReplacement:
		return "REPL"
	}

	switch mode {
	case entities.PaymentCOD:
		return "COD"
	case entities.PaymentPickup:
		return "Pickup"
	case entities.PaymentREPL:
		return "REPL"
	default:
		return "Prepaid"
	}
}

func shippingModeToWire(mode entities.ShippingModeType) string {
	if mode == entities.ShippingExpress {
		return "Express"
	}
	return "Surface"
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// toManifestRequest для mps одна запись на накладную, связанная через master_id.
func toManifestRequest(m entities.Manifest) *ManifestRequest {
	waybills := m.Waybills
	if len(waybills) == 0 && m.PrimaryWaybill != "" {
		waybills = []string{m.PrimaryWaybill}
	}

	codAmount := 0.0
	if m.Package.PaymentMode == entities.PaymentCOD && m.Type != entities.ShipmentReverse {
		codAmount = m.Package.CODAmount
	}

	base := ManifestShipment{
		Order:          m.OrderID,
		Name:           m.Consignee.Name,
		Address:        m.Consignee.Address,
		Pin:            m.Consignee.Pincode,
		City:           m.Consignee.City,
		State:          m.Consignee.State,
		Country:        defaultString(m.Consignee.Country, "India"),
		Phone:          m.Consignee.Phone,
		PaymentMode:    paymentModeToWire(m.Package.PaymentMode, m.Type),
		CODAmount:      formatAmount(codAmount),
		TotalAmount:    formatAmount(m.TotalAmount),
		ProductsDesc:   m.ProductDescription,
		HSNCode:        m.HSNCode,
		Quantity:       strconv.Itoa(max(m.Package.Quantity, 1)),
		Weight:         formatMeasure(m.Package.WeightGrams),
		ShipmentLength: formatMeasure(m.Package.LengthCm),
		ShipmentWidth:  formatMeasure(m.Package.BreadthCm),
		ShipmentHeight: formatMeasure(m.Package.HeightCm),
		ShippingMode:   shippingModeToWire(m.Package.ShippingMode),
		OrderDate:      m.ManifestDate.In(istLocation).Format(carrierTimeLayout),
		ReturnName:     m.PickupLocation.Name,
		ReturnAddress:  defaultString(m.PickupLocation.ReturnAddress, m.PickupLocation.Address),
		ReturnPin:      defaultString(m.PickupLocation.ReturnPincode, m.PickupLocation.Pincode),
		ReturnCity:     defaultString(m.PickupLocation.ReturnCity, m.PickupLocation.City),
		ReturnState:    defaultString(m.PickupLocation.ReturnState, m.PickupLocation.State),
		ReturnCountry:  defaultString(m.PickupLocation.Country, "India"),
		ReturnPhone:    m.PickupLocation.Phone,
	}
	if !m.OrderDate.IsZero() {
		base.OrderDate = m.OrderDate.In(istLocation).Format(carrierTimeLayout)
	}
	if !m.EstimatedDeliveryDate.IsZero() {
		base.EndDate = m.EstimatedDeliveryDate.In(istLocation).Format(carrierTimeLayout)
	}
	applyCustomFields(&base, m.CustomFields)

	req := &ManifestRequest{
		PickupLocation: PickupLocation{Name: m.PickupLocation.Name},
		Shipments:      make([]ManifestShipment, 0, len(waybills)),
	}

	for _, code := range waybills {
		s := base
		s.Waybill = code
		if m.Type == entities.ShipmentMPS {
			s.MasterID = m.PrimaryWaybill
			s.MPSChildren = strconv.Itoa(len(waybills))
			s.MPSAmount = formatAmount(codAmount)
		}
		req.Shipments = append(req.Shipments, s)
	}
	return req
}

// applyCustomFields перевозчик принимает только известные ему ключи, остальные игнорируем.
func applyCustomFields(s *ManifestShipment, fields map[string]string) {
	for key, value := range fields {
		switch key {
		case "seller_name":
			s.SellerName = value
		case "seller_add":
			s.SellerAddress = value
		case "address_type":
			s.AddressType = value
		case "return_name":
			s.ReturnName = value
		case "return_phone":
			s.ReturnPhone = value
		}
	}
}

func toManifestResult(resp *ManifestResponse) *entities.ManifestResult {
	result := &entities.ManifestResult{
		Success:  resp.Success,
		Remark:   resp.Remark.Join(),
		Raw:      resp.Raw,
		Packages: make([]entities.ManifestPackage, 0, len(resp.Packages)),
	}
	for _, p := range resp.Packages {
		result.Packages = append(result.Packages, entities.ManifestPackage{
			Waybill: p.Waybill,
			Status:  p.Status,
			Remarks: []string(p.Remarks),
		})
	}
	return result
}

// manifestRejection текст отказа: общий rmk плюс remarks упавших пакетов.
func manifestRejection(resp *ManifestResponse) string {
	parts := make([]string, 0, len(resp.Packages)+1)
	if remark := resp.Remark.Join(); remark != "" {
		parts = append(parts, remark)
	}
	for _, p := range resp.Packages {
		if strings.EqualFold(p.Status, "success") || len(p.Remarks) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", p.Waybill, p.Remarks.Join()))
	}
	if len(parts) == 0 {
		return "manifest rejected"
	}
	return strings.Join(parts, "; ")
}

func toEditRequest(waybill string, edit entities.ShipmentEdit) *EditRequest {
	req := &EditRequest{Waybill: waybill}

	if edit.Name != nil {
		req.Name = *edit.Name
	}
	if edit.Phone != nil {
		req.Phone = *edit.Phone
	}
	if edit.Address != nil {
		req.Address = *edit.Address
	}
	if edit.PaymentMode != nil {
		req.PaymentType = paymentModeToWire(*edit.PaymentMode, entities.ShipmentForward)
	}
	if edit.CODAmount != nil {
		req.CODAmount = formatAmount(*edit.CODAmount)
	}
	if edit.WeightGrams != nil {
		req.Weight = formatMeasure(*edit.WeightGrams)
	}
	if edit.LengthCm != nil {
		req.ShipmentLength = formatMeasure(*edit.LengthCm)
	}
	if edit.BreadthCm != nil {
		req.ShipmentWidth = formatMeasure(*edit.BreadthCm)
	}
	if edit.HeightCm != nil {
		req.ShipmentHeight = formatMeasure(*edit.HeightCm)
	}
	if edit.ProductDescription != nil {
		req.ProductsDesc = *edit.ProductDescription
	}
	return req
}

func isEmbargo(remark string) bool {
	return strings.Contains(strings.ToLower(remark), "embargo")
}

func isYes(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "y")
}

func toServiceability(pincode string, resp *PincodeResponse) *entities.Serviceability {
	result := &entities.Serviceability{Pincode: pincode}

	for _, code := range resp.DeliveryCodes {
		pc := code.PostalCode
		if pc.Pin != "" && pc.Pin.String() != pincode {
			continue
		}

		result.Prepaid = isYes(pc.PrePaid)
		result.COD = isYes(pc.COD)
		result.Pickup = isYes(pc.Pickup)
		result.Remark = pc.Remarks
		result.Embargo = isEmbargo(pc.Remarks)
		result.City = defaultString(pc.City, pc.District)
		result.State = pc.StateCode
		result.Serviceable = (result.Prepaid || result.COD) && !result.Embargo
		return result
	}

	result.Remark = "pincode is not serviceable"
	return result
}

func toHeavyServiceability(pincode string, entries []HeavyPincodeEntry) *entities.Serviceability {
	result := &entities.Serviceability{Pincode: pincode}

	for _, entry := range entries {
		if entry.Pincode != "" && entry.Pincode.String() != pincode {
			continue
		}

		payment := strings.ToLower(entry.PaymentType)
		result.COD = strings.Contains(payment, "cod")
		result.Prepaid = strings.Contains(payment, "prepaid")
		result.Pickup = entry.Pickup != nil && *entry.Pickup
		result.Remark = entry.Remarks
		result.Embargo = isEmbargo(entry.Remarks)
		result.City = entry.City
		result.State = entry.State
		result.Serviceable = entry.IsServiceable != nil && *entry.IsServiceable && !result.Embargo
		return result
	}

	result.Remark = "pincode is not serviceable for heavy shipments"
	return result
}

func toWarehouseRequest(w entities.Warehouse) *WarehouseRequest {
	return &WarehouseRequest{
		Name:          w.Name,
		Phone:         w.Phone,
		Email:         w.Email,
		Address:       w.Address,
		City:          w.City,
		Pin:           w.Pincode,
		State:         w.State,
		Country:       defaultString(w.Country, "India"),
		ReturnAddress: defaultString(w.ReturnAddress, w.Address),
		ReturnPin:     defaultString(w.ReturnPincode, w.Pincode),
		ReturnCity:    defaultString(w.ReturnCity, w.City),
		ReturnState:   defaultString(w.ReturnState, w.State),
		ReturnCountry: defaultString(w.Country, "India"),
		RegisteredAs:  w.Name,
	}
}

var warehouseNameKeys = []string{"name", "warehouse_name", "pickup_location"}

// normalizeWarehouse разные эндпоинты называют склад по-разному, ключи сводим здесь.
func normalizeWarehouse(raw map[string]any) (entities.Warehouse, bool) {
	w := entities.Warehouse{
		Name:                  firstString(raw, warehouseNameKeys...),
		Phone:                 firstString(raw, "phone"),
		Email:                 firstString(raw, "email"),
		Address:               firstString(raw, "address", "add"),
		City:                  firstString(raw, "city"),
		Pincode:               firstString(raw, "pin", "pincode"),
		State:                 firstString(raw, "state"),
		Country:               firstString(raw, "country"),
		ReturnAddress:         firstString(raw, "return_address"),
		ReturnPincode:         firstString(raw, "return_pin"),
		ReturnCity:            firstString(raw, "return_city"),
		ReturnState:           firstString(raw, "return_state"),
		Active:                true,
		RegisteredWithCarrier: true,
	}
	if active, ok := raw["active"].(bool); ok {
		w.Active = active
	}
	return w, w.Name != ""
}

func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
