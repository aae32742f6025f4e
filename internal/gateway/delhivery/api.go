package delhivery

import (
	"context"
	"encoding/json"
)

// APIClient уровень wire: один метод на один эндпоинт перевозчика.
// Реализации: HTTPAPIClient для реального API и MockAPIClient для тестов.
type APIClient interface {
	// GET /waybill/api/bulk/json/
	FetchWaybills(ctx context.Context, count int) ([]string, error)
	// GET /waybill/api/fetch/json/
	FetchWaybill(ctx context.Context) (string, error)
	// POST /api/cmu/create.json
	CreateManifest(ctx context.Context, req *ManifestRequest) (*ManifestResponse, error)
	// POST /api/p/edit, отмена тоже идет через edit
	EditShipment(ctx context.Context, req *EditRequest) (*EditResponse, error)
	// GET /api/v1/packages/json/
	Track(ctx context.Context, waybill string) (*TrackingResponse, error)
	// GET /api/p/packing_slip
	PackingSlip(ctx context.Context, waybill string, pdf bool, size string) (*PackingSlipResponse, error)
	// скачивание документа по ссылке из packing slip
	Download(ctx context.Context, url string) ([]byte, error)
	// GET /c/api/pin-codes/json/
	PincodeServiceability(ctx context.Context, pincode string) (*PincodeResponse, error)
	// GET /api/dc/fetch/serviceability/pincode
	HeavyPincodeServiceability(ctx context.Context, pincode string) ([]HeavyPincodeEntry, error)
	// GET /api/backend/clientwarehouse/all/
	ListWarehouses(ctx context.Context) ([]map[string]any, error)
	// POST /api/backend/clientwarehouse/create/
	CreateWarehouse(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error)
	// POST /api/backend/clientwarehouse/edit/
	EditWarehouse(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error)
}

// ManifestRequest тело поля data формы create.json.
type ManifestRequest struct {
	Shipments      []ManifestShipment `json:"shipments"`
	PickupLocation PickupLocation     `json:"pickup_location"`
}

type PickupLocation struct {
	Name string `json:"name"`
}

type ManifestShipment struct {
	Waybill        string `json:"waybill"`
	MasterID       string `json:"master_id,omitempty"`
	MPSAmount      string `json:"mps_amount,omitempty"`
	MPSChildren    string `json:"mps_children,omitempty"`
	Order          string `json:"order"`
	Name           string `json:"name"`
	Address        string `json:"add"`
	Pin            string `json:"pin"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
	PaymentMode    string `json:"payment_mode"`
	CODAmount      string `json:"cod_amount"`
	TotalAmount    string `json:"total_amount"`
	ProductsDesc   string `json:"products_desc"`
	HSNCode        string `json:"hsn_code"`
	Quantity       string `json:"quantity"`
	Weight         string `json:"weight"`
	ShipmentLength string `json:"shipment_length"`
	ShipmentWidth  string `json:"shipment_width"`
	ShipmentHeight string `json:"shipment_height"`
	ShippingMode   string `json:"shipping_mode"`
	OrderDate      string `json:"order_date"`
	EndDate        string `json:"end_date,omitempty"`
	ReturnName     string `json:"return_name,omitempty"`
	ReturnAddress  string `json:"return_add,omitempty"`
	ReturnPin      string `json:"return_pin,omitempty"`
	ReturnCity     string `json:"return_city,omitempty"`
	ReturnState    string `json:"return_state,omitempty"`
	ReturnCountry  string `json:"return_country,omitempty"`
	ReturnPhone    string `json:"return_phone,omitempty"`
	SellerName     string `json:"seller_name,omitempty"`
	SellerAddress  string `json:"seller_add,omitempty"`
	AddressType    string `json:"address_type,omitempty"`
}

type ManifestResponse struct {
	Success      bool              `json:"success"`
	Packages     []ManifestPackage `json:"packages"`
	Remark       flexStrings       `json:"rmk"`
	PackageCount int               `json:"package_count"`
	Raw          json.RawMessage   `json:"-"`
}

type ManifestPackage struct {
	Waybill string      `json:"waybill"`
	Status  string      `json:"status"`
	Remarks flexStrings `json:"remarks"`
	RefNum  string      `json:"refnum"`
}

// EditRequest тело /api/p/edit. Для отмены заполняются только Waybill и Cancellation.
type EditRequest struct {
	Waybill        string `json:"waybill"`
	Cancellation   string `json:"cancellation,omitempty"`
	Name           string `json:"name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"add,omitempty"`
	PaymentType    string `json:"pt,omitempty"`
	CODAmount      string `json:"cod,omitempty"`
	Weight         string `json:"gm,omitempty"`
	ShipmentLength string `json:"shipment_length,omitempty"`
	ShipmentWidth  string `json:"shipment_width,omitempty"`
	ShipmentHeight string `json:"shipment_height,omitempty"`
	ProductsDesc   string `json:"products_desc,omitempty"`
}

type EditResponse struct {
	Status  bool        `json:"status"`
	Waybill string      `json:"waybill"`
	Remark  flexStrings `json:"remark"`
	Error   flexStrings `json:"error"`
}

// TrackingResponse у перевозчика два вида ответа: ShipmentData либо Error.
type TrackingResponse struct {
	ShipmentData []struct {
		Shipment TrackingShipment `json:"Shipment"`
	} `json:"ShipmentData"`
	Error string          `json:"Error"`
	Raw   json.RawMessage `json:"-"`
}

type TrackingShipment struct {
	AWB                  string         `json:"AWB"`
	Status               TrackingStatus `json:"Status"`
	ExpectedDeliveryDate string         `json:"ExpectedDeliveryDate"`
	PromisedDeliveryDate string         `json:"PromisedDeliveryDate"`
	Scans                []struct {
		ScanDetail TrackingScanDetail `json:"ScanDetail"`
	} `json:"Scans"`
}

type TrackingStatus struct {
	Status         string `json:"Status"`
	StatusLocation string `json:"StatusLocation"`
	StatusDateTime string `json:"StatusDateTime"`
	StatusType     string `json:"StatusType"`
	Instructions   string `json:"Instructions"`
}

type TrackingScanDetail struct {
	Scan            string `json:"Scan"`
	ScanType        string `json:"ScanType"`
	ScanDateTime    string `json:"ScanDateTime"`
	ScannedLocation string `json:"ScannedLocation"`
	Instructions    string `json:"Instructions"`
	StatusDateTime  string `json:"StatusDateTime"`
}

type PackingSlipResponse struct {
	PackagesFound int               `json:"packages_found"`
	Packages      []json.RawMessage `json:"packages"`
}

// PackingSlipPackage нужные нам поля одного элемента packages.
type PackingSlipPackage struct {
	Waybill         string `json:"wbn"`
	PDFDownloadLink string `json:"pdf_download_link"`
	PDFEncoding     string `json:"pdf_encoding"`
}

type PincodeResponse struct {
	DeliveryCodes []struct {
		PostalCode PostalCode `json:"postal_code"`
	} `json:"delivery_codes"`
}

type PostalCode struct {
	Pin         flexString `json:"pin"`
	PrePaid     string     `json:"pre_paid"`
	COD         string     `json:"cod"`
	Pickup      string     `json:"pickup"`
	Repl        string     `json:"repl"`
	IsODA       string     `json:"is_oda"`
	Remarks     string     `json:"remarks"`
	District    string     `json:"district"`
	City        string     `json:"city"`
	StateCode   string     `json:"state_code"`
	MaxWeight   float64    `json:"max_weight"`
	MaxAmount   float64    `json:"max_amount"`
	SortCode    string     `json:"sort_code"`
	CountryCode string     `json:"country_code"`
}

type HeavyPincodeEntry struct {
	Pincode       flexString `json:"pincode"`
	PaymentType   string     `json:"payment_type"`
	Pickup        *bool      `json:"pickup"`
	IsServiceable *bool      `json:"is_serviceable"`
	Remarks       string     `json:"remarks"`
	City          string     `json:"city"`
	State         string     `json:"state"`
}

type WarehouseRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Pin           string `json:"pin"`
	State         string `json:"state,omitempty"`
	Country       string `json:"country"`
	ReturnAddress string `json:"return_address"`
	ReturnPin     string `json:"return_pin"`
	ReturnCity    string `json:"return_city"`
	ReturnState   string `json:"return_state"`
	ReturnCountry string `json:"return_country"`
	RegisteredAs  string `json:"registered_name,omitempty"`
}

type WarehouseResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   flexStrings     `json:"error"`
	Message string          `json:"message"`
}
