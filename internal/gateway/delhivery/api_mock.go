package delhivery

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// MockAPIClient реализация APIClient для тестов и локального запуска без токена.
// Поведение по умолчанию отвечает успехом, хуки OnXxx его переопределяют.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnFetchWaybills              func(ctx context.Context, count int) ([]string, error)
	OnFetchWaybill               func(ctx context.Context) (string, error)
	OnCreateManifest             func(ctx context.Context, req *ManifestRequest) (*ManifestResponse, error)
	OnEditShipment               func(ctx context.Context, req *EditRequest) (*EditResponse, error)
	OnTrack                      func(ctx context.Context, waybill string) (*TrackingResponse, error)
	OnPackingSlip                func(ctx context.Context, waybill string, pdf bool, size string) (*PackingSlipResponse, error)
	OnDownload                   func(ctx context.Context, url string) ([]byte, error)
	OnPincodeServiceability      func(ctx context.Context, pincode string) (*PincodeResponse, error)
	OnHeavyPincodeServiceability func(ctx context.Context, pincode string) ([]HeavyPincodeEntry, error)
	OnListWarehouses             func(ctx context.Context) ([]map[string]any, error)
	OnCreateWarehouse            func(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error)
	OnEditWarehouse              func(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error)

	seq   atomic.Int64
	mu    sync.Mutex
	calls map[string]int
}

func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Calls сколько раз вызывался метод.
func (m *MockAPIClient) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockAPIClient) enter(method string) error {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
	m.mu.Unlock()

	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}
	if m.SimulateErrors {
		return NewCarrierError(CodeTransport, "simulated carrier error").
			WithCause(ErrTransport).
			WithRetryable(true)
	}
	return nil
}

func (m *MockAPIClient) nextCode() string {
	return fmt.Sprintf("%014d", 10000000000000+m.seq.Add(1))
}

func (m *MockAPIClient) FetchWaybills(ctx context.Context, count int) ([]string, error) {
	if err := m.enter("FetchWaybills"); err != nil {
		return nil, err
	}
	if m.OnFetchWaybills != nil {
		return m.OnFetchWaybills(ctx, count)
	}

	codes := make([]string, count)
	for i := range codes {
		codes[i] = m.nextCode()
	}
	return codes, nil
}

func (m *MockAPIClient) FetchWaybill(ctx context.Context) (string, error) {
	if err := m.enter("FetchWaybill"); err != nil {
		return "", err
	}
	if m.OnFetchWaybill != nil {
		return m.OnFetchWaybill(ctx)
	}
	return m.nextCode(), nil
}

func (m *MockAPIClient) CreateManifest(ctx context.Context, req *ManifestRequest) (*ManifestResponse, error) {
	if err := m.enter("CreateManifest"); err != nil {
		return nil, err
	}
	if m.OnCreateManifest != nil {
		return m.OnCreateManifest(ctx, req)
	}

	resp := &ManifestResponse{
		Success:      true,
		PackageCount: len(req.Shipments),
	}
	for _, s := range req.Shipments {
		resp.Packages = append(resp.Packages, ManifestPackage{
			Waybill: s.Waybill,
			Status:  "Success",
			RefNum:  s.Order,
		})
	}
	resp.Raw, _ = json.Marshal(resp)
	return resp, nil
}

func (m *MockAPIClient) EditShipment(ctx context.Context, req *EditRequest) (*EditResponse, error) {
	if err := m.enter("EditShipment"); err != nil {
		return nil, err
	}
	if m.OnEditShipment != nil {
		return m.OnEditShipment(ctx, req)
	}
	return &EditResponse{Status: true, Waybill: req.Waybill}, nil
}

func (m *MockAPIClient) Track(ctx context.Context, waybill string) (*TrackingResponse, error) {
	if err := m.enter("Track"); err != nil {
		return nil, err
	}
	if m.OnTrack != nil {
		return m.OnTrack(ctx, waybill)
	}

	resp := &TrackingResponse{}
	resp.ShipmentData = append(resp.ShipmentData, struct {
		Shipment TrackingShipment `json:"Shipment"`
	}{
		Shipment: TrackingShipment{
			AWB: waybill,
			Status: TrackingStatus{
				Status:         "Manifested",
				StatusType:     "UD",
				StatusLocation: "Mumbai_Hub",
				StatusDateTime: time.Now().In(istLocation).Format(carrierTimeLayout),
			},
		},
	})
	return resp, nil
}

func (m *MockAPIClient) PackingSlip(ctx context.Context, waybill string, pdf bool, size string) (*PackingSlipResponse, error) {
	if err := m.enter("PackingSlip"); err != nil {
		return nil, err
	}
	if m.OnPackingSlip != nil {
		return m.OnPackingSlip(ctx, waybill, pdf, size)
	}

	pkg, _ := json.Marshal(PackingSlipPackage{
		Waybill:         waybill,
		PDFDownloadLink: "https://mock.local/label/" + waybill + ".pdf",
	})
	return &PackingSlipResponse{PackagesFound: 1, Packages: []json.RawMessage{pkg}}, nil
}

func (m *MockAPIClient) Download(ctx context.Context, url string) ([]byte, error) {
	if err := m.enter("Download"); err != nil {
		return nil, err
	}
	if m.OnDownload != nil {
		return m.OnDownload(ctx, url)
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *MockAPIClient) PincodeServiceability(ctx context.Context, pincode string) (*PincodeResponse, error) {
	if err := m.enter("PincodeServiceability"); err != nil {
		return nil, err
	}
	if m.OnPincodeServiceability != nil {
		return m.OnPincodeServiceability(ctx, pincode)
	}

	resp := &PincodeResponse{}
	resp.DeliveryCodes = append(resp.DeliveryCodes, struct {
		PostalCode PostalCode `json:"postal_code"`
	}{
		PostalCode: PostalCode{Pin: flexString(pincode), PrePaid: "Y", COD: "Y", Pickup: "Y"},
	})
	return resp, nil
}

func (m *MockAPIClient) HeavyPincodeServiceability(ctx context.Context, pincode string) ([]HeavyPincodeEntry, error) {
	if err := m.enter("HeavyPincodeServiceability"); err != nil {
		return nil, err
	}
	if m.OnHeavyPincodeServiceability != nil {
		return m.OnHeavyPincodeServiceability(ctx, pincode)
	}

	yes := true
	return []HeavyPincodeEntry{{Pincode: flexString(pincode), PaymentType: "COD,Prepaid", Pickup: &yes, IsServiceable: &yes}}, nil
}

func (m *MockAPIClient) ListWarehouses(ctx context.Context) ([]map[string]any, error) {
	if err := m.enter("ListWarehouses"); err != nil {
		return nil, err
	}
	if m.OnListWarehouses != nil {
		return m.OnListWarehouses(ctx)
	}
	return []map[string]any{}, nil
}

func (m *MockAPIClient) CreateWarehouse(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error) {
	if err := m.enter("CreateWarehouse"); err != nil {
		return nil, err
	}
	if m.OnCreateWarehouse != nil {
		return m.OnCreateWarehouse(ctx, req)
	}
	return &WarehouseResponse{Success: true, Message: "created"}, nil
}

func (m *MockAPIClient) EditWarehouse(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error) {
	if err := m.enter("EditWarehouse"); err != nil {
		return nil, err
	}
	if m.OnEditWarehouse != nil {
		return m.OnEditWarehouse(ctx, req)
	}
	return &WarehouseResponse{Success: true, Message: "updated"}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
