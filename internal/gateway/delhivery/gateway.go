package delhivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"shipment/internal/entities"
	"shipment/pkg/logger"
)

const carrierName = "delhivery"

var pincodeRe = regexp.MustCompile(`^\d{6}$`)

type Config struct {
	BaseURL    string
	Token      string
	ClientName string
	Timeout    time.Duration
}

// Gateway доменный уровень над APIClient. Сам ничего не повторяет,
// решение о ретраях остается за вызывающим (см. IsRetryable).
type Gateway struct {
	api        APIClient
	configured bool
	demo       *demoGenerator
	log        logger.Logger
}

func New(cfg Config, log logger.Logger) *Gateway {
	api := NewHTTPAPIClient(HTTPAPIClientConfig{
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Token,
		ClientName: cfg.ClientName,
		Timeout:    cfg.Timeout,
	})
	return NewWithAPIClient(api, cfg.Token != "", log)
}

// NewWithAPIClient configured=false эмулирует отсутствие токена.
func NewWithAPIClient(api APIClient, configured bool, log logger.Logger) *Gateway {
	return &Gateway{
		api:        api,
		configured: configured,
		demo:       newDemoGenerator(),
		log:        log.With(logger.NewField("carrier", carrierName)),
	}
}

func (g *Gateway) IsConfigured() bool {
	return g.configured
}

// GenerateWaybills единственная операция с подменой на demo-номера:
// при любой ошибке перевозчика пул все равно пополняется.
func (g *Gateway) GenerateWaybills(ctx context.Context, count int) ([]entities.Waybill, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidRequest)
	}
	if !g.configured {
		return g.demoFallback("GenerateWaybills", count, notConfiguredError()), nil
	}

	var codes []string
	err := g.executeWithMetrics(ctx, "GenerateWaybills", func(ctx context.Context) error {
		var err error
		codes, err = g.api.FetchWaybills(ctx, count)
		return err
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return g.demoFallback("GenerateWaybills", count, err), nil
	}

	waybills := toWaybills(codes, entities.WaybillSourceBulkFetch, count)
	if shortfall := count - len(waybills); shortfall > 0 {
		g.log.Warn("carrier returned fewer waybills than requested",
			logger.NewField("requested", count),
			logger.NewField("received", len(waybills)),
		)
		waybills = append(waybills, g.demoFallback("GenerateWaybills", shortfall, nil)...)
	}
	return waybills, nil
}

func (g *Gateway) FetchSingleWaybill(ctx context.Context) (*entities.Waybill, error) {
	if !g.configured {
		return &g.demoFallback("FetchSingleWaybill", 1, notConfiguredError())[0], nil
	}

	var code string
	err := g.executeWithMetrics(ctx, "FetchSingleWaybill", func(ctx context.Context) error {
		var err error
		code, err = g.api.FetchWaybill(ctx)
		return err
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return &g.demoFallback("FetchSingleWaybill", 1, err)[0], nil
	}

	waybills := toWaybills([]string{code}, entities.WaybillSourceSingleFetch, 1)
	if len(waybills) == 0 {
		return &g.demoFallback("FetchSingleWaybill", 1, malformedError(errNoWaybills))[0], nil
	}
	return &waybills[0], nil
}

func (g *Gateway) CreateShipment(ctx context.Context, manifest entities.Manifest) (*entities.ManifestResult, error) {
	if len(manifest.Waybills) == 0 && manifest.PrimaryWaybill == "" {
		return nil, fmt.Errorf("%w: manifest has no waybills", ErrInvalidRequest)
	}
	if !g.configured {
		return nil, notConfiguredError()
	}

	req := toManifestRequest(manifest)

	var resp *ManifestResponse
	err := g.executeWithMetrics(ctx, "CreateShipment", func(ctx context.Context) error {
		var err error
		resp, err = g.api.CreateManifest(ctx, req)
		if err != nil {
			return err
		}
		if !manifestAccepted(resp) {
			return rejectedError(manifestRejection(resp))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toManifestResult(resp), nil
}

func manifestAccepted(resp *ManifestResponse) bool {
	if !resp.Success {
		return false
	}
	for _, p := range resp.Packages {
		if p.Status != "" && !strings.EqualFold(p.Status, "success") {
			return false
		}
	}
	return true
}

// TrackShipment пустой ответ перевозчика не ошибка: Found=false.
func (g *Gateway) TrackShipment(ctx context.Context, waybill string) (*entities.TrackingInfo, error) {
	if strings.TrimSpace(waybill) == "" {
		return nil, fmt.Errorf("%w: waybill is required", ErrInvalidRequest)
	}
	if !g.configured {
		return nil, notConfiguredError()
	}

	var resp *TrackingResponse
	err := g.executeWithMetrics(ctx, "TrackShipment", func(ctx context.Context) error {
		var err error
		resp, err = g.api.Track(ctx, waybill)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toTrackingInfo(waybill, resp), nil
}

func (g *Gateway) CancelShipment(ctx context.Context, waybill string, current entities.ShipmentStatusType) error {
	if err := checkMutable(current); err != nil {
		return err
	}
	if !g.configured {
		return notConfiguredError()
	}

	req := &EditRequest{Waybill: waybill, Cancellation: "true"}
	return g.executeWithMetrics(ctx, "CancelShipment", func(ctx context.Context) error {
		resp, err := g.api.EditShipment(ctx, req)
		if err != nil {
			return err
		}
		return editOutcome(resp)
	})
}

func (g *Gateway) EditShipment(
	ctx context.Context,
	waybill string,
	current entities.ShipmentStatusType,
	edit entities.ShipmentEdit,
) error {
	if err := checkMutable(current); err != nil {
		return err
	}
	if edit.IsEmpty() {
		return fmt.Errorf("%w: nothing to edit", ErrInvalidRequest)
	}
	if !g.configured {
		return notConfiguredError()
	}

	req := toEditRequest(waybill, edit)
	return g.executeWithMetrics(ctx, "EditShipment", func(ctx context.Context) error {
		resp, err := g.api.EditShipment(ctx, req)
		if err != nil {
			return err
		}
		return editOutcome(resp)
	})
}

func checkMutable(current entities.ShipmentStatusType) error {
	if slices.Contains(entities.MutableShipmentStatuses(), current) {
		return nil
	}
	return NewCarrierError(CodeStateNotAllowed, fmt.Sprintf("shipment in status %q can not be changed", current)).
		WithCause(ErrStateNotAllowed)
}

func editOutcome(resp *EditResponse) error {
	if resp.Status {
		return nil
	}
	msg := resp.Error.Join()
	if msg == "" {
		msg = resp.Remark.Join()
	}
	if msg == "" {
		msg = "edit rejected"
	}
	return rejectedError(msg)
}

func (g *Gateway) CheckPincodeServiceability(ctx context.Context, pincode string) (*entities.Serviceability, error) {
	if err := validatePincode(pincode); err != nil {
		return nil, err
	}
	if !g.configured {
		return nil, notConfiguredError()
	}

	var resp *PincodeResponse
	err := g.executeWithMetrics(ctx, "CheckPincodeServiceability", func(ctx context.Context) error {
		var err error
		resp, err = g.api.PincodeServiceability(ctx, pincode)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toServiceability(pincode, resp), nil
}

func (g *Gateway) CheckHeavyPincodeServiceability(ctx context.Context, pincode string) (*entities.Serviceability, error) {
	if err := validatePincode(pincode); err != nil {
		return nil, err
	}
	if !g.configured {
		return nil, notConfiguredError()
	}

	var entries []HeavyPincodeEntry
	err := g.executeWithMetrics(ctx, "CheckHeavyPincodeServiceability", func(ctx context.Context) error {
		var err error
		entries, err = g.api.HeavyPincodeServiceability(ctx, pincode)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toHeavyServiceability(pincode, entries), nil
}

func validatePincode(pincode string) error {
	if pincodeRe.MatchString(pincode) {
		return nil
	}
	return NewCarrierError(CodeInvalidPincode, fmt.Sprintf("invalid pincode %q", pincode)).
		WithCause(ErrInvalidPincode)
}

func (g *Gateway) FetchWarehouses(ctx context.Context) ([]entities.Warehouse, error) {
	if !g.configured {
		return nil, notConfiguredError()
	}

	var raw []map[string]any
	err := g.executeWithMetrics(ctx, "FetchWarehouses", func(ctx context.Context) error {
		var err error
		raw, err = g.api.ListWarehouses(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	warehouses := make([]entities.Warehouse, 0, len(raw))
	for _, item := range raw {
		w, ok := normalizeWarehouse(item)
		if !ok {
			g.log.Warn("carrier warehouse without name skipped")
			continue
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, nil
}

func (g *Gateway) RegisterWarehouse(ctx context.Context, warehouse entities.Warehouse) (*entities.WarehouseRegistration, error) {
	if strings.TrimSpace(warehouse.Name) == "" {
		return nil, fmt.Errorf("%w: warehouse name is required", ErrInvalidRequest)
	}
	if !g.configured {
		return nil, notConfiguredError()
	}

	req := toWarehouseRequest(warehouse)

	var result *entities.WarehouseRegistration
	err := g.executeWithMetrics(ctx, "RegisterWarehouse", func(ctx context.Context) error {
		var err error
		result, err = runStrategies(ctx, g.registrationStrategies(), req)
		return err
	})
	if err != nil {
		return nil, err
	}

	g.log.Info("warehouse registered",
		logger.NewField("warehouse", result.Name),
		logger.NewField("strategy", result.Strategy),
	)
	return result, nil
}

func (g *Gateway) FetchLabel(ctx context.Context, waybill string, opts entities.LabelOptions) (*entities.Label, error) {
	if strings.TrimSpace(waybill) == "" {
		return nil, fmt.Errorf("%w: waybill is required", ErrInvalidRequest)
	}
	if !g.configured {
		return nil, notConfiguredError()
	}

	var label *entities.Label
	err := g.executeWithMetrics(ctx, "FetchLabel", func(ctx context.Context) error {
		resp, err := g.api.PackingSlip(ctx, waybill, opts.PDF, string(opts.Size))
		if err != nil {
			return err
		}
		if len(resp.Packages) == 0 {
			return NewCarrierError(CodeNotFound, "no packing slip for waybill "+waybill).
				WithCause(ErrLabelNotAvailable)
		}

		label = &entities.Label{Waybill: waybill, Data: resp.Packages[0]}
		if !opts.PDF {
			return nil
		}

		var pkg PackingSlipPackage
		if err := json.Unmarshal(resp.Packages[0], &pkg); err != nil {
			return malformedError(err)
		}
		if pkg.PDFDownloadLink == "" {
			return NewCarrierError(CodeNotFound, "no pdf link for waybill "+waybill).
				WithCause(ErrLabelNotAvailable)
		}

		label.DownloadURL = pkg.PDFDownloadLink
		label.Document, err = g.api.Download(ctx, pkg.PDFDownloadLink)
		return err
	})
	if err != nil {
		return nil, err
	}

	return label, nil
}

func (g *Gateway) demoFallback(method string, count int, cause error) []entities.Waybill {
	fields := []logger.Field{
		logger.NewField("method", method),
		logger.NewField("count", count),
	}
	if cause != nil {
		fields = append(fields, logger.NewField("error", cause.Error()))
	}
	g.log.Warn("issuing demo waybills", fields...)

	CarrierDemoFallbackTotal.WithLabelValues(carrierName, method).Add(float64(count))
	return g.demo.generate(count)
}

func toWaybills(codes []string, source entities.WaybillSourceType, limit int) []entities.Waybill {
	now := time.Now().UTC()
	seen := make(map[string]struct{}, len(codes))

	waybills := make([]entities.Waybill, 0, len(codes))
	for _, code := range codes {
		if len(waybills) == limit {
			break
		}
		if !isCarrierCode(code) {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		waybills = append(waybills, entities.Waybill{
			Code:        code,
			Status:      entities.WaybillGenerated,
			Source:      source,
			GeneratedAt: now,
		})
	}
	return waybills
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()

	err := fn(ctx)

	CarrierRequestDuration.WithLabelValues(carrierName, method, outcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		g.log.Debug("carrier request failed",
			logger.NewField("method", method),
			logger.NewField("error", err.Error()),
		)
	}
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrTransport):
		return "transport_error"
	case IsBusinessError(err):
		return "business_error"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	default:
		return "error"
	}
}
