package delhivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	// ответы перевозчика небольшие, PDF ярлыка укладывается с запасом
	maxResponseBytes = 16 << 20
)

// HTTPAPIClient реализация APIClient поверх net/http.
type HTTPAPIClient struct {
	baseURL    string
	token      string
	clientName string
	httpClient *http.Client
}

type HTTPAPIClientConfig struct {
	BaseURL    string
	Token      string
	ClientName string
	Timeout    time.Duration
}

func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &HTTPAPIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		clientName: cfg.ClientName,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPAPIClient) FetchWaybills(ctx context.Context, count int) ([]string, error) {
	query := url.Values{}
	query.Set("count", strconv.Itoa(count))
	query.Set("token", c.token)
	if c.clientName != "" {
		query.Set("cl", c.clientName)
	}

	body, err := c.get(ctx, "/waybill/api/bulk/json/", query)
	if err != nil {
		return nil, err
	}

	codes, err := parseWaybillList(body)
	if err != nil {
		return nil, malformedError(err)
	}
	return codes, nil
}

func (c *HTTPAPIClient) FetchWaybill(ctx context.Context) (string, error) {
	query := url.Values{}
	query.Set("token", c.token)
	if c.clientName != "" {
		query.Set("cl", c.clientName)
	}

	body, err := c.get(ctx, "/waybill/api/fetch/json/", query)
	if err != nil {
		return "", err
	}

	codes, err := parseWaybillList(body)
	if err != nil {
		return "", malformedError(err)
	}
	return codes[0], nil
}

func (c *HTTPAPIClient) CreateManifest(ctx context.Context, req *ManifestRequest) (*ManifestResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	form := url.Values{}
	form.Set("format", "json")
	form.Set("data", string(data))

	body, err := c.do(ctx, http.MethodPost, "/api/cmu/create.json", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	var result ManifestResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, malformedError(err)
	}
	result.Raw = body
	return &result, nil
}

func (c *HTTPAPIClient) EditShipment(ctx context.Context, req *EditRequest) (*EditResponse, error) {
	body, err := c.postJSON(ctx, "/api/p/edit", req)
	if err != nil {
		return nil, err
	}

	var result EditResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, malformedError(err)
	}
	return &result, nil
}

func (c *HTTPAPIClient) Track(ctx context.Context, waybill string) (*TrackingResponse, error) {
	query := url.Values{}
	query.Set("waybill", waybill)

	body, err := c.get(ctx, "/api/v1/packages/json/", query)
	if err != nil {
		return nil, err
	}

	var result TrackingResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, malformedError(err)
	}
	result.Raw = body
	return &result, nil
}

func (c *HTTPAPIClient) PackingSlip(ctx context.Context, waybill string, pdf bool, size string) (*PackingSlipResponse, error) {
	query := url.Values{}
	query.Set("wbns", waybill)
	query.Set("pdf", strconv.FormatBool(pdf))
	if size != "" {
		query.Set("pdf_size", size)
	}

	body, err := c.get(ctx, "/api/p/packing_slip", query)
	if err != nil {
		return nil, err
	}

	var result PackingSlipResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, malformedError(err)
	}
	return &result, nil
}

// Download ссылка подписана, токен к ней не прикладываем.
func (c *HTTPAPIClient) Download(ctx context.Context, link string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	return c.readBody(resp)
}

func (c *HTTPAPIClient) PincodeServiceability(ctx context.Context, pincode string) (*PincodeResponse, error) {
	query := url.Values{}
	query.Set("filter_codes", pincode)

	body, err := c.get(ctx, "/c/api/pin-codes/json/", query)
	if err != nil {
		return nil, err
	}

	var result PincodeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, malformedError(err)
	}
	return &result, nil
}

func (c *HTTPAPIClient) HeavyPincodeServiceability(ctx context.Context, pincode string) ([]HeavyPincodeEntry, error) {
	query := url.Values{}
	query.Set("product_type", "Heavy")
	query.Set("pincode", pincode)

	body, err := c.get(ctx, "/api/dc/fetch/serviceability/pincode", query)
	if err != nil {
		return nil, err
	}

	entries, err := decodeList[HeavyPincodeEntry](body)
	if err != nil {
		return nil, malformedError(err)
	}
	return entries, nil
}

func (c *HTTPAPIClient) ListWarehouses(ctx context.Context) ([]map[string]any, error) {
	body, err := c.get(ctx, "/api/backend/clientwarehouse/all/", nil)
	if err != nil {
		return nil, err
	}

	warehouses, err := decodeList[map[string]any](body)
	if err != nil {
		return nil, malformedError(err)
	}
	return warehouses, nil
}

func (c *HTTPAPIClient) CreateWarehouse(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error) {
	return c.warehouseCall(ctx, "/api/backend/clientwarehouse/create/", req)
}

func (c *HTTPAPIClient) EditWarehouse(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error) {
	return c.warehouseCall(ctx, "/api/backend/clientwarehouse/edit/", req)
}

func (c *HTTPAPIClient) warehouseCall(ctx context.Context, path string, req *WarehouseRequest) (*WarehouseResponse, error) {
	body, err := c.postJSON(ctx, path, req)
	if err != nil {
		return nil, err
	}

	var result WarehouseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, malformedError(err)
	}
	return &result, nil
}

func (c *HTTPAPIClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *HTTPAPIClient) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(data), "application/json")
}

// do выполняет запрос с авторизацией и приводит ответ к одной из трех категорий:
// транспорт/конфигурация, бизнес-ошибка перевозчика, успех.
func (c *HTTPAPIClient) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
) ([]byte, error) {
	if c.token == "" {
		return nil, notConfiguredError()
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	return c.readBody(resp)
}

func (c *HTTPAPIClient) readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	return nil, parseError(resp.StatusCode, body)
}

// parseError 5xx и 429 считаем транспортом (повторяемо), 401/403 ошибкой
// конфигурации, остальные 4xx отказом перевозчика с его текстом.
func parseError(statusCode int, body []byte) error {
	message := extractMessage(body)

	switch {
	case statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests:
		return NewCarrierError(CodeTransport, message).
			WithStatusCode(statusCode).
			WithCause(fmt.Errorf("%w: http %d", ErrTransport, statusCode)).
			WithRetryable(true)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return NewCarrierError(CodeNotConfigured, message).
			WithStatusCode(statusCode).
			WithCause(ErrNotConfigured)
	default:
		return rejectedError(message).WithStatusCode(statusCode)
	}
}

func extractMessage(body []byte) string {
	var payload struct {
		Error   flexStrings `json:"error"`
		Message string      `json:"message"`
		Detail  string      `json:"detail"`
		Remark  flexStrings `json:"rmk"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case len(payload.Error) > 0:
			return payload.Error.Join()
		case payload.Message != "":
			return payload.Message
		case payload.Detail != "":
			return payload.Detail
		case len(payload.Remark) > 0:
			return payload.Remark.Join()
		}
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	if msg == "" {
		msg = "empty response"
	}
	return msg
}

// decodeList массив либо объект-обертка с data/results/result.
func decodeList[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, err
	}
	for _, key := range []string{"data", "results", "result"} {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	return []T{}, nil
}

var _ APIClient = (*HTTPAPIClient)(nil)
