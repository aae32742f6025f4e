package delhivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// flexString перевозчик отдает одни и те же поля то строкой, то числом.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// flexStrings строка, массив строк или null.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = nil
			return nil
		}
		*f = flexStrings{s}
		return nil
	case '[':
		var items []flexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make(flexStrings, 0, len(items))
		for _, item := range items {
			if item != "" {
				out = append(out, item.String())
			}
		}
		*f = out
		return nil
	case 't', 'f':
		// error: false встречается в успешных ответах
		*f = nil
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("flex strings: %w", err)
		}
		*f = flexStrings{n.String()}
		return nil
	}
}

func (f flexStrings) Join() string {
	return strings.Join(f, "; ")
}

var errNoWaybills = errors.New("no waybills in response")

// parseWaybillList bulk-эндпоинт возвращает строку "a,b,c", массив
// или объект с полем waybills/waybill/wbns в зависимости от окружения.
func parseWaybillList(body []byte) ([]string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errNoWaybills
	}

	var codes []string
	switch body[0] {
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return nil, err
		}
		codes = splitCodes(s)
	case '[':
		var items []flexString
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		for _, item := range items {
			codes = append(codes, splitCodes(item.String())...)
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, err
		}
		for _, key := range []string{"waybills", "waybill", "wbns", "wbn"} {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			return parseWaybillList(raw)
		}
		return nil, errNoWaybills
	default:
		// голое число
		codes = splitCodes(string(body))
	}

	if len(codes) == 0 {
		return nil, errNoWaybills
	}
	for _, code := range codes {
		if !isCarrierCode(code) {
			return nil, fmt.Errorf("unexpected waybill %q", code)
		}
	}
	return codes, nil
}

func splitCodes(s string) []string {
	parts := strings.Split(s, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			codes = append(codes, p)
		}
	}
	return codes
}

// isCarrierCode настоящие накладные перевозчика чисто цифровые.
func isCarrierCode(code string) bool {
	if code == "" {
		return false
	}
	_, err := strconv.ParseUint(code, 10, 64)
	return err == nil
}
