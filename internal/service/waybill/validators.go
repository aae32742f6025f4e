package waybill

import "strings"

// ограничение bulk-эндпоинта перевозчика на один запрос
const maxFetchCount = 10000

func isValidCount(count int) bool {
	return count > 0 && count <= maxFetchCount
}

func isValidCode(code string) bool {
	return strings.TrimSpace(code) != ""
}

func isValidCodes(codes []string) bool {
	if len(codes) == 0 {
		return false
	}
	for _, code := range codes {
		if !isValidCode(code) {
			return false
		}
	}
	return true
}

func isValidActor(actor string) bool {
	return strings.TrimSpace(actor) != ""
}
