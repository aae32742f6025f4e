package entities

import "strings"

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
