package warehouse

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// normalizeName перевозчик сравнивает имена складов без учета регистра.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
