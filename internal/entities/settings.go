package entities

type ShipmentSettings struct {
	DefaultWeightGrams  float64
	DefaultLengthCm     float64
	DefaultBreadthCm    float64
	DefaultHeightCm     float64
	LeadTimeDays        int
	DefaultHSNCode      string
	HSNByCategory       map[string]string
	DefaultShippingMode ShippingModeType
}

// HSNCodeFor категории сравниваются без учета регистра и пробелов по краям
// (ключи карты нормализуются при чтении из хранилища).
func (s ShipmentSettings) HSNCodeFor(category string) string {
	if code, ok := s.HSNByCategory[NormalizeCategory(category)]; ok && code != "" {
		return code
	}
	return s.DefaultHSNCode
}
