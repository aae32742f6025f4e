package settings

import "shipment/internal/entities"

// ToDomain ключи категорий нормализуются здесь, чтобы HSNCodeFor сравнивал без учета регистра.
func ToDomain(s *SettingsDB) *entities.ShipmentSettings {
	if s == nil {
		return nil
	}

	hsnByCategory := make(map[string]string, len(s.HSNByCategory))
	for category, code := range s.HSNByCategory {
		hsnByCategory[entities.NormalizeCategory(category)] = code
	}

	return &entities.ShipmentSettings{
		DefaultWeightGrams:  s.DefaultWeightGrams,
		DefaultLengthCm:     s.DefaultLengthCm,
		DefaultBreadthCm:    s.DefaultBreadthCm,
		DefaultHeightCm:     s.DefaultHeightCm,
		LeadTimeDays:        s.LeadTimeDays,
		DefaultHSNCode:      s.DefaultHSNCode,
		HSNByCategory:       hsnByCategory,
		DefaultShippingMode: entities.ShippingModeType(s.DefaultShippingMode),
	}
}
