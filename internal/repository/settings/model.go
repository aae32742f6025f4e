package settings

type SettingsDB struct {
	DefaultWeightGrams  float64
	DefaultLengthCm     float64
	DefaultBreadthCm    float64
	DefaultHeightCm     float64
	LeadTimeDays        int
	DefaultHSNCode      string
	HSNByCategory       map[string]string
	DefaultShippingMode string
}
