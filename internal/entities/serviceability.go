package entities

type ProductType string

const (
	ProductStandard ProductType = "standard"
	ProductHeavy    ProductType = "heavy"
)

type Serviceability struct {
	Pincode     string
	Serviceable bool
	COD         bool
	Prepaid     bool
	Pickup      bool
	Embargo     bool
	Remark      string
	City        string
	State       string
}
