package models

const (
	CategoryRuangan   = "ruangan"
	CategoryFasilitas = "fasilitas"
)

// Condition is the physical grading of an asset or a returned item.
type Condition string

const (
	CondBaik        Condition = "baik"
	CondRusakRingan Condition = "rusak_ringan"
	CondRusakBerat  Condition = "rusak_berat"
	CondHilang      Condition = "hilang"
)

func (c Condition) IsValid() bool {
	switch c {
	case CondBaik, CondRusakRingan, CondRusakBerat, CondHilang:
		return true
	default:
		return false
	}
}

func (c Condition) String() string {
	return string(c)
}

type ConditionCount struct {
	Condition Condition `json:"condition"`
	Quantity  int       `json:"quantity"`
}

type Asset struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Location       string           `json:"location"`
	TotalStock     int              `json:"totalStock"`
	AvailableStock int              `json:"availableStock"`
	Conditions     []ConditionCount `json:"conditions,omitempty"`
}
