package models

type ItemType string

const (
	ItemTypeRoom     ItemType = "room"
	ItemTypeFacility ItemType = "facility"
)

// ReturnItem is one constituent of a loan tracked during return processing.
// The set is built when a return is initiated and discarded once the return
// is confirmed or cancelled; it is never persisted on its own.
type ReturnItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      ItemType  `json:"type"`
	Quantity  int       `json:"quantity"`
	Returned  bool      `json:"returned"`
	Condition Condition `json:"condition"`
}

// ReturnedItem is the shape submitted to the backend on confirmation.
type ReturnedItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Condition Condition `json:"condition"`
}
