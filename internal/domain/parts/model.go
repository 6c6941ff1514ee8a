// Package parts provides the parts catalog: listing, detail lookup, and the
// part write path.
package parts

// PartStatus is the closed set of statuses the core understands. The stored
// column is free text; unrecognized values map to StatusUnknown rather than
// failing. Only StatusInstalled carries business meaning: a vehicle with any
// linked part in another status is not sellable.
type PartStatus string

const (
	StatusInstalled PartStatus = "Installed"
	StatusOrdered   PartStatus = "Ordered"
	StatusReceived  PartStatus = "Received"
	StatusUnknown   PartStatus = "Unknown"
)

// ParseStatus maps a stored status string to a PartStatus.
func ParseStatus(raw string) PartStatus {
	switch PartStatus(raw) {
	case StatusInstalled:
		return StatusInstalled
	case StatusOrdered:
		return StatusOrdered
	case StatusReceived:
		return StatusReceived
	default:
		return StatusUnknown
	}
}

// PartRecord is a part row as exposed to callers.
type PartRecord struct {
	ID          int64    `db:"part_id" json:"partId"`
	PartNumber  string   `db:"part_number" json:"partNumber"`
	Description *string  `db:"description" json:"description,omitempty"`
	Cost        *float64 `db:"cost" json:"cost,omitempty"`
	Quantity    *int     `db:"quantity" json:"quantity,omitempty"`
	Status      *string  `db:"status" json:"status,omitempty"`
	PartOrderID *int64   `db:"part_order_id" json:"partOrderId,omitempty"`
}

// PartInput holds the fields for a new part row. No part-order linkage is
// created here; linking is a separate concern.
type PartInput struct {
	PartNumber  string
	Description *string
	Cost        *float64
	Quantity    *int
}
