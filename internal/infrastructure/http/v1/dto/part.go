package dto

import (
	"dealerdesk/internal/domain/parts"
)

// InsertPartRequest creates a standalone part row; linking it to a part
// order happens elsewhere.
type InsertPartRequest struct {
	PartNumber  string   `json:"partNumber" binding:"required"`
	Description *string  `json:"description"`
	Cost        *float64 `json:"cost"`
	Quantity    *int     `json:"quantity"`
}

// ToInput converts the request to the domain part input.
func (r InsertPartRequest) ToInput() parts.PartInput {
	return parts.PartInput{
		PartNumber:  r.PartNumber,
		Description: r.Description,
		Cost:        r.Cost,
		Quantity:    r.Quantity,
	}
}
