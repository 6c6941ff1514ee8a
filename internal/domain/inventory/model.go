// Package inventory is the vehicle inventory query layer: role-scoped
// listing, detail lookup, and the vehicle write path.
package inventory

import (
	"github.com/shopspring/decimal"
)

// VehicleRecord is an enriched vehicle row as exposed to callers: the stored
// vehicle columns joined with dimension names plus derived fields. Colors is
// a comma-joined display string, alphabetical, duplicates collapsed.
type VehicleRecord struct {
	ID               int64    `db:"vehicle_id" json:"vehicleId"`
	VIN              *string  `db:"vin" json:"vin,omitempty"`
	Mileage          *float64 `db:"mileage" json:"mileage,omitempty"`
	Description      *string  `db:"description" json:"description,omitempty"`
	ModelName        string   `db:"model_name" json:"modelName"`
	ModelYear        *int     `db:"model_year" json:"modelYear,omitempty"`
	FuelType         *string  `db:"fuel_type" json:"fuelType,omitempty"`
	ManufacturerID   *int64   `db:"manufacturer_id" json:"manufacturerId,omitempty"`
	ManufacturerName *string  `db:"manufacturer_name" json:"manufacturerName,omitempty"`
	VehicleTypeID    *int64   `db:"vehicle_type_id" json:"vehicleTypeId,omitempty"`
	VehicleTypeName  *string  `db:"vehicle_type_name" json:"vehicleTypeName,omitempty"`

	// Colors is "" for vehicles with no color rows.
	Colors string `db:"colors" json:"colors"`

	// PurchasePrice is nil when no purchase transaction exists.
	PurchasePrice *float64 `db:"purchase_price" json:"purchasePrice,omitempty"`

	// PartsCost is 0 for vehicles with no linked parts.
	PartsCost float64 `db:"parts_cost" json:"partsCost"`

	// SalesPrice is derived (see SalesPrice), nil without a purchase price.
	SalesPrice *float64 `db:"-" json:"salesPrice,omitempty"`
}

// Fixed pricing formula: 140% of the purchase price plus 120% of parts cost.
var (
	purchaseMarkup = decimal.NewFromFloat(1.4)
	partsMarkup    = decimal.NewFromFloat(1.2)
)

// SalesPrice computes round(1.4*purchase + 1.2*partsCost, 2).
// Returns nil when there is no purchase price: the sales price is undefined,
// not zero.
func SalesPrice(purchasePrice *float64, partsCost float64) *float64 {
	if purchasePrice == nil {
		return nil
	}
	price := purchaseMarkup.Mul(decimal.NewFromFloat(*purchasePrice)).
		Add(partsMarkup.Mul(decimal.NewFromFloat(partsCost))).
		Round(2)
	f, _ := price.Float64()
	return &f
}

// enrich fills the derived sales price on a scanned record.
func (r *VehicleRecord) enrich() {
	r.SalesPrice = SalesPrice(r.PurchasePrice, r.PartsCost)
}

// VehicleInput holds the fields for a new vehicle row. No VIN uniqueness is
// enforced at this layer; duplicates pass through.
type VehicleInput struct {
	VIN            string
	Mileage        *float64
	ModelName      string
	ModelYear      *int
	FuelType       *string
	ManufacturerID *int64
	VehicleTypeID  *int64
	Description    *string
}

// PurchaseInput records the dealership acquiring a vehicle.
type PurchaseInput struct {
	VehicleID        int64
	UserID           int64
	CustomerID       int64
	PurchasePrice    float64
	VehicleCondition string
}

// SellInput is the two-phase "list a car for sale" operation: insert the
// vehicle, then optionally record the purchase transaction.
type SellInput struct {
	Vehicle VehicleInput

	// Price, when set, triggers the second phase.
	Price *float64

	// UserID/CustomerID identify who handled and who sold the vehicle.
	UserID     int64
	CustomerID int64

	// Condition defaults to "Good" when empty.
	Condition string
}

// SellResult reports which phases of SellVehicle succeeded. The two inserts
// are not atomic: a vehicle without a purchase record is a valid, if
// incomplete, state.
type SellResult struct {
	VehicleID         int64  `json:"vehicleId"`
	PurchaseRequested bool   `json:"purchaseRequested"`
	PurchaseRecorded  bool   `json:"purchaseRecorded"`
	PurchaseError     string `json:"purchaseError,omitempty"`
}

// PartialWrite reports whether the purchase phase was requested but not recorded.
func (r SellResult) PartialWrite() bool {
	return r.PurchaseRequested && !r.PurchaseRecorded
}
