// Package catalogs provides the read-only dimension entities: manufacturers,
// vehicle types, colors, and the aggregated filter options that populate
// listing dropdowns.
package catalogs

// Manufacturer is a vehicle make.
type Manufacturer struct {
	ID   int64  `db:"manufacturer_id" json:"manufacturerId"`
	Name string `db:"manufacturer_name" json:"manufacturerName"`
}

// VehicleType is a body/category classification (sedan, SUV, ...).
type VehicleType struct {
	ID   int64  `db:"vehicle_type_id" json:"vehicleTypeId"`
	Name string `db:"vehicle_type_name" json:"vehicleTypeName"`
}

// Color is a paint color; vehicles link to colors many-to-many.
type Color struct {
	ID   int64  `db:"color_id" json:"colorId"`
	Name string `db:"color_name" json:"colorName"`
}

// FilterOptions holds every dropdown value set in one payload.
// Manufacturers, vehicle types, and colors are ordered by name ascending;
// model years descending; fuel types ascending. Each value appears once.
type FilterOptions struct {
	Manufacturers []Manufacturer `json:"manufacturers"`
	VehicleTypes  []VehicleType  `json:"vehicleTypes"`
	ModelYears    []int          `json:"modelYears"`
	FuelTypes     []string       `json:"fuelTypes"`
	Colors        []Color        `json:"colors"`
}
