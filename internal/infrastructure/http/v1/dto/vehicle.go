package dto

import (
	"dealerdesk/internal/domain/inventory"
)

// ListVehiclesQuery mirrors the raw listing filters. Values stay strings
// here; the filter normalizer owns parsing and silently drops anything
// malformed.
type ListVehiclesQuery struct {
	ManufacturerID string `form:"manufacturer_id"`
	VehicleTypeID  string `form:"vehicle_type_id"`
	ModelYear      string `form:"model_year"`
	FuelType       string `form:"fuel_type"`
	ColorID        string `form:"color_id"`
	ColorName      string `form:"color_name"`
}

// Raw returns the query as the raw parameter map the normalizer accepts.
func (q ListVehiclesQuery) Raw() map[string]string {
	return map[string]string{
		inventory.ParamManufacturerID: q.ManufacturerID,
		inventory.ParamVehicleTypeID:  q.VehicleTypeID,
		inventory.ParamModelYear:      q.ModelYear,
		inventory.ParamFuelType:       q.FuelType,
		inventory.ParamColorID:        q.ColorID,
		inventory.ParamColorName:      q.ColorName,
	}
}

// SellVehicleRequest creates a vehicle and, when price is present, records
// the purchase transaction as a second non-atomic phase.
type SellVehicleRequest struct {
	VIN            string   `json:"vin"`
	Mileage        *float64 `json:"mileage"`
	ModelName      string   `json:"modelName" binding:"required"`
	ModelYear      *int     `json:"modelYear"`
	FuelType       *string  `json:"fuelType"`
	ManufacturerID *int64   `json:"manufacturerId"`
	VehicleTypeID  *int64   `json:"vehicleTypeId"`
	Description    *string  `json:"description"`

	Price      *float64 `json:"price"`
	UserID     int64    `json:"userId"`
	CustomerID int64    `json:"customerId"`
	Condition  string   `json:"condition"`
}

// ToInput converts the request to the domain sell input.
func (r SellVehicleRequest) ToInput() inventory.SellInput {
	return inventory.SellInput{
		Vehicle: inventory.VehicleInput{
			VIN:            r.VIN,
			Mileage:        r.Mileage,
			ModelName:      r.ModelName,
			ModelYear:      r.ModelYear,
			FuelType:       r.FuelType,
			ManufacturerID: r.ManufacturerID,
			VehicleTypeID:  r.VehicleTypeID,
			Description:    r.Description,
		},
		Price:      r.Price,
		UserID:     r.UserID,
		CustomerID: r.CustomerID,
		Condition:  r.Condition,
	}
}
