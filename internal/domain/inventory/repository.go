package inventory

import "context"

// Repository defines the persistence interface for the inventory query layer.
type Repository interface {
	// List returns enriched vehicle rows matching the filter under the given
	// visibility mode, ordered by model year descending then manufacturer
	// name ascending. Derived sales price is NOT filled by the repository.
	List(ctx context.Context, filter ListFilter, mode VisibilityMode) ([]VehicleRecord, error)

	// GetByID returns the enriched row for one vehicle regardless of its
	// sale or parts state. Missing id yields apperror.CodeNotFound.
	GetByID(ctx context.Context, vehicleID int64) (*VehicleRecord, error)

	// Insert creates a vehicle row and returns its generated identifier.
	Insert(ctx context.Context, input VehicleInput) (int64, error)

	// InsertPurchase records a purchase transaction for a vehicle.
	InsertPurchase(ctx context.Context, input PurchaseInput) error
}
