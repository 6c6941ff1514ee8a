package catalogs

import "context"

// Repository defines the persistence interface for dimension entities.
type Repository interface {
	Manufacturers(ctx context.Context) ([]Manufacturer, error)
	VehicleTypes(ctx context.Context) ([]VehicleType, error)
	Colors(ctx context.Context) ([]Color, error)

	// ModelYears returns distinct non-null model years, descending.
	ModelYears(ctx context.Context) ([]int, error)

	// FuelTypes returns distinct non-null fuel types, ascending.
	FuelTypes(ctx context.Context) ([]string, error)
}
