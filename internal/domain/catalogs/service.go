package catalogs

import "context"

// Service provides dimension lookups and the combined filter options payload.
type Service struct {
	repo Repository
}

// NewService creates a new catalogs service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Manufacturers returns all manufacturers, name ascending. Empty tables
// yield an empty slice, never nil.
func (s *Service) Manufacturers(ctx context.Context) ([]Manufacturer, error) {
	rows, err := s.repo.Manufacturers(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Manufacturer{}
	}
	return rows, nil
}

// VehicleTypes returns all vehicle types, name ascending.
func (s *Service) VehicleTypes(ctx context.Context) ([]VehicleType, error) {
	rows, err := s.repo.VehicleTypes(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []VehicleType{}
	}
	return rows, nil
}

// Colors returns all colors, name ascending.
func (s *Service) Colors(ctx context.Context) ([]Color, error) {
	rows, err := s.repo.Colors(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Color{}
	}
	return rows, nil
}

// FilterOptions assembles every dropdown value set for the listing page.
// Each set serializes as an array even when its table is empty.
func (s *Service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	manufacturers, err := s.Manufacturers(ctx)
	if err != nil {
		return nil, err
	}
	vehicleTypes, err := s.VehicleTypes(ctx)
	if err != nil {
		return nil, err
	}
	modelYears, err := s.repo.ModelYears(ctx)
	if err != nil {
		return nil, err
	}
	if modelYears == nil {
		modelYears = []int{}
	}
	fuelTypes, err := s.repo.FuelTypes(ctx)
	if err != nil {
		return nil, err
	}
	if fuelTypes == nil {
		fuelTypes = []string{}
	}
	colors, err := s.Colors(ctx)
	if err != nil {
		return nil, err
	}

	return &FilterOptions{
		Manufacturers: manufacturers,
		VehicleTypes:  vehicleTypes,
		ModelYears:    modelYears,
		FuelTypes:     fuelTypes,
		Colors:        colors,
	}, nil
}
