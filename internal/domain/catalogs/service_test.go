package catalogs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	manufacturers []Manufacturer
	vehicleTypes  []VehicleType
	colors        []Color
	modelYears    []int
	fuelTypes     []string
	err           error
}

func (m *mockRepo) Manufacturers(ctx context.Context) ([]Manufacturer, error) {
	return m.manufacturers, m.err
}

func (m *mockRepo) VehicleTypes(ctx context.Context) ([]VehicleType, error) {
	return m.vehicleTypes, m.err
}

func (m *mockRepo) Colors(ctx context.Context) ([]Color, error) {
	return m.colors, m.err
}

func (m *mockRepo) ModelYears(ctx context.Context) ([]int, error) {
	return m.modelYears, m.err
}

func (m *mockRepo) FuelTypes(ctx context.Context) ([]string, error) {
	return m.fuelTypes, m.err
}

func TestFilterOptions_AssemblesAllSets(t *testing.T) {
	repo := &mockRepo{
		manufacturers: []Manufacturer{{ID: 1, Name: "Ford"}, {ID: 2, Name: "Honda"}},
		vehicleTypes:  []VehicleType{{ID: 1, Name: "Sedan"}},
		colors:        []Color{{ID: 1, Name: "Black"}, {ID: 2, Name: "Red"}},
		modelYears:    []int{2022, 2020, 2016},
		fuelTypes:     []string{"Diesel", "Gas"},
	}
	svc := NewService(repo)

	options, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, repo.manufacturers, options.Manufacturers)
	assert.Equal(t, repo.vehicleTypes, options.VehicleTypes)
	assert.Equal(t, repo.colors, options.Colors)
	assert.Equal(t, []int{2022, 2020, 2016}, options.ModelYears)
	assert.Equal(t, []string{"Diesel", "Gas"}, options.FuelTypes)
}

// Empty tables must serialize as [] rather than null in every set.
func TestFilterOptions_EmptyDatabase(t *testing.T) {
	svc := NewService(&mockRepo{})

	options, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, options.Manufacturers)
	assert.NotNil(t, options.VehicleTypes)
	assert.NotNil(t, options.Colors)
	assert.NotNil(t, options.ModelYears)
	assert.NotNil(t, options.FuelTypes)
	assert.Empty(t, options.Manufacturers)
	assert.Empty(t, options.ModelYears)
}

func TestDimensionLookups_EmptyDatabase(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()

	manufacturers, err := svc.Manufacturers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, manufacturers)

	vehicleTypes, err := svc.VehicleTypes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, vehicleTypes)

	colors, err := svc.Colors(ctx)
	require.NoError(t, err)
	assert.NotNil(t, colors)
}

func TestFilterOptions_ErrorPassThrough(t *testing.T) {
	svc := NewService(&mockRepo{err: errors.New("query failed")})

	_, err := svc.FilterOptions(context.Background())
	require.Error(t, err)
}
