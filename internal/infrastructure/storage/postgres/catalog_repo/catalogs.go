// Package catalog_repo provides the PostgreSQL implementation for the
// dimension entities backing filter dropdowns.
package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dealerdesk/internal/domain/catalogs"
	"dealerdesk/internal/infrastructure/storage/postgres"
)

// CatalogRepo implements catalogs.Repository.
type CatalogRepo struct {
	tm      *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewCatalogRepo creates a new catalog repository.
func NewCatalogRepo(tm *postgres.TxManager) *CatalogRepo {
	return &CatalogRepo{
		tm:      tm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CatalogRepo) manufacturersQuery() squirrel.SelectBuilder {
	return r.builder.
		Select("manufacturer_id", "manufacturer_name").
		From("manufacturers").
		OrderBy("manufacturer_name ASC")
}

func (r *CatalogRepo) vehicleTypesQuery() squirrel.SelectBuilder {
	return r.builder.
		Select("vehicle_type_id", "vehicle_type_name").
		From("vehicle_types").
		OrderBy("vehicle_type_name ASC")
}

func (r *CatalogRepo) colorsQuery() squirrel.SelectBuilder {
	return r.builder.
		Select("color_id", "color_name").
		From("colors").
		OrderBy("color_name ASC")
}

// Distinct year/fuel values come from the vehicles table itself; NULLs are
// excluded so dropdowns never offer an unusable option.
func (r *CatalogRepo) modelYearsQuery() squirrel.SelectBuilder {
	return r.builder.
		Select("DISTINCT model_year").
		From("vehicles").
		Where("model_year IS NOT NULL").
		OrderBy("model_year DESC")
}

func (r *CatalogRepo) fuelTypesQuery() squirrel.SelectBuilder {
	return r.builder.
		Select("DISTINCT fuel_type").
		From("vehicles").
		Where("fuel_type IS NOT NULL").
		OrderBy("fuel_type ASC")
}

// Manufacturers implements catalogs.Repository.
func (r *CatalogRepo) Manufacturers(ctx context.Context) ([]catalogs.Manufacturer, error) {
	sql, args, err := r.manufacturersQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build manufacturers query: %w", err)
	}

	var rows []catalogs.Manufacturer
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	return rows, nil
}

// VehicleTypes implements catalogs.Repository.
func (r *CatalogRepo) VehicleTypes(ctx context.Context) ([]catalogs.VehicleType, error) {
	sql, args, err := r.vehicleTypesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vehicle types query: %w", err)
	}

	var rows []catalogs.VehicleType
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list vehicle types: %w", err)
	}
	return rows, nil
}

// Colors implements catalogs.Repository.
func (r *CatalogRepo) Colors(ctx context.Context) ([]catalogs.Color, error) {
	sql, args, err := r.colorsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build colors query: %w", err)
	}

	var rows []catalogs.Color
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	return rows, nil
}

// ModelYears implements catalogs.Repository.
func (r *CatalogRepo) ModelYears(ctx context.Context) ([]int, error) {
	sql, args, err := r.modelYearsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build model years query: %w", err)
	}

	var years []int
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &years, sql, args...); err != nil {
		return nil, fmt.Errorf("list model years: %w", err)
	}
	return years, nil
}

// FuelTypes implements catalogs.Repository.
func (r *CatalogRepo) FuelTypes(ctx context.Context) ([]string, error) {
	sql, args, err := r.fuelTypesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fuel types query: %w", err)
	}

	var fuels []string
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &fuels, sql, args...); err != nil {
		return nil, fmt.Errorf("list fuel types: %w", err)
	}
	return fuels, nil
}

// Ensure interface compliance
var _ catalogs.Repository = (*CatalogRepo)(nil)
