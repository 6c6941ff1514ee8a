// Package inventory_repo provides the PostgreSQL implementation of the
// inventory query layer.
package inventory_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dealerdesk/internal/core/apperror"
	"dealerdesk/internal/domain/inventory"
	"dealerdesk/internal/domain/parts"
	"dealerdesk/internal/infrastructure/storage/postgres"
)

// colorsExpr collects a vehicle's distinct color names into one display
// string, alphabetical, comma+space separated. A correlated subquery keeps
// the parts-cost SUM in the outer query exact for multi-color vehicles.
const colorsExpr = "COALESCE((" +
	"SELECT string_agg(DISTINCT c.color_name, ', ' ORDER BY c.color_name) " +
	"FROM vehicle_colors vc JOIN colors c ON c.color_id = vc.color_id " +
	"WHERE vc.vehicle_id = v.vehicle_id" +
	"), '') AS colors"

// Predicates deciding which vehicles a listing may show. A vehicle is
// sellable when nothing was sold against it and every linked part is
// "Installed"; the consumer-facing mode additionally rejects parts whose
// non-empty status differs from "Installed".
const (
	notSoldPredicate = "NOT EXISTS (" +
		"SELECT 1 FROM sales_transactions s WHERE s.vehicle_id = v.vehicle_id)"

	partsInstalledPredicate = "NOT EXISTS (" +
		"SELECT 1 FROM part_orders po2 JOIN parts p2 ON p2.part_order_id = po2.part_order_id " +
		"WHERE po2.vehicle_id = v.vehicle_id AND COALESCE(p2.status, '') <> '%s')"

	strictInstalledPredicate = "NOT EXISTS (" +
		"SELECT 1 FROM part_orders po3 JOIN parts p3 ON p3.part_order_id = po3.part_order_id " +
		"WHERE po3.vehicle_id = v.vehicle_id AND COALESCE(p3.status, '') <> '' AND p3.status <> '%s')"
)

// VehicleRepo implements inventory.Repository.
type VehicleRepo struct {
	tm      *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewVehicleRepo creates a new vehicle repository.
func NewVehicleRepo(tm *postgres.TxManager) *VehicleRepo {
	return &VehicleRepo{
		tm:      tm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// baseSelect builds the enrichment query shared by listing and detail:
// dimension names joined in, purchase price left-joined (at most one purchase
// per vehicle is assumed), parts cost summed over the part-order chain, and
// every non-aggregate column in the GROUP BY so a vehicle with zero parts,
// colors, or purchases still appears exactly once.
func (r *VehicleRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.
		Select(
			"v.vehicle_id", "v.vin", "v.mileage", "v.description",
			"v.model_name", "v.model_year", "v.fuel_type",
			"v.manufacturer_id", "m.manufacturer_name",
			"v.vehicle_type_id", "vt.vehicle_type_name",
			colorsExpr,
			"pt.purchase_price::float8 AS purchase_price",
			"COALESCE(SUM(p.cost * p.quantity), 0)::float8 AS parts_cost",
		).
		From("vehicles v").
		LeftJoin("manufacturers m ON v.manufacturer_id = m.manufacturer_id").
		LeftJoin("vehicle_types vt ON v.vehicle_type_id = vt.vehicle_type_id").
		LeftJoin("purchase_transactions pt ON pt.vehicle_id = v.vehicle_id").
		LeftJoin("part_orders po ON po.vehicle_id = v.vehicle_id").
		LeftJoin("parts p ON p.part_order_id = po.part_order_id").
		GroupBy(
			"v.vehicle_id", "v.vin", "v.mileage", "v.description",
			"v.model_name", "v.model_year", "v.fuel_type",
			"v.manufacturer_id", "m.manufacturer_name",
			"v.vehicle_type_id", "vt.vehicle_type_name",
			"pt.purchase_price",
		)
}

// applyVisibility adds the predicates for the given mode.
func applyVisibility(q squirrel.SelectBuilder, mode inventory.VisibilityMode) squirrel.SelectBuilder {
	if mode == inventory.VisibilityAll {
		return q
	}

	q = q.Where(notSoldPredicate).
		Where(fmt.Sprintf(partsInstalledPredicate, parts.StatusInstalled))

	if mode == inventory.VisibilitySellableInstalled {
		q = q.Where(fmt.Sprintf(strictInstalledPredicate, parts.StatusInstalled))
	}

	return q
}

// applyFilter adds one equality predicate per present filter; colors use a
// membership predicate on the join table.
func applyFilter(q squirrel.SelectBuilder, filter inventory.ListFilter) squirrel.SelectBuilder {
	if filter.ManufacturerID != nil {
		q = q.Where(squirrel.Eq{"v.manufacturer_id": *filter.ManufacturerID})
	}
	if filter.VehicleTypeID != nil {
		q = q.Where(squirrel.Eq{"v.vehicle_type_id": *filter.VehicleTypeID})
	}
	if filter.ModelYear != nil {
		q = q.Where(squirrel.Eq{"v.model_year": *filter.ModelYear})
	}
	if filter.FuelType != nil {
		q = q.Where(squirrel.Eq{"v.fuel_type": *filter.FuelType})
	}
	if filter.ColorID != nil {
		q = q.Where(
			"EXISTS (SELECT 1 FROM vehicle_colors fvc WHERE fvc.vehicle_id = v.vehicle_id AND fvc.color_id = ?)",
			*filter.ColorID,
		)
	} else if filter.ColorName != nil {
		q = q.Where(
			"EXISTS (SELECT 1 FROM vehicle_colors fvc JOIN colors fc ON fc.color_id = fvc.color_id "+
				"WHERE fvc.vehicle_id = v.vehicle_id AND fc.color_name = ?)",
			*filter.ColorName,
		)
	}
	return q
}

// List implements inventory.Repository.
func (r *VehicleRepo) List(ctx context.Context, filter inventory.ListFilter, mode inventory.VisibilityMode) ([]inventory.VehicleRecord, error) {
	q := applyFilter(applyVisibility(r.baseSelect(), mode), filter).
		OrderBy("v.model_year DESC", "m.manufacturer_name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vehicle listing: %w", err)
	}

	var records []inventory.VehicleRecord
	querier := r.tm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &records, sql, args...); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	return records, nil
}

// GetByID implements inventory.Repository. The detail view carries no
// visibility predicate: sold and parts-pending vehicles are still returned.
func (r *VehicleRepo) GetByID(ctx context.Context, vehicleID int64) (*inventory.VehicleRecord, error) {
	q := r.baseSelect().Where(squirrel.Eq{"v.vehicle_id": vehicleID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vehicle detail: %w", err)
	}

	var record inventory.VehicleRecord
	querier := r.tm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &record, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("vehicle", vehicleID)
		}
		return nil, fmt.Errorf("get vehicle %d: %w", vehicleID, err)
	}

	return &record, nil
}

// Insert implements inventory.Repository.
func (r *VehicleRepo) Insert(ctx context.Context, input inventory.VehicleInput) (int64, error) {
	q := r.builder.
		Insert("vehicles").
		Columns(
			"vin", "mileage", "description", "model_name",
			"model_year", "fuel_type", "manufacturer_id", "vehicle_type_id",
		).
		Values(
			input.VIN, input.Mileage, input.Description, input.ModelName,
			input.ModelYear, input.FuelType, input.ManufacturerID, input.VehicleTypeID,
		).
		Suffix("RETURNING vehicle_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build vehicle insert: %w", err)
	}

	var vehicleID int64
	querier := r.tm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&vehicleID); err != nil {
		return 0, fmt.Errorf("insert vehicle: %w", err)
	}

	return vehicleID, nil
}

// InsertPurchase implements inventory.Repository.
func (r *VehicleRepo) InsertPurchase(ctx context.Context, input inventory.PurchaseInput) error {
	q := r.builder.
		Insert("purchase_transactions").
		Columns(
			"vehicle_id", "user_id", "customer_id",
			"purchase_price", "purchase_date", "vehicle_condition",
		).
		Values(
			input.VehicleID, input.UserID, input.CustomerID,
			input.PurchasePrice, squirrel.Expr("CURRENT_DATE"), input.VehicleCondition,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build purchase insert: %w", err)
	}

	querier := r.tm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert purchase transaction: %w", err)
	}

	return nil
}

// Ensure interface compliance
var _ inventory.Repository = (*VehicleRepo)(nil)
