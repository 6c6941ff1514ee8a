package inventory_repo

import (
	"strings"
	"testing"

	"dealerdesk/internal/domain/inventory"
)

func listSQL(t *testing.T, filter inventory.ListFilter, mode inventory.VisibilityMode) (string, []any) {
	t.Helper()
	repo := NewVehicleRepo(nil)
	q := applyFilter(applyVisibility(repo.baseSelect(), mode), filter).
		OrderBy("v.model_year DESC", "m.manufacturer_name ASC")
	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	return sql, args
}

func TestListQuery_VisibilityPredicates(t *testing.T) {
	tests := []struct {
		name        string
		mode        inventory.VisibilityMode
		wantNotSold bool
		wantStrict  bool
	}{
		{"all shows everything", inventory.VisibilityAll, false, false},
		{"sellable hides sold and pending parts", inventory.VisibilitySellable, true, false},
		{"buyer mode adds strict predicate", inventory.VisibilitySellableInstalled, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := listSQL(t, inventory.ListFilter{}, tt.mode)

			if got := strings.Contains(sql, "sales_transactions"); got != tt.wantNotSold {
				t.Errorf("not-sold predicate present = %v, want %v\nsql: %s", got, tt.wantNotSold, sql)
			}
			if got := strings.Contains(sql, "COALESCE(p2.status, '') <> 'Installed'"); got != tt.wantNotSold {
				t.Errorf("parts-installed predicate present = %v, want %v", got, tt.wantNotSold)
			}
			if got := strings.Contains(sql, "COALESCE(p3.status, '') <> '' AND p3.status <> 'Installed'"); got != tt.wantStrict {
				t.Errorf("strict predicate present = %v, want %v", got, tt.wantStrict)
			}
		})
	}
}

func TestListQuery_Shape(t *testing.T) {
	sql, args := listSQL(t, inventory.ListFilter{}, inventory.VisibilityAll)

	if len(args) != 0 {
		t.Errorf("unfiltered listing should have no args, got %v", args)
	}

	// Colors come from a correlated subquery so the aggregate over parts cost
	// is not inflated by the color join.
	if !strings.Contains(sql, "string_agg(DISTINCT c.color_name, ', ' ORDER BY c.color_name)") {
		t.Errorf("missing colors aggregation\nsql: %s", sql)
	}
	if !strings.Contains(sql, "COALESCE(SUM(p.cost * p.quantity), 0)::float8 AS parts_cost") {
		t.Errorf("missing parts cost aggregate\nsql: %s", sql)
	}
	if !strings.Contains(sql, "GROUP BY v.vehicle_id") {
		t.Errorf("missing GROUP BY\nsql: %s", sql)
	}
	if !strings.Contains(sql, "pt.purchase_price") {
		t.Errorf("purchase price must be selected and grouped\nsql: %s", sql)
	}
	if !strings.HasSuffix(sql, "ORDER BY v.model_year DESC, m.manufacturer_name ASC") {
		t.Errorf("wrong ordering\nsql: %s", sql)
	}
}

func TestListQuery_Filters(t *testing.T) {
	id3 := int64(3)
	year := 2021
	fuel := "Diesel"
	colorID := int64(4)
	colorName := "Red"

	t.Run("equality filters bind args", func(t *testing.T) {
		sql, args := listSQL(t, inventory.ListFilter{
			ManufacturerID: &id3,
			ModelYear:      &year,
			FuelType:       &fuel,
		}, inventory.VisibilitySellable)

		if !strings.Contains(sql, "v.manufacturer_id = $") {
			t.Errorf("missing manufacturer predicate\nsql: %s", sql)
		}
		if !strings.Contains(sql, "v.model_year = $") {
			t.Errorf("missing model year predicate\nsql: %s", sql)
		}
		if !strings.Contains(sql, "v.fuel_type = $") {
			t.Errorf("missing fuel type predicate\nsql: %s", sql)
		}
		if len(args) != 3 {
			t.Errorf("args = %v, want 3 values", args)
		}
	})

	t.Run("color id uses membership on join table", func(t *testing.T) {
		sql, args := listSQL(t, inventory.ListFilter{ColorID: &colorID}, inventory.VisibilityAll)

		if !strings.Contains(sql, "fvc.color_id = $1") {
			t.Errorf("missing color id predicate\nsql: %s", sql)
		}
		if len(args) != 1 || args[0] != colorID {
			t.Errorf("args = %v, want [4]", args)
		}
	})

	t.Run("color name joins colors", func(t *testing.T) {
		sql, args := listSQL(t, inventory.ListFilter{ColorName: &colorName}, inventory.VisibilityAll)

		if !strings.Contains(sql, "fc.color_name = $1") {
			t.Errorf("missing color name predicate\nsql: %s", sql)
		}
		if len(args) != 1 || args[0] != colorName {
			t.Errorf("args = %v, want [Red]", args)
		}
	})
}

func TestDetailQuery_NoVisibilityPredicate(t *testing.T) {
	repo := NewVehicleRepo(nil)
	q := repo.baseSelect()
	sql, _, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	if strings.Contains(sql, "sales_transactions") {
		t.Errorf("detail base query must not carry visibility predicates\nsql: %s", sql)
	}
}
