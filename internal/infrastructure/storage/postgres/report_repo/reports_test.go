package report_repo

import (
	"strings"
	"testing"
)

func TestReportOrdering(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		wantOrder string
	}{
		{
			name:      "sales productivity ranks by count then revenue",
			sql:       salesProductivitySQL,
			wantOrder: "ORDER BY vehicles_sold DESC, total_sold_price DESC",
		},
		{
			// Equal sale counts break ties by the cheapest total first.
			name:      "seller history breaks ties ascending",
			sql:       sellerHistorySQL,
			wantOrder: "ORDER BY vehicles_sold_to_dealer DESC, total_paid ASC",
		},
		{
			name:      "part statistics ranks by quantity",
			sql:       partStatisticsSQL,
			wantOrder: "ORDER BY parts_purchased DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.sql, tt.wantOrder) {
				t.Errorf("missing %q\nsql: %s", tt.wantOrder, tt.sql)
			}
		})
	}
}

func TestReportAggregates(t *testing.T) {
	// Empty groups must produce zeros, not NULLs, for the sum columns.
	for name, sql := range map[string]string{
		"sales productivity": salesProductivitySQL,
		"seller history":     sellerHistorySQL,
	} {
		if !strings.Contains(sql, "COALESCE(SUM(pt.purchase_price), 0)") {
			t.Errorf("%s report should coalesce summed price", name)
		}
	}

	// Averages divide by the group count and stay NULL for empty groups.
	if !strings.Contains(salesProductivitySQL, "ELSE NULL") {
		t.Error("sales productivity average should be NULL when nothing sold")
	}
	if !strings.Contains(partStatisticsSQL, "ELSE NULL") {
		t.Error("part statistics average should be NULL without parts")
	}
}
