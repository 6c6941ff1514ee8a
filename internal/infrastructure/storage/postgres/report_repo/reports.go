// Package report_repo provides PostgreSQL implementations for the report
// repository.
package report_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"dealerdesk/internal/domain/reports"
	"dealerdesk/internal/infrastructure/storage/postgres"
)

const salesProductivitySQL = `
	SELECT
		u.user_id,
		u.first_name || ' ' || u.last_name AS salesperson,
		COUNT(s.vehicle_id) AS vehicles_sold,
		COALESCE(SUM(pt.purchase_price), 0)::float8 AS total_sold_price,
		CASE WHEN COUNT(s.vehicle_id) > 0
			THEN (COALESCE(SUM(pt.purchase_price), 0) / COUNT(s.vehicle_id))::float8
			ELSE NULL
		END AS avg_sale_price
	FROM sales_transactions s
	JOIN users u ON s.user_id = u.user_id
	LEFT JOIN purchase_transactions pt ON s.vehicle_id = pt.vehicle_id
	GROUP BY u.user_id, u.first_name, u.last_name
	ORDER BY vehicles_sold DESC, total_sold_price DESC
`

// Seller history intentionally orders equal sale counts by total paid
// ascending.
const sellerHistorySQL = `
	SELECT
		c.customer_id,
		c.first_name || ' ' || c.last_name AS seller_name,
		COUNT(pt.vehicle_id) AS vehicles_sold_to_dealer,
		COALESCE(SUM(pt.purchase_price), 0)::float8 AS total_paid
	FROM purchase_transactions pt
	JOIN customers c ON pt.customer_id = c.customer_id
	GROUP BY c.customer_id, c.first_name, c.last_name
	ORDER BY vehicles_sold_to_dealer DESC, total_paid ASC
`

const partStatisticsSQL = `
	SELECT
		v.vendor_id,
		v.vendor_name,
		COALESCE(SUM(p.quantity), 0) AS parts_purchased,
		COALESCE(SUM(p.cost * p.quantity), 0.00)::float8 AS total_spent,
		CASE WHEN SUM(p.quantity) > 0
			THEN (SUM(p.cost * p.quantity) / SUM(p.quantity))::float8
			ELSE NULL
		END AS avg_cost_per_part
	FROM part_orders po
	JOIN vendors v ON po.vendor_id = v.vendor_id
	JOIN parts p ON p.part_order_id = po.part_order_id
	GROUP BY v.vendor_id, v.vendor_name
	ORDER BY parts_purchased DESC
`

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	tm *postgres.TxManager
}

// NewReportRepo creates a new report repository.
func NewReportRepo(tm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{tm: tm}
}

// SalesProductivity implements reports.Repository.
func (r *ReportRepo) SalesProductivity(ctx context.Context) ([]reports.SalesProductivityRow, error) {
	var rows []reports.SalesProductivityRow
	querier := r.tm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, salesProductivitySQL); err != nil {
		return nil, fmt.Errorf("sales productivity report: %w", err)
	}
	return rows, nil
}

// SellerHistory implements reports.Repository.
func (r *ReportRepo) SellerHistory(ctx context.Context) ([]reports.SellerHistoryRow, error) {
	var rows []reports.SellerHistoryRow
	querier := r.tm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sellerHistorySQL); err != nil {
		return nil, fmt.Errorf("seller history report: %w", err)
	}
	return rows, nil
}

// PartStatistics implements reports.Repository.
func (r *ReportRepo) PartStatistics(ctx context.Context) ([]reports.PartStatisticsRow, error) {
	var rows []reports.PartStatisticsRow
	querier := r.tm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, partStatisticsSQL); err != nil {
		return nil, fmt.Errorf("part statistics report: %w", err)
	}
	return rows, nil
}

// Ensure interface compliance
var _ reports.Repository = (*ReportRepo)(nil)
