// Package reports provides the aggregated business reports: sales
// productivity, seller history, and part statistics.
package reports

// SalesProductivityRow aggregates sales transactions per handling user.
// Users appear only when they handled at least one sale; AvgSalePrice is
// nil-safe by construction but kept nullable to mirror the query.
type SalesProductivityRow struct {
	UserID         int64    `db:"user_id" json:"userId"`
	Salesperson    string   `db:"salesperson" json:"salesperson"`
	VehiclesSold   int64    `db:"vehicles_sold" json:"vehiclesSold"`
	TotalSoldPrice float64  `db:"total_sold_price" json:"totalSoldPrice"`
	AvgSalePrice   *float64 `db:"avg_sale_price" json:"avgSalePrice,omitempty"`
}

// SellerHistoryRow aggregates purchase transactions per selling customer.
type SellerHistoryRow struct {
	CustomerID           int64   `db:"customer_id" json:"customerId"`
	SellerName           string  `db:"seller_name" json:"sellerName"`
	VehiclesSoldToDealer int64   `db:"vehicles_sold_to_dealer" json:"vehiclesSoldToDealer"`
	TotalPaid            float64 `db:"total_paid" json:"totalPaid"`
}

// PartStatisticsRow aggregates part purchases per vendor.
type PartStatisticsRow struct {
	VendorID       int64    `db:"vendor_id" json:"vendorId"`
	VendorName     string   `db:"vendor_name" json:"vendorName"`
	PartsPurchased int64    `db:"parts_purchased" json:"partsPurchased"`
	TotalSpent     float64  `db:"total_spent" json:"totalSpent"`
	AvgCostPerPart *float64 `db:"avg_cost_per_part" json:"avgCostPerPart,omitempty"`
}
