package reports

import "context"

// Repository defines the three parameterless aggregation queries. Each
// returns an empty slice, not an error, when no rows match.
type Repository interface {
	// SalesProductivity: per selling user, count of vehicles sold and
	// aggregate purchase prices; count descending, then total descending.
	SalesProductivity(ctx context.Context) ([]SalesProductivityRow, error)

	// SellerHistory: per customer, vehicles sold to the dealer and total
	// paid; count descending, then total paid ascending.
	SellerHistory(ctx context.Context) ([]SellerHistoryRow, error)

	// PartStatistics: per vendor, quantity purchased, total spent, average
	// cost per unit; quantity descending.
	PartStatistics(ctx context.Context) ([]PartStatisticsRow, error)
}
