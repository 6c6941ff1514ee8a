package reports

import "context"

// Service provides report generation.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SalesProductivity returns the sales productivity report.
func (s *Service) SalesProductivity(ctx context.Context) ([]SalesProductivityRow, error) {
	rows, err := s.repo.SalesProductivity(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SalesProductivityRow{}
	}
	return rows, nil
}

// SellerHistory returns the seller history report.
func (s *Service) SellerHistory(ctx context.Context) ([]SellerHistoryRow, error) {
	rows, err := s.repo.SellerHistory(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SellerHistoryRow{}
	}
	return rows, nil
}

// PartStatistics returns the part statistics report.
func (s *Service) PartStatistics(ctx context.Context) ([]PartStatisticsRow, error) {
	rows, err := s.repo.PartStatistics(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []PartStatisticsRow{}
	}
	return rows, nil
}
