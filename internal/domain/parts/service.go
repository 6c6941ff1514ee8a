package parts

import (
	"context"

	"dealerdesk/internal/core/apperror"
)

// Service provides business operations for parts.
type Service struct {
	repo Repository
}

// NewService creates a new parts service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListParts returns all parts.
func (s *Service) ListParts(ctx context.Context) ([]PartRecord, error) {
	return s.repo.List(ctx)
}

// GetPartByID returns one part by id.
func (s *Service) GetPartByID(ctx context.Context, partID int64) (*PartRecord, error) {
	return s.repo.GetByID(ctx, partID)
}

// InsertPart creates a part row with minimal validation and returns the
// generated identifier.
func (s *Service) InsertPart(ctx context.Context, input PartInput) (int64, error) {
	if input.PartNumber == "" {
		return 0, apperror.NewValidation("part number is required").
			WithDetail("field", "partNumber")
	}
	if input.Cost != nil && *input.Cost < 0 {
		return 0, apperror.NewValidation("cost cannot be negative").
			WithDetail("field", "cost")
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return 0, apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}
	return s.repo.Insert(ctx, input)
}
