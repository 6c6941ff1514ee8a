package parts

import "context"

// Repository defines the persistence interface for parts.
type Repository interface {
	// List returns all part rows.
	List(ctx context.Context) ([]PartRecord, error)

	// GetByID returns one part. Missing id yields apperror.CodeNotFound.
	GetByID(ctx context.Context, partID int64) (*PartRecord, error)

	// Insert creates a part row and returns its generated identifier.
	Insert(ctx context.Context, input PartInput) (int64, error)
}
