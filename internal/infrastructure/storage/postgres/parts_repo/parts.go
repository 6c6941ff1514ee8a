// Package parts_repo provides the PostgreSQL implementation of the parts
// repository.
package parts_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dealerdesk/internal/core/apperror"
	"dealerdesk/internal/domain/parts"
	"dealerdesk/internal/infrastructure/storage/postgres"
)

// PartRepo implements parts.Repository.
type PartRepo struct {
	tm      *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewPartRepo creates a new part repository.
func NewPartRepo(tm *postgres.TxManager) *PartRepo {
	return &PartRepo{
		tm:      tm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PartRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.
		Select(
			"part_id", "part_number", "description",
			"cost::float8 AS cost", "quantity", "status", "part_order_id",
		).
		From("parts")
}

// List implements parts.Repository.
func (r *PartRepo) List(ctx context.Context) ([]parts.PartRecord, error) {
	sql, args, err := r.baseSelect().OrderBy("part_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build parts listing: %w", err)
	}

	var records []parts.PartRecord
	querier := r.tm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &records, sql, args...); err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}

	return records, nil
}

// GetByID implements parts.Repository.
func (r *PartRepo) GetByID(ctx context.Context, partID int64) (*parts.PartRecord, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"part_id": partID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build part detail: %w", err)
	}

	var record parts.PartRecord
	querier := r.tm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &record, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("part", partID)
		}
		return nil, fmt.Errorf("get part %d: %w", partID, err)
	}

	return &record, nil
}

// Insert implements parts.Repository.
func (r *PartRepo) Insert(ctx context.Context, input parts.PartInput) (int64, error) {
	q := r.builder.
		Insert("parts").
		Columns("part_number", "description", "cost", "quantity").
		Values(input.PartNumber, input.Description, input.Cost, input.Quantity).
		Suffix("RETURNING part_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build part insert: %w", err)
	}

	var partID int64
	querier := r.tm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&partID); err != nil {
		return 0, fmt.Errorf("insert part: %w", err)
	}

	return partID, nil
}

// Ensure interface compliance
var _ parts.Repository = (*PartRepo)(nil)
