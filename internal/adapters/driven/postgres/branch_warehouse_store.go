package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.BranchWarehouseStore = (*BranchWarehouseStore)(nil)

// BranchWarehouseStore implements driven.BranchWarehouseStore using PostgreSQL
type BranchWarehouseStore struct {
	db *DB
}

// NewBranchWarehouseStore creates a new BranchWarehouseStore
func NewBranchWarehouseStore(db *DB) *BranchWarehouseStore {
	return &BranchWarehouseStore{db: db}
}

// Exists reports whether the association is already present
func (s *BranchWarehouseStore) Exists(ctx context.Context, warehouseID, branchID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM branch_warehouses
			WHERE warehouse_id = $1 AND branch_id = $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, warehouseID, branchID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create persists the association.
// The primary key backs the check in Exists, so a concurrent insert still
// surfaces as ErrDuplicate.
func (s *BranchWarehouseStore) Create(ctx context.Context, link *domain.BranchWarehouse) error {
	query := `
		INSERT INTO branch_warehouses (warehouse_id, branch_id, is_active, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(ctx, query,
		link.WarehouseID,
		link.BranchID,
		link.IsActive,
		link.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}
