package driven

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// WarehouseStore handles warehouse persistence and scoped listing
type WarehouseStore interface {
	Create(ctx context.Context, warehouse *domain.Warehouse) error

	// ListByCompany returns every warehouse of a company
	ListByCompany(ctx context.Context, companyID string) ([]domain.Warehouse, error)

	// ListByBranchIDs returns warehouses associated with any of the branches
	ListByBranchIDs(ctx context.Context, branchIDs []string) ([]domain.Warehouse, error)
}

// BranchWarehouseStore handles warehouse-branch associations
type BranchWarehouseStore interface {
	// Exists reports whether the association is already present
	Exists(ctx context.Context, warehouseID, branchID string) (bool, error)

	// Create persists the association.
	// Returns domain.ErrDuplicate when it already exists.
	Create(ctx context.Context, link *domain.BranchWarehouse) error
}
