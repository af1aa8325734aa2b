package driving

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// WarehouseService handles warehouse operations
type WarehouseService interface {
	// Create is restricted to COMPANY_OWNER/COMPANY_ADMIN
	Create(ctx context.Context, actor *domain.AccessClaims, name string) (*domain.Warehouse, error)

	// AssociateBranch links a warehouse to a branch; branch roles may only
	// target their own branch. Returns domain.ErrDuplicate when the link
	// already exists.
	AssociateBranch(ctx context.Context, actor *domain.AccessClaims, warehouseID, branchID string) (*domain.BranchWarehouse, error)

	// List returns company-wide results for company roles and own-branch
	// results for branch-scoped roles
	List(ctx context.Context, actor *domain.AccessClaims) ([]domain.Warehouse, error)
}
