package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driving"
)

// Ensure warehouseService implements WarehouseService
var _ driving.WarehouseService = (*warehouseService)(nil)

// branchScopedRoles may list records tied to their own branch memberships
var branchScopedRoles = []domain.Role{
	domain.RoleBranchOwner,
	domain.RoleBranchAdmin,
	domain.RoleStockAdmin,
	domain.RoleStockDispatcher,
}

// warehouseService implements the WarehouseService interface
type warehouseService struct {
	warehouseStore driven.WarehouseStore
	linkStore      driven.BranchWarehouseStore
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(
	warehouseStore driven.WarehouseStore,
	linkStore driven.BranchWarehouseStore,
) driving.WarehouseService {
	return &warehouseService{
		warehouseStore: warehouseStore,
		linkStore:      linkStore,
	}
}

// Create adds a warehouse; company roles only
func (s *warehouseService) Create(ctx context.Context, actor *domain.AccessClaims, name string) (*domain.Warehouse, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	if name == "" || actor.CompanyID == nil || *actor.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}

	if !domain.HasAnyRole(actor.Memberships, domain.RoleCompanyOwner, domain.RoleCompanyAdmin) {
		return nil, domain.ErrUnauthorized
	}

	warehouse := &domain.Warehouse{
		ID:        uuid.NewString(),
		Name:      name,
		CompanyID: *actor.CompanyID,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.warehouseStore.Create(ctx, warehouse); err != nil {
		return nil, domain.ErrUnexpected
	}
	return warehouse, nil
}

// AssociateBranch links a warehouse to a branch
func (s *warehouseService) AssociateBranch(ctx context.Context, actor *domain.AccessClaims, warehouseID, branchID string) (*domain.BranchWarehouse, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	if warehouseID == "" || branchID == "" {
		return nil, domain.ErrInvalidInput
	}

	if !domain.CanActOnBranch(actor.Memberships, branchID) {
		return nil, domain.ErrUnauthorized
	}

	exists, err := s.linkStore.Exists(ctx, warehouseID, branchID)
	if err != nil {
		return nil, domain.ErrUnexpected
	}
	if exists {
		return nil, domain.ErrDuplicate
	}

	link := &domain.BranchWarehouse{
		WarehouseID: warehouseID,
		BranchID:    branchID,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := s.linkStore.Create(ctx, link); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, domain.ErrUnexpected
	}
	return link, nil
}

// List returns company-wide results for company roles and own-branch results
// for branch-scoped roles. A branch-scoped user with no branch ids gets an
// empty result, not an error.
func (s *warehouseService) List(ctx context.Context, actor *domain.AccessClaims) ([]domain.Warehouse, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	if actor.CompanyID == nil || *actor.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}

	if domain.HasAnyRole(actor.Memberships, domain.RoleCompanyOwner, domain.RoleCompanyAdmin) {
		warehouses, err := s.warehouseStore.ListByCompany(ctx, *actor.CompanyID)
		if err != nil {
			return nil, domain.ErrUnexpected
		}
		return warehouses, nil
	}

	var scoped []domain.Membership
	for _, m := range actor.Memberships {
		if domain.HasAnyRole([]domain.Membership{m}, branchScopedRoles...) {
			scoped = append(scoped, m)
		}
	}
	if len(scoped) == 0 {
		return nil, domain.ErrUnauthorized
	}

	branchIDs := domain.BranchIDs(scoped)
	if len(branchIDs) == 0 {
		return []domain.Warehouse{}, nil
	}

	warehouses, err := s.warehouseStore.ListByBranchIDs(ctx, branchIDs)
	if err != nil {
		return nil, domain.ErrUnexpected
	}
	return warehouses, nil
}
