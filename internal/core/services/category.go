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

// Ensure categoryService implements CategoryService
var _ driving.CategoryService = (*categoryService)(nil)

// categoryWriteRoles may create categories
var categoryWriteRoles = []domain.Role{
	domain.RoleCompanyOwner,
	domain.RoleCompanyAdmin,
	domain.RoleBranchOwner,
	domain.RoleBranchAdmin,
	domain.RoleStockAdmin,
}

// categoryReadRoles may list categories
var categoryReadRoles = []domain.Role{
	domain.RoleCompanyOwner,
	domain.RoleCompanyAdmin,
	domain.RoleBranchOwner,
	domain.RoleBranchAdmin,
	domain.RoleStockAdmin,
	domain.RoleStockDispatcher,
	domain.RoleSeller,
}

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryStore driven.CategoryStore
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryStore driven.CategoryStore) driving.CategoryService {
	return &categoryService{categoryStore: categoryStore}
}

// Create adds a category after validating the parent chain
func (s *categoryService) Create(ctx context.Context, actor *domain.AccessClaims, name string, parentID *string) (*domain.Category, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	if name == "" || actor.CompanyID == nil || *actor.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}

	if !domain.HasAnyRole(actor.Memberships, categoryWriteRoles...) {
		return nil, domain.ErrUnauthorized
	}

	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if parentID != nil {
		parent, err := s.categoryStore.Get(ctx, *parentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrInvalidParent
			}
			return nil, domain.ErrUnexpected
		}
		if parent.CompanyID != *actor.CompanyID {
			return nil, domain.ErrCrossCompany
		}

		cyclic, err := s.hasCycle(ctx, *parentID)
		if err != nil {
			return nil, domain.ErrUnexpected
		}
		if cyclic {
			return nil, domain.ErrCyclicTree
		}
	}

	category := &domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		ParentID:  parentID,
		CompanyID: *actor.CompanyID,
		CreatedAt: time.Now(),
	}
	if err := s.categoryStore.Create(ctx, category); err != nil {
		return nil, domain.ErrUnexpected
	}
	return category, nil
}

// List returns every category of the actor's company
func (s *categoryService) List(ctx context.Context, actor *domain.AccessClaims) ([]domain.Category, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	if actor.CompanyID == nil || *actor.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}

	if !domain.HasAnyRole(actor.Memberships, categoryReadRoles...) {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categoryStore.ListByCompany(ctx, *actor.CompanyID)
	if err != nil {
		return nil, domain.ErrUnexpected
	}
	return categories, nil
}

// hasCycle walks the parent chain upward from start, tracking visited ids.
// Revisiting an id signals a cycle; a nil parent terminates the walk.
func (s *categoryService) hasCycle(ctx context.Context, start string) (bool, error) {
	visited := make(map[string]bool)
	current := &start
	for current != nil {
		if visited[*current] {
			return true, nil
		}
		visited[*current] = true

		parent, err := s.categoryStore.Get(ctx, *current)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		current = parent.ParentID
	}
	return false, nil
}
