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

// Ensure companyService implements CompanyService
var _ driving.CompanyService = (*companyService)(nil)

// companyService implements the CompanyService interface
type companyService struct {
	companyStore     driven.CompanyStore
	branchStore      driven.BranchStore
	boardMemberStore driven.BoardMemberStore
	userStore        driven.UserStore
	hasher           driven.PasswordHasher
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companyStore driven.CompanyStore,
	branchStore driven.BranchStore,
	boardMemberStore driven.BoardMemberStore,
	userStore driven.UserStore,
	hasher driven.PasswordHasher,
) driving.CompanyService {
	return &companyService{
		companyStore:     companyStore,
		branchStore:      branchStore,
		boardMemberStore: boardMemberStore,
		userStore:        userStore,
		hasher:           hasher,
	}
}

// CreateCompany creates a company, its first branch, and a COMPANY_OWNER
// membership for the acting user, in that order
func (s *companyService) CreateCompany(ctx context.Context, actor *domain.AccessClaims, req driving.CreateCompanyRequest) (*driving.CreateCompanyResult, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	if req.Name == "" || req.Branch.Name == "" || req.Branch.Phone == "" || !req.Branch.Address.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	company := &domain.Company{
		ID:        uuid.NewString(),
		Name:      req.Name,
		TenantURL: req.TenantURL,
		IsActive:  true,
		CreatedAt: now,
	}
	if err := s.companyStore.Create(ctx, company); err != nil {
		return nil, domain.ErrUnexpected
	}

	branch := &domain.Branch{
		ID:        uuid.NewString(),
		CompanyID: company.ID,
		Name:      req.Branch.Name,
		Phone:     req.Branch.Phone,
		Address:   req.Branch.Address,
		CreatedAt: now,
	}
	if err := s.branchStore.Create(ctx, branch); err != nil {
		return nil, domain.ErrUnexpected
	}

	member := &domain.BoardMember{
		ID:        uuid.NewString(),
		UserID:    actor.UserID,
		CompanyID: company.ID,
		BranchID:  &branch.ID,
		Roles:     []domain.Role{domain.RoleCompanyOwner},
		IsActive:  true,
		CreatedAt: now,
	}
	if err := s.boardMemberStore.Create(ctx, member); err != nil {
		return nil, domain.ErrUnexpected
	}

	return &driving.CreateCompanyResult{
		CompanyID: company.ID,
		BranchID:  branch.ID,
	}, nil
}

// CreateEmployee creates a credential plus a board membership.
// Company roles may target any branch; branch roles only their own.
func (s *companyService) CreateEmployee(ctx context.Context, actor *domain.AccessClaims, req driving.CreateEmployeeRequest) (*driving.CreateEmployeeResult, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	if actor.CompanyID == nil || *actor.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.FirstName == "" || req.LastName == "" || !domain.ValidEmail(req.Email) ||
		req.Password == "" || req.BranchID == "" || len(req.Roles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, r := range req.Roles {
		if !r.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}

	if !domain.CanActOnBranch(actor.Memberships, req.BranchID) {
		return nil, domain.ErrUnauthorized
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, domain.ErrUnexpected
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		CompanyID:    actor.CompanyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, domain.ErrUnexpected
	}

	member := &domain.BoardMember{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CompanyID: *actor.CompanyID,
		BranchID:  &req.BranchID,
		Roles:     req.Roles,
		IsActive:  true,
		CreatedAt: now,
	}
	if err := s.boardMemberStore.Create(ctx, member); err != nil {
		return nil, domain.ErrUnexpected
	}

	return &driving.CreateEmployeeResult{
		UserID:   user.ID,
		BranchID: req.BranchID,
		Roles:    req.Roles,
	}, nil
}

// ListBranches returns the branches matching the given ids
func (s *companyService) ListBranches(ctx context.Context, branchIDs []string) ([]domain.Branch, error) {
	if len(branchIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, id := range branchIDs {
		if id == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	branches, err := s.branchStore.ListByIDs(ctx, branchIDs)
	if err != nil {
		return nil, domain.ErrUnexpected
	}
	return branches, nil
}
