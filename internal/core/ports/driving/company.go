package driving

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// BranchInput describes the first branch created with a company
type BranchInput struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Address domain.Address `json:"address"`
}

// CreateCompanyRequest creates a company, its first branch, and a
// COMPANY_OWNER membership for the acting user
type CreateCompanyRequest struct {
	Name      string      `json:"name"`
	TenantURL *string     `json:"tenant_url,omitempty"`
	Branch    BranchInput `json:"branch"`
}

// CreateCompanyResult reports the created ids
type CreateCompanyResult struct {
	CompanyID string `json:"company_id"`
	BranchID  string `json:"branch_id"`
}

// CreateEmployeeRequest creates a credential plus a board membership in the
// acting user's company
type CreateEmployeeRequest struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Password  string        `json:"password"`
	BranchID  string        `json:"branch_id"`
	Roles     []domain.Role `json:"roles"`
}

// CreateEmployeeResult reports the created membership
type CreateEmployeeResult struct {
	UserID   string        `json:"user_id"`
	BranchID string        `json:"branch_id"`
	Roles    []domain.Role `json:"roles"`
}

// CompanyService handles company, branch, and employee operations
type CompanyService interface {
	CreateCompany(ctx context.Context, actor *domain.AccessClaims, req CreateCompanyRequest) (*CreateCompanyResult, error)

	// CreateEmployee is company-wide for COMPANY_OWNER/COMPANY_ADMIN and
	// own-branch only for BRANCH_OWNER/BRANCH_ADMIN
	CreateEmployee(ctx context.Context, actor *domain.AccessClaims, req CreateEmployeeRequest) (*CreateEmployeeResult, error)

	// ListBranches returns the branches matching the given ids
	ListBranches(ctx context.Context, branchIDs []string) ([]domain.Branch, error)
}
