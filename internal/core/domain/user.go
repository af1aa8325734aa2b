package domain

import (
	"regexp"
	"time"
)

// Role defines a company permission level held through a board membership
type Role string

const (
	RoleCompanyOwner    Role = "COMPANY_OWNER"
	RoleCompanyAdmin    Role = "COMPANY_ADMIN"
	RoleBranchOwner     Role = "BRANCH_OWNER"
	RoleBranchAdmin     Role = "BRANCH_ADMIN"
	RoleStockAdmin      Role = "STOCK_ADMIN"
	RoleStockDispatcher Role = "STOCK_DISPATCHER"
	RoleSeller          Role = "SELLER"
)

// Valid reports whether r is one of the closed role set
func (r Role) Valid() bool {
	switch r {
	case RoleCompanyOwner, RoleCompanyAdmin, RoleBranchOwner, RoleBranchAdmin,
		RoleStockAdmin, RoleStockDispatcher, RoleSeller:
		return true
	}
	return false
}

// Membership is a (role, branch) pair held by a user.
// BranchID is nil for company-scoped roles.
type Membership struct {
	Role     Role    `json:"role"`
	BranchID *string `json:"branch_id"`
}

// User represents a credential record
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize
	IsActive     bool      `json:"is_active"`
	CompanyID    *string   `json:"company_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthUser is a credential plus its active memberships, as resolved for login
type AuthUser struct {
	User
	Memberships []Membership `json:"memberships"`
}

// BoardMember joins a user, a company, and a branch to a set of roles
type BoardMember struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	BranchID  *string   `json:"branch_id,omitempty"`
	Roles     []Role    `json:"roles"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// HasAnyRole reports whether any membership carries one of the given roles
func HasAnyRole(memberships []Membership, roles ...Role) bool {
	for _, m := range memberships {
		for _, r := range roles {
			if m.Role == r {
				return true
			}
		}
	}
	return false
}

// CanActOnBranch reports whether the memberships authorize a write targeting
// branchID: company-wide roles always may, branch roles only on their own branch
func CanActOnBranch(memberships []Membership, branchID string) bool {
	for _, m := range memberships {
		switch m.Role {
		case RoleCompanyOwner, RoleCompanyAdmin:
			return true
		case RoleBranchOwner, RoleBranchAdmin:
			if m.BranchID != nil && *m.BranchID == branchID {
				return true
			}
		}
	}
	return false
}

// BranchIDs returns the distinct branch ids across the given memberships
func BranchIDs(memberships []Membership) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, m := range memberships {
		if m.BranchID == nil || seen[*m.BranchID] {
			continue
		}
		seen[*m.BranchID] = true
		ids = append(ids, *m.BranchID)
	}
	return ids
}
