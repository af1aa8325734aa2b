package driven

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// CompanyStore handles company persistence
type CompanyStore interface {
	Create(ctx context.Context, company *domain.Company) error
}

// BranchStore handles branch persistence and lookup
type BranchStore interface {
	Create(ctx context.Context, branch *domain.Branch) error

	// ListByIDs returns the branches matching the given ids; unknown ids
	// are silently skipped
	ListByIDs(ctx context.Context, ids []string) ([]domain.Branch, error)
}

// BoardMemberStore handles board membership persistence
type BoardMemberStore interface {
	Create(ctx context.Context, member *domain.BoardMember) error
}
