package postgres

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CompanyStore = (*CompanyStore)(nil)

// CompanyStore implements driven.CompanyStore using PostgreSQL
type CompanyStore struct {
	db *DB
}

// NewCompanyStore creates a new CompanyStore
func NewCompanyStore(db *DB) *CompanyStore {
	return &CompanyStore{db: db}
}

// Create persists a new company
func (s *CompanyStore) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, name, tenant_url, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		company.ID,
		company.Name,
		NullString(company.TenantURL),
		company.IsActive,
		company.CreatedAt,
	)
	return err
}
