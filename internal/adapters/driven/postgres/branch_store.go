package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.BranchStore = (*BranchStore)(nil)

// BranchStore implements driven.BranchStore using PostgreSQL
type BranchStore struct {
	db *DB
}

// NewBranchStore creates a new BranchStore
func NewBranchStore(db *DB) *BranchStore {
	return &BranchStore{db: db}
}

// Create persists a new branch
func (s *BranchStore) Create(ctx context.Context, branch *domain.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, phone, street, neighborhood, city, country, zip_code, number, complement, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.ExecContext(ctx, query,
		branch.ID,
		branch.CompanyID,
		branch.Name,
		branch.Phone,
		branch.Address.Street,
		branch.Address.Neighborhood,
		branch.Address.City,
		branch.Address.Country,
		branch.Address.ZipCode,
		branch.Address.Number,
		NullString(branch.Address.Complement),
		branch.CreatedAt,
	)
	return err
}

// ListByIDs returns the branches matching the given ids; unknown ids are
// silently skipped
func (s *BranchStore) ListByIDs(ctx context.Context, ids []string) ([]domain.Branch, error) {
	query := `
		SELECT id, company_id, name, phone, street, neighborhood, city, country, zip_code, number, complement, created_at
		FROM branches
		WHERE id = ANY($1)
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var b domain.Branch
		var complement sql.NullString
		if err := rows.Scan(
			&b.ID,
			&b.CompanyID,
			&b.Name,
			&b.Phone,
			&b.Address.Street,
			&b.Address.Neighborhood,
			&b.Address.City,
			&b.Address.Country,
			&b.Address.ZipCode,
			&b.Address.Number,
			&complement,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		b.Address.Complement = StringPtr(complement)
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}
