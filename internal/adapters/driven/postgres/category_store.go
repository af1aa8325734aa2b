package postgres

import (
	"context"
	"database/sql"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CategoryStore = (*CategoryStore)(nil)

// CategoryStore implements driven.CategoryStore using PostgreSQL
type CategoryStore struct {
	db *DB
}

// NewCategoryStore creates a new CategoryStore
func NewCategoryStore(db *DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Create persists a new category
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, parent_id, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		category.ID,
		category.Name,
		NullString(category.ParentID),
		category.CompanyID,
		category.CreatedAt,
	)
	return err
}

// Get retrieves a category by id
func (s *CategoryStore) Get(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, name, parent_id, company_id, created_at
		FROM categories
		WHERE id = $1
	`

	var c domain.Category
	var parentID sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&parentID,
		&c.CompanyID,
		&c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.ParentID = StringPtr(parentID)
	return &c, nil
}

// ListByCompany returns every category of a company
func (s *CategoryStore) ListByCompany(ctx context.Context, companyID string) ([]domain.Category, error) {
	query := `
		SELECT id, name, parent_id, company_id, created_at
		FROM categories
		WHERE company_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		var parentID sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &parentID, &c.CompanyID, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ParentID = StringPtr(parentID)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
