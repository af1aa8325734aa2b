package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.WarehouseStore = (*WarehouseStore)(nil)

// WarehouseStore implements driven.WarehouseStore using PostgreSQL
type WarehouseStore struct {
	db *DB
}

// NewWarehouseStore creates a new WarehouseStore
func NewWarehouseStore(db *DB) *WarehouseStore {
	return &WarehouseStore{db: db}
}

// Create persists a new warehouse
func (s *WarehouseStore) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, company_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		warehouse.ID,
		warehouse.Name,
		warehouse.CompanyID,
		warehouse.IsActive,
		warehouse.CreatedAt,
	)
	return err
}

// ListByCompany returns every warehouse of a company
func (s *WarehouseStore) ListByCompany(ctx context.Context, companyID string) ([]domain.Warehouse, error) {
	query := `
		SELECT id, name, company_id, is_active, created_at
		FROM warehouses
		WHERE company_id = $1
		ORDER BY created_at
	`
	return s.scanWarehouses(s.db.QueryContext(ctx, query, companyID))
}

// ListByBranchIDs returns warehouses associated with any of the branches
func (s *WarehouseStore) ListByBranchIDs(ctx context.Context, branchIDs []string) ([]domain.Warehouse, error) {
	query := `
		SELECT DISTINCT w.id, w.name, w.company_id, w.is_active, w.created_at
		FROM warehouses w
		JOIN branch_warehouses bw ON bw.warehouse_id = w.id
		WHERE bw.branch_id = ANY($1)
		ORDER BY w.created_at
	`
	return s.scanWarehouses(s.db.QueryContext(ctx, query, pq.Array(branchIDs)))
}

func (s *WarehouseStore) scanWarehouses(rows *sql.Rows, err error) ([]domain.Warehouse, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.CompanyID, &w.IsActive, &w.CreatedAt); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return warehouses, nil
}
