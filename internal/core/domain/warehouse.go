package domain

import "time"

// Warehouse represents a company storage site
type Warehouse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CompanyID string    `json:"company_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// BranchWarehouse links a warehouse to a branch it serves
type BranchWarehouse struct {
	WarehouseID string    `json:"warehouse_id"`
	BranchID    string    `json:"branch_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
