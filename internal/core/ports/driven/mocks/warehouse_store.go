package mocks

import (
	"context"
	"sync"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Ensure mocks implement their ports
var (
	_ driven.WarehouseStore       = (*MockWarehouseStore)(nil)
	_ driven.BranchWarehouseStore = (*MockBranchWarehouseStore)(nil)
)

// MockWarehouseStore is an in-memory WarehouseStore for testing
type MockWarehouseStore struct {
	mu         sync.Mutex
	Warehouses []domain.Warehouse
	Links      []domain.BranchWarehouse

	FailCreate bool
	FailList   bool
}

// NewMockWarehouseStore creates a new MockWarehouseStore
func NewMockWarehouseStore() *MockWarehouseStore {
	return &MockWarehouseStore{}
}

func (m *MockWarehouseStore) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	if m.FailCreate {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Warehouses = append(m.Warehouses, *warehouse)
	return nil
}

func (m *MockWarehouseStore) ListByCompany(ctx context.Context, companyID string) ([]domain.Warehouse, error) {
	if m.FailList {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Warehouse
	for _, w := range m.Warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *MockWarehouseStore) ListByBranchIDs(ctx context.Context, branchIDs []string) ([]domain.Warehouse, error) {
	if m.FailList {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[string]bool, len(branchIDs))
	for _, id := range branchIDs {
		wanted[id] = true
	}
	linked := make(map[string]bool)
	for _, l := range m.Links {
		if wanted[l.BranchID] {
			linked[l.WarehouseID] = true
		}
	}
	var out []domain.Warehouse
	for _, w := range m.Warehouses {
		if linked[w.ID] {
			out = append(out, w)
		}
	}
	return out, nil
}

// AddLink seeds a warehouse-branch association for listing
func (m *MockWarehouseStore) AddLink(link domain.BranchWarehouse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Links = append(m.Links, link)
}

// MockBranchWarehouseStore is an in-memory BranchWarehouseStore for testing
type MockBranchWarehouseStore struct {
	mu    sync.Mutex
	Links []domain.BranchWarehouse

	FailExists bool
	FailCreate bool
}

// NewMockBranchWarehouseStore creates a new MockBranchWarehouseStore
func NewMockBranchWarehouseStore() *MockBranchWarehouseStore {
	return &MockBranchWarehouseStore{}
}

func (m *MockBranchWarehouseStore) Exists(ctx context.Context, warehouseID, branchID string) (bool, error) {
	if m.FailExists {
		return false, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.Links {
		if l.WarehouseID == warehouseID && l.BranchID == branchID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockBranchWarehouseStore) Create(ctx context.Context, link *domain.BranchWarehouse) error {
	if m.FailCreate {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.Links {
		if l.WarehouseID == link.WarehouseID && l.BranchID == link.BranchID {
			return domain.ErrDuplicate
		}
	}
	m.Links = append(m.Links, *link)
	return nil
}
