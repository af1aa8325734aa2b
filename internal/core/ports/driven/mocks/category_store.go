package mocks

import (
	"context"
	"sync"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Ensure MockCategoryStore implements CategoryStore
var _ driven.CategoryStore = (*MockCategoryStore)(nil)

// MockCategoryStore is an in-memory CategoryStore for testing
type MockCategoryStore struct {
	mu         sync.Mutex
	Categories map[string]domain.Category

	FailCreate bool
	FailGet    bool
	FailList   bool
}

// NewMockCategoryStore creates a new MockCategoryStore
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{Categories: make(map[string]domain.Category)}
}

func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.FailCreate {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Categories[category.ID] = *category
	return nil
}

func (m *MockCategoryStore) Get(ctx context.Context, id string) (*domain.Category, error) {
	if m.FailGet {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	category, ok := m.Categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &category, nil
}

func (m *MockCategoryStore) ListByCompany(ctx context.Context, companyID string) ([]domain.Category, error) {
	if m.FailList {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Category
	for _, c := range m.Categories {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Add seeds a category directly, bypassing failure toggles
func (m *MockCategoryStore) Add(category domain.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Categories[category.ID] = category
}
