package mocks

import (
	"context"
	"sync"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Ensure mocks implement their ports
var (
	_ driven.CompanyStore     = (*MockCompanyStore)(nil)
	_ driven.BranchStore      = (*MockBranchStore)(nil)
	_ driven.BoardMemberStore = (*MockBoardMemberStore)(nil)
)

// MockCompanyStore is an in-memory CompanyStore for testing
type MockCompanyStore struct {
	mu        sync.Mutex
	Companies []domain.Company

	FailCreate bool
}

// NewMockCompanyStore creates a new MockCompanyStore
func NewMockCompanyStore() *MockCompanyStore {
	return &MockCompanyStore{}
}

func (m *MockCompanyStore) Create(ctx context.Context, company *domain.Company) error {
	if m.FailCreate {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Companies = append(m.Companies, *company)
	return nil
}

// MockBranchStore is an in-memory BranchStore for testing
type MockBranchStore struct {
	mu       sync.Mutex
	Branches []domain.Branch

	FailCreate bool
	FailList   bool
}

// NewMockBranchStore creates a new MockBranchStore
func NewMockBranchStore() *MockBranchStore {
	return &MockBranchStore{}
}

func (m *MockBranchStore) Create(ctx context.Context, branch *domain.Branch) error {
	if m.FailCreate {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Branches = append(m.Branches, *branch)
	return nil
}

func (m *MockBranchStore) ListByIDs(ctx context.Context, ids []string) ([]domain.Branch, error) {
	if m.FailList {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []domain.Branch
	for _, b := range m.Branches {
		if wanted[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}

// MockBoardMemberStore is an in-memory BoardMemberStore for testing
type MockBoardMemberStore struct {
	mu      sync.Mutex
	Members []domain.BoardMember

	FailCreate bool
}

// NewMockBoardMemberStore creates a new MockBoardMemberStore
func NewMockBoardMemberStore() *MockBoardMemberStore {
	return &MockBoardMemberStore{}
}

func (m *MockBoardMemberStore) Create(ctx context.Context, member *domain.BoardMember) error {
	if m.FailCreate {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Members = append(m.Members, *member)
	return nil
}
