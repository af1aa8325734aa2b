package mocks

import (
	"context"
	"sync"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Ensure MockUserStore implements UserStore
var _ driven.UserStore = (*MockUserStore)(nil)

// MockUserStore is an in-memory UserStore for testing
type MockUserStore struct {
	mu          sync.Mutex
	usersByMail map[string]*domain.User
	memberships map[string][]domain.BoardMember // keyed by user id

	FailCreate bool
	FailGet    bool
	FailList   bool
}

// NewMockUserStore creates a new MockUserStore
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		usersByMail: make(map[string]*domain.User),
		memberships: make(map[string][]domain.BoardMember),
	}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.FailCreate {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.usersByMail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	clone := *user
	m.usersByMail[user.Email] = &clone
	return nil
}

func (m *MockUserStore) GetByEmailWithAuth(ctx context.Context, email string) (*domain.AuthUser, error) {
	if m.FailGet {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.usersByMail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	auth := &domain.AuthUser{User: *user}
	for _, bm := range m.memberships[user.ID] {
		if !bm.IsActive {
			continue
		}
		if auth.CompanyID == nil {
			companyID := bm.CompanyID
			auth.CompanyID = &companyID
		}
		for _, role := range bm.Roles {
			auth.Memberships = append(auth.Memberships, domain.Membership{
				Role:     role,
				BranchID: bm.BranchID,
			})
		}
	}
	return auth, nil
}

func (m *MockUserStore) ListBoardMemberships(ctx context.Context, userID string) ([]domain.BoardMember, error) {
	if m.FailList {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.BoardMember(nil), m.memberships[userID]...), nil
}

// AddUser seeds a credential
func (m *MockUserStore) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *user
	m.usersByMail[user.Email] = &clone
}

// AddBoardMember seeds a board membership
func (m *MockUserStore) AddBoardMember(member domain.BoardMember) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.memberships[member.UserID] = append(m.memberships[member.UserID], member)
}

// SetActive flips a seeded credential's active flag
func (m *MockUserStore) SetActive(email string, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.usersByMail[email]; ok {
		user.IsActive = active
	}
}
