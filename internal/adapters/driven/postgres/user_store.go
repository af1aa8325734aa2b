package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.UserStore = (*UserStore)(nil)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// UserStore implements driven.UserStore using PostgreSQL
type UserStore struct {
	db *DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Create persists a new credential.
// The hash must already be in Argon2 encoded form; a plaintext-looking
// value is refused so a misconfigured hasher can never leak passwords
// into the table.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if !strings.HasPrefix(user.PasswordHash, "$argon2") {
		return fmt.Errorf("refusing to store non-argon2 password hash")
	}

	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmailWithAuth resolves a credential and its active memberships in
// one round trip per concern: the user row, then the membership rows.
func (s *UserStore) GetByEmailWithAuth(ctx context.Context, email string) (*domain.AuthUser, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var auth domain.AuthUser
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&auth.ID,
		&auth.FirstName,
		&auth.LastName,
		&auth.Email,
		&auth.PasswordHash,
		&auth.IsActive,
		&auth.CreatedAt,
		&auth.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	memberQuery := `
		SELECT bm.company_id, bm.branch_id, r.role
		FROM board_members bm
		JOIN board_member_roles r ON r.board_member_id = bm.id
		WHERE bm.user_id = $1 AND bm.is_active = TRUE
		ORDER BY bm.created_at
	`

	rows, err := s.db.QueryContext(ctx, memberQuery, auth.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var companyID string
		var branchID sql.NullString
		var role string
		if err := rows.Scan(&companyID, &branchID, &role); err != nil {
			return nil, err
		}
		if auth.CompanyID == nil {
			auth.CompanyID = &companyID
		}
		auth.Memberships = append(auth.Memberships, domain.Membership{
			Role:     domain.Role(role),
			BranchID: StringPtr(branchID),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &auth, nil
}

// ListBoardMemberships returns all board-member records for a user,
// active or not
func (s *UserStore) ListBoardMemberships(ctx context.Context, userID string) ([]domain.BoardMember, error) {
	query := `
		SELECT bm.id, bm.user_id, bm.company_id, bm.branch_id, bm.is_active, bm.created_at,
		       COALESCE(ARRAY_AGG(r.role) FILTER (WHERE r.role IS NOT NULL), '{}')
		FROM board_members bm
		LEFT JOIN board_member_roles r ON r.board_member_id = bm.id
		WHERE bm.user_id = $1
		GROUP BY bm.id
		ORDER BY bm.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.BoardMember
	for rows.Next() {
		var m domain.BoardMember
		var branchID sql.NullString
		var roles pq.StringArray
		if err := rows.Scan(&m.ID, &m.UserID, &m.CompanyID, &branchID, &m.IsActive, &m.CreatedAt, &roles); err != nil {
			return nil, err
		}
		m.BranchID = StringPtr(branchID)
		for _, r := range roles {
			m.Roles = append(m.Roles, domain.Role(r))
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
