package postgres

import (
	"context"
	"database/sql"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.BoardMemberStore = (*BoardMemberStore)(nil)

// BoardMemberStore implements driven.BoardMemberStore using PostgreSQL
type BoardMemberStore struct {
	db *DB
}

// NewBoardMemberStore creates a new BoardMemberStore
func NewBoardMemberStore(db *DB) *BoardMemberStore {
	return &BoardMemberStore{db: db}
}

// Create persists a membership and its roles in one transaction, so a
// membership can never exist without its role rows
func (s *BoardMemberStore) Create(ctx context.Context, member *domain.BoardMember) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		memberQuery := `
			INSERT INTO board_members (id, user_id, company_id, branch_id, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := tx.ExecContext(ctx, memberQuery,
			member.ID,
			member.UserID,
			member.CompanyID,
			NullString(member.BranchID),
			member.IsActive,
			member.CreatedAt,
		); err != nil {
			return err
		}

		roleQuery := `
			INSERT INTO board_member_roles (board_member_id, role)
			VALUES ($1, $2)
		`
		for _, role := range member.Roles {
			if _, err := tx.ExecContext(ctx, roleQuery, member.ID, string(role)); err != nil {
				return err
			}
		}
		return nil
	})
}
