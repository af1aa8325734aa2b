package driven

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// CategoryStore handles category persistence and tree lookup
type CategoryStore interface {
	Create(ctx context.Context, category *domain.Category) error

	// Get retrieves a category by id.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Category, error)

	// ListByCompany returns every category of a company
	ListByCompany(ctx context.Context, companyID string) ([]domain.Category, error)
}
