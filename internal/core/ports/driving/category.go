package driving

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// CategoryService handles the company category tree
type CategoryService interface {
	// Create adds a category. The parent, if given, must exist in the same
	// company and must not introduce a cycle.
	Create(ctx context.Context, actor *domain.AccessClaims, name string, parentID *string) (*domain.Category, error)

	// List returns every category of the actor's company
	List(ctx context.Context, actor *domain.AccessClaims) ([]domain.Category, error)
}
