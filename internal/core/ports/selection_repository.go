package ports

import (
	"context"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// SelectionRepository defines persistence operations for class selections.
type SelectionRepository interface {
	Insert(ctx context.Context, selection *domain.Selection) (*domain.Selection, error)
	FindByID(ctx context.Context, id string) (*domain.Selection, error)
	// ListByEmail returns the selections owned by the given identity.
	ListByEmail(ctx context.Context, email string) ([]*domain.Selection, error)
	Delete(ctx context.Context, id string) error
}
