package ports

import (
	"context"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// SelectClassInput carries the data for adding a class to a student's
// selections. Owner is the verified identity from the credential.
type SelectClassInput struct {
	ClassID        string
	ClassName      string
	Image          string
	Price          float64
	InstructorName string
	Owner          string
}

// SelectionService defines use-case operations for selections.
type SelectionService interface {
	Select(ctx context.Context, input SelectClassInput) (*domain.Selection, error)
	// ListOwned returns the selections owned by email.
	ListOwned(ctx context.Context, email string) ([]*domain.Selection, error)
	// Remove deletes the selection with the given id if requester owns it.
	// domain.ErrForbidden when requester is not the owner.
	Remove(ctx context.Context, id, requester string) error
}
