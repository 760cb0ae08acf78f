package ports

import (
	"context"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// ClassRepository defines persistence operations for classes.
type ClassRepository interface {
	Insert(ctx context.Context, class *domain.Class) (*domain.Class, error)
	FindByID(ctx context.Context, id string) (*domain.Class, error)
	// ListByStatus returns classes in the given review state, newest first.
	ListByStatus(ctx context.Context, status domain.ClassStatus) ([]*domain.Class, error)
	// ListByInstructor returns classes owned by the given identity.
	ListByInstructor(ctx context.Context, email string) ([]*domain.Class, error)
	ListAll(ctx context.Context) ([]*domain.Class, error)
	UpdateStatus(ctx context.Context, id string, status domain.ClassStatus) error
	SetFeedback(ctx context.Context, id string, feedback string) error
}
