package ports

import (
	"context"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// InstructorRepository defines persistence operations for instructor profiles.
type InstructorRepository interface {
	Insert(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error)
	List(ctx context.Context) ([]*domain.Instructor, error)
}
