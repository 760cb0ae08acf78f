package ports

import (
	"context"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// CreateClassInput carries the data needed to submit a new class. Owner is
// the verified identity from the credential, never a client-supplied field.
type CreateClassInput struct {
	Name           string
	Image          string
	InstructorName string
	Owner          string
	AvailableSeats int
	Price          float64
}

// ReviewClassInput carries an admin review decision for a pending class.
type ReviewClassInput struct {
	ClassID string
	Status  domain.ClassStatus
}

// ClassService defines use-case operations for classes.
type ClassService interface {
	// Create submits a class in pending state, owned by input.Owner.
	Create(ctx context.Context, input CreateClassInput) (*domain.Class, error)
	// ListApproved returns the public catalogue.
	ListApproved(ctx context.Context) ([]*domain.Class, error)
	// ListOwned returns the classes owned by email.
	ListOwned(ctx context.Context, email string) ([]*domain.Class, error)
	// ListAll returns every class regardless of status (admin view).
	ListAll(ctx context.Context) ([]*domain.Class, error)
	// Review transitions a pending class to approved or denied.
	// domain.ErrInvalidTransition when the class is not pending or the
	// target status is not a review outcome.
	Review(ctx context.Context, input ReviewClassInput) (*domain.Class, error)
	// SetFeedback attaches an admin note to a class.
	SetFeedback(ctx context.Context, classID, feedback string) error
}
