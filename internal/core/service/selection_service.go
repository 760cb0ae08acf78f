package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// SelectionService implements the student's class selections (the cart).
type SelectionService struct {
	repo ports.SelectionRepository
	log  zerolog.Logger
}

func NewSelectionService(repo ports.SelectionRepository, log zerolog.Logger) *SelectionService {
	return &SelectionService{repo: repo, log: log}
}

// Select records a class pick owned by input.Owner.
func (s *SelectionService) Select(ctx context.Context, input ports.SelectClassInput) (*domain.Selection, error) {
	selection := &domain.Selection{
		ClassID:        input.ClassID,
		ClassName:      input.ClassName,
		Image:          input.Image,
		Price:          input.Price,
		InstructorName: input.InstructorName,
		Email:          input.Owner,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, selection)
	if err != nil {
		s.log.Error().Err(err).Str("owner", input.Owner).Msg("failed to insert selection")
		return nil, fmt.Errorf("select class: %w", err)
	}
	return created, nil
}

func (s *SelectionService) ListOwned(ctx context.Context, email string) ([]*domain.Selection, error) {
	return s.repo.ListByEmail(ctx, email)
}

// Remove deletes a selection after checking the requester owns it. The
// ownership check is a read-then-delete, not a transaction; a concurrent
// delete of the same row is harmless.
func (s *SelectionService) Remove(ctx context.Context, id, requester string) error {
	selection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("remove selection: %w", err)
	}

	if selection.Email != requester {
		return fmt.Errorf("remove selection: %w", domain.ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove selection: %w", err)
	}

	s.log.Info().Str("selection_id", id).Str("owner", requester).Msg("selection removed")
	return nil
}
