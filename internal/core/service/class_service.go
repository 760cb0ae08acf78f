package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// ClassService implements class submission, listing, and admin review.
type ClassService struct {
	repo ports.ClassRepository
	log  zerolog.Logger
}

func NewClassService(repo ports.ClassRepository, log zerolog.Logger) *ClassService {
	return &ClassService{repo: repo, log: log}
}

// Create submits a new class. Every class starts pending; only an admin
// review moves it into the public catalogue.
func (s *ClassService) Create(ctx context.Context, input ports.CreateClassInput) (*domain.Class, error) {
	class := &domain.Class{
		Name:            input.Name,
		Image:           input.Image,
		InstructorName:  input.InstructorName,
		InstructorEmail: input.Owner,
		AvailableSeats:  input.AvailableSeats,
		Price:           input.Price,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, class)
	if err != nil {
		s.log.Error().Err(err).Str("owner", input.Owner).Msg("failed to create class")
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.log.Info().Str("class_id", created.ID).Str("owner", input.Owner).Msg("class submitted")
	return created, nil
}

func (s *ClassService) ListApproved(ctx context.Context) ([]*domain.Class, error) {
	return s.repo.ListByStatus(ctx, domain.StatusApproved)
}

func (s *ClassService) ListOwned(ctx context.Context, email string) ([]*domain.Class, error) {
	return s.repo.ListByInstructor(ctx, email)
}

func (s *ClassService) ListAll(ctx context.Context) ([]*domain.Class, error) {
	return s.repo.ListAll(ctx)
}

// Review applies an admin decision to a pending class.
func (s *ClassService) Review(ctx context.Context, input ports.ReviewClassInput) (*domain.Class, error) {
	class, err := s.repo.FindByID(ctx, input.ClassID)
	if err != nil {
		return nil, fmt.Errorf("review class: %w", err)
	}

	if !class.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("review class: %w (from %s to %s)", domain.ErrInvalidTransition, class.Status, input.Status)
	}

	if err := s.repo.UpdateStatus(ctx, input.ClassID, input.Status); err != nil {
		return nil, fmt.Errorf("review class: %w", err)
	}

	class.Status = input.Status
	s.log.Info().Str("class_id", class.ID).Str("status", string(input.Status)).Msg("class reviewed")
	return class, nil
}

func (s *ClassService) SetFeedback(ctx context.Context, classID, feedback string) error {
	if _, err := s.repo.FindByID(ctx, classID); err != nil {
		return fmt.Errorf("set feedback: %w", err)
	}
	if err := s.repo.SetFeedback(ctx, classID, feedback); err != nil {
		return fmt.Errorf("set feedback: %w", err)
	}
	return nil
}
