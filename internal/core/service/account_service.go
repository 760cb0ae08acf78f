package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// RoleCache abstracts the bounded-TTL role cache (Redis). A nil cache is
// valid: every RoleOf call then reads the account store.
type RoleCache interface {
	Get(ctx context.Context, email string) (domain.Role, bool, error)
	Set(ctx context.Context, email string, role domain.Role) error
	Invalidate(ctx context.Context, email string) error
}

// AccountService implements registration, role resolution, and elevation.
type AccountService struct {
	repo  ports.AccountRepository
	cache RoleCache
	log   zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, cache RoleCache, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, cache: cache, log: log}
}

// Register creates an account for input.Email unless one already exists.
// Re-registering is a no-op reported through AlreadyExisted, not an error.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("register: empty email")
	}

	account := &domain.Account{
		Email:     input.Email,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		Role:      domain.RoleNone,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.InsertIfAbsent(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	// Fetch back to get the store-assigned ID (and, on the idempotent
	// path, the original record).
	stored, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if created {
		s.log.Info().Str("email", input.Email).Msg("account registered")
	} else {
		s.log.Debug().Str("email", input.Email).Msg("duplicate registration ignored")
	}

	return &ports.RegisterResult{Account: stored, AlreadyExisted: !created}, nil
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

// RoleOf resolves the persisted role for email. Unknown identities resolve
// to RoleNone. Cache reads are best effort: a cache failure falls through to
// the account store rather than failing the request.
func (s *AccountService) RoleOf(ctx context.Context, email string) (domain.Role, error) {
	if email == "" {
		return domain.RoleNone, nil
	}

	if s.cache != nil {
		role, ok, err := s.cache.Get(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("role cache read failed, falling back to store")
		} else if ok {
			return role, nil
		}
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, fmt.Errorf("resolve role: %w", err)
	}

	role := account.Role
	if !role.Elevated() {
		role = domain.RoleNone
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, email, role); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("role cache write failed")
		}
	}
	return role, nil
}

// Elevate grants role to the account with the given id and invalidates the
// cached role so the change is visible immediately.
func (s *AccountService) Elevate(ctx context.Context, id string, role domain.Role) (*domain.Account, error) {
	if !role.Elevated() {
		return nil, domain.ErrInvalidRole
	}

	updated, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("elevate: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, updated.Email); err != nil {
			s.log.Warn().Err(err).Str("email", updated.Email).Msg("role cache invalidation failed")
		}
	}

	s.log.Info().Str("email", updated.Email).Str("role", string(role)).Msg("role elevated")
	return updated, nil
}
