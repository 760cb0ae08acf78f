package ports

import (
	"context"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// RegisterInput carries the profile data sent by the client after sign-up.
type RegisterInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// RegisterResult is returned by Register. AlreadyExisted is true when the
// email was registered before; registration is idempotent and this is not
// an error.
type RegisterResult struct {
	Account        *domain.Account
	AlreadyExisted bool
}

// AccountService defines use-case operations over accounts, including the
// role resolution the access-control gateway depends on.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	List(ctx context.Context) ([]*domain.Account, error)
	// RoleOf resolves the persisted role for an identity. Unknown identities
	// resolve to RoleNone, never an error.
	RoleOf(ctx context.Context, email string) (domain.Role, error)
	// Elevate grants role to the account with the given id.
	Elevate(ctx context.Context, id string, role domain.Role) (*domain.Account, error)
}
