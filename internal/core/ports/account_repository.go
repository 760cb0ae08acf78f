package ports

import (
	"context"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts. Email is the
// unique key; the backing store must enforce that uniqueness.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// InsertIfAbsent stores the account unless one with the same email
	// already exists. It reports whether a new record was created.
	InsertIfAbsent(ctx context.Context, account *domain.Account) (bool, error)
	// SetRole updates the role of the account with the given id and returns
	// the updated account. domain.ErrAccountNotFound when id is unknown.
	SetRole(ctx context.Context, id string, role domain.Role) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}
