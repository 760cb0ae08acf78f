package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository and cache
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byEmail map[string]*domain.Account
	nextID  int
	finds   int // FindByEmail call count, to observe cache hits
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) InsertIfAbsent(_ context.Context, account *domain.Account) (bool, error) {
	if _, exists := r.byEmail[account.Email]; exists {
		return false, nil
	}
	r.nextID++
	stored := cloneAccount(account)
	stored.ID = string(rune('a' + r.nextID))
	r.byEmail[account.Email] = stored
	return true, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.finds++
	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) SetRole(_ context.Context, id string, role domain.Role) (*domain.Account, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			a.Role = role
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0, len(r.byEmail))
	for _, a := range r.byEmail {
		out = append(out, cloneAccount(a))
	}
	return out, nil
}

type stubRoleCache struct {
	roles map[string]domain.Role
}

func newStubRoleCache() *stubRoleCache {
	return &stubRoleCache{roles: make(map[string]domain.Role)}
}

func (c *stubRoleCache) Get(_ context.Context, email string) (domain.Role, bool, error) {
	role, ok := c.roles[email]
	return role, ok, nil
}

func (c *stubRoleCache) Set(_ context.Context, email string, role domain.Role) error {
	c.roles[email] = role
	return nil
}

func (c *stubRoleCache) Invalidate(_ context.Context, email string) error {
	delete(c.roles, email)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAccountService_Register_Idempotent(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, nil, zerolog.Nop())

	first, err := svc.Register(context.Background(), ports.RegisterInput{Email: "alice@x.com", Name: "Alice"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if first.AlreadyExisted {
		t.Fatalf("first registration reported as existing")
	}
	if first.Account.Role != domain.RoleNone {
		t.Fatalf("new account should start with no role, got %s", first.Account.Role)
	}

	second, err := svc.Register(context.Background(), ports.RegisterInput{Email: "alice@x.com", Name: "Alice Again"})
	if err != nil {
		t.Fatalf("duplicate Register returned error: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("duplicate registration not reported")
	}
	if second.Account.Name != "Alice" {
		t.Fatalf("duplicate registration overwrote original record: %s", second.Account.Name)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected exactly one account record, got %d", len(repo.byEmail))
	}
}

func TestAccountService_Register_EmptyEmail(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), nil, zerolog.Nop())
	if _, err := svc.Register(context.Background(), ports.RegisterInput{}); err == nil {
		t.Fatalf("expected error for empty email")
	}
}

func TestAccountService_RoleOf_UnknownIsNone(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), nil, zerolog.Nop())

	role, err := svc.RoleOf(context.Background(), "ghost@x.com")
	if err != nil {
		t.Fatalf("RoleOf returned error: %v", err)
	}
	if role != domain.RoleNone {
		t.Fatalf("expected none, got %s", role)
	}
}

func TestAccountService_RoleOf_UsesCache(t *testing.T) {
	repo := newStubAccountRepo()
	cache := newStubRoleCache()
	svc := NewAccountService(repo, cache, zerolog.Nop())

	reg, err := svc.Register(context.Background(), ports.RegisterInput{Email: "bob@x.com", Name: "Bob"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.Elevate(context.Background(), reg.Account.ID, domain.RoleInstructor); err != nil {
		t.Fatalf("Elevate returned error: %v", err)
	}

	before := repo.finds
	if role, _ := svc.RoleOf(context.Background(), "bob@x.com"); role != domain.RoleInstructor {
		t.Fatalf("expected instructor, got %s", role)
	}
	if repo.finds != before+1 {
		t.Fatalf("first resolution should hit the store")
	}

	// Second resolution is served from the cache.
	if role, _ := svc.RoleOf(context.Background(), "bob@x.com"); role != domain.RoleInstructor {
		t.Fatalf("expected instructor from cache")
	}
	if repo.finds != before+1 {
		t.Fatalf("second resolution should not hit the store")
	}
}

func TestAccountService_Elevate_VisibleAfterCacheInvalidation(t *testing.T) {
	repo := newStubAccountRepo()
	cache := newStubRoleCache()
	svc := NewAccountService(repo, cache, zerolog.Nop())

	reg, err := svc.Register(context.Background(), ports.RegisterInput{Email: "carol@x.com", Name: "Carol"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Prime the cache with the unelevated role.
	if role, _ := svc.RoleOf(context.Background(), "carol@x.com"); role != domain.RoleNone {
		t.Fatalf("expected none before elevation, got %s", role)
	}

	if _, err := svc.Elevate(context.Background(), reg.Account.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("Elevate returned error: %v", err)
	}

	// Elevation invalidates the cached entry, so the new role is visible
	// immediately rather than after the TTL.
	if role, _ := svc.RoleOf(context.Background(), "carol@x.com"); role != domain.RoleAdmin {
		t.Fatalf("expected admin after elevation, got %s", role)
	}
}

func TestAccountService_Elevate_RejectsInvalidRole(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), nil, zerolog.Nop())

	if _, err := svc.Elevate(context.Background(), "some-id", domain.RoleNone); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.Elevate(context.Background(), "some-id", domain.Role("superuser")); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole for unknown role, got %v", err)
	}
}
