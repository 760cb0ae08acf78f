package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

type stubClassRepo struct {
	byID   map[string]*domain.Class
	nextID int
}

func newStubClassRepo() *stubClassRepo {
	return &stubClassRepo{byID: make(map[string]*domain.Class)}
}

func (r *stubClassRepo) Insert(_ context.Context, class *domain.Class) (*domain.Class, error) {
	r.nextID++
	clone := *class
	clone.ID = strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClassRepo) FindByID(_ context.Context, id string) (*domain.Class, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClassRepo) ListByStatus(_ context.Context, status domain.ClassStatus) ([]*domain.Class, error) {
	var out []*domain.Class
	for _, c := range r.byID {
		if c.Status == status {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubClassRepo) ListByInstructor(_ context.Context, email string) ([]*domain.Class, error) {
	var out []*domain.Class
	for _, c := range r.byID {
		if c.InstructorEmail == email {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubClassRepo) ListAll(_ context.Context) ([]*domain.Class, error) {
	var out []*domain.Class
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClassRepo) UpdateStatus(_ context.Context, id string, status domain.ClassStatus) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrClassNotFound
	}
	c.Status = status
	return nil
}

func (r *stubClassRepo) SetFeedback(_ context.Context, id string, feedback string) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrClassNotFound
	}
	c.Feedback = feedback
	return nil
}

func TestClassService_Create_StartsPending(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	class, err := svc.Create(context.Background(), ports.CreateClassInput{
		Name:           "Watercolour Basics",
		Image:          "https://img.example/wc.png",
		InstructorName: "Alice",
		Owner:          "alice@x.com",
		AvailableSeats: 12,
		Price:          49.99,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if class.Status != domain.StatusPending {
		t.Fatalf("new class must be pending, got %s", class.Status)
	}
	if class.InstructorEmail != "alice@x.com" {
		t.Fatalf("owner not recorded: %s", class.InstructorEmail)
	}
	if class.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestClassService_ListApproved_ExcludesPending(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	a, _ := svc.Create(context.Background(), ports.CreateClassInput{Name: "A", Owner: "alice@x.com"})
	_, _ = svc.Create(context.Background(), ports.CreateClassInput{Name: "B", Owner: "alice@x.com"})

	if _, err := svc.Review(context.Background(), ports.ReviewClassInput{ClassID: a.ID, Status: domain.StatusApproved}); err != nil {
		t.Fatalf("Review returned error: %v", err)
	}

	approved, err := svc.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("ListApproved returned error: %v", err)
	}
	if len(approved) != 1 || approved[0].Name != "A" {
		t.Fatalf("expected only the approved class, got %d", len(approved))
	}
}

func TestClassService_ListOwned_ScopedToOwner(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.CreateClassInput{Name: "A", Owner: "alice@x.com"})
	_, _ = svc.Create(context.Background(), ports.CreateClassInput{Name: "B", Owner: "bob@x.com"})

	owned, err := svc.ListOwned(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("ListOwned returned error: %v", err)
	}
	if len(owned) != 1 || owned[0].InstructorEmail != "alice@x.com" {
		t.Fatalf("expected only alice's classes, got %d", len(owned))
	}
}

func TestClassService_Review_InvalidTransition(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	class, _ := svc.Create(context.Background(), ports.CreateClassInput{Name: "A", Owner: "alice@x.com"})
	if _, err := svc.Review(context.Background(), ports.ReviewClassInput{ClassID: class.ID, Status: domain.StatusApproved}); err != nil {
		t.Fatalf("Review returned error: %v", err)
	}

	// Approved is terminal: a second review must fail.
	_, err := svc.Review(context.Background(), ports.ReviewClassInput{ClassID: class.ID, Status: domain.StatusDenied})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestClassService_Review_UnknownClass(t *testing.T) {
	svc := NewClassService(newStubClassRepo(), zerolog.Nop())

	_, err := svc.Review(context.Background(), ports.ReviewClassInput{ClassID: "missing", Status: domain.StatusApproved})
	if !errors.Is(err, domain.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestClassService_SetFeedback(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	class, _ := svc.Create(context.Background(), ports.CreateClassInput{Name: "A", Owner: "alice@x.com"})
	if err := svc.SetFeedback(context.Background(), class.ID, "needs a syllabus"); err != nil {
		t.Fatalf("SetFeedback returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), class.ID)
	if stored.Feedback != "needs a syllabus" {
		t.Fatalf("feedback not stored: %q", stored.Feedback)
	}

	if err := svc.SetFeedback(context.Background(), "missing", "x"); !errors.Is(err, domain.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}
