package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

type stubAccountService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error)
	listFn     func(ctx context.Context) ([]*domain.Account, error)
	roleOfFn   func(ctx context.Context, email string) (domain.Role, error)
	elevateFn  func(ctx context.Context, id string, role domain.Role) (*domain.Account, error)
}

func (s *stubAccountService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.listFn(ctx)
}

func (s *stubAccountService) RoleOf(ctx context.Context, email string) (domain.Role, error) {
	return s.roleOfFn(ctx, email)
}

func (s *stubAccountService) Elevate(ctx context.Context, id string, role domain.Role) (*domain.Account, error) {
	return s.elevateFn(ctx, id, role)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Created(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
			if input.Email != "alice@x.com" || input.Name != "Alice" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.RegisterResult{
				Account: &domain.Account{ID: "id1", Email: input.Email, Name: input.Name, Role: domain.RoleNone},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/users", `{"email":"alice@x.com","name":"Alice"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp domain.Account
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Email != "alice@x.com" {
		t.Fatalf("unexpected account payload: %+v", resp)
	}
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{
				Account:        &domain.Account{ID: "id1", Email: input.Email},
				AlreadyExisted: true,
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/users", `{"email":"alice@x.com","name":"Alice"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "user already exists" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/users", `{"email":"not-an-email","name":"Alice"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubAccountService{
		listFn: func(ctx context.Context) ([]*domain.Account, error) { return nil, nil },
	}
	handler := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/users", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestUserHandler_IsAdmin(t *testing.T) {
	stub := &stubAccountService{
		roleOfFn: func(ctx context.Context, email string) (domain.Role, error) {
			if email == "root@x.com" {
				return domain.RoleAdmin, nil
			}
			return domain.RoleNone, nil
		},
	}
	handler := NewUserHandler(stub)

	for _, tc := range []struct {
		email string
		want  bool
	}{
		{"root@x.com", true},
		{"alice@x.com", false},
	} {
		c, rec := newJSONContext(t, http.MethodGet, "/users/admin/"+tc.email, "")
		c.SetParamNames("email")
		c.SetParamValues(tc.email)

		if err := handler.IsAdmin(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		var resp map[string]bool
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["admin"] != tc.want {
			t.Fatalf("email %s: expected admin=%v, got %v", tc.email, tc.want, resp["admin"])
		}
	}
}

func TestUserHandler_MakeInstructor(t *testing.T) {
	stub := &stubAccountService{
		elevateFn: func(ctx context.Context, id string, role domain.Role) (*domain.Account, error) {
			if id != "id1" || role != domain.RoleInstructor {
				t.Fatalf("unexpected args: %s %s", id, role)
			}
			return &domain.Account{ID: id, Email: "alice@x.com", Role: role}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodPatch, "/users/instructor/id1", "")
	c.SetParamNames("id")
	c.SetParamValues("id1")

	if err := handler.MakeInstructor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp domain.Account
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Role != domain.RoleInstructor {
		t.Fatalf("expected instructor role, got %s", resp.Role)
	}
}
