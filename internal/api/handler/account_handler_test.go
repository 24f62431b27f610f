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

	"github.com/userportal/account-system/internal/core/domain"
	"github.com/userportal/account-system/internal/core/ports"
)

type stubAccountService struct {
	registerFn      func(ctx context.Context, input ports.RegisterInput) (*domain.Summary, error)
	getFn           func(ctx context.Context, username string) (*domain.Summary, error)
	updateProfileFn func(ctx context.Context, username string, changes ports.ProfileUpdate) (*domain.Summary, error)
	listAllFn       func(ctx context.Context) ([]*domain.Summary, error)
}

func (s *stubAccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Summary, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountService) GetByUsername(ctx context.Context, username string) (*domain.Summary, error) {
	return s.getFn(ctx, username)
}

func (s *stubAccountService) UpdateProfile(ctx context.Context, username string, changes ports.ProfileUpdate) (*domain.Summary, error) {
	return s.updateProfileFn(ctx, username, changes)
}

func (s *stubAccountService) ListAll(ctx context.Context) ([]*domain.Summary, error) {
	return s.listAllFn(ctx)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Summary, error) {
			if input.Username != "alice" || input.Email != "a@x.com" || input.FullName != "Alice A" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Summary{ID: "acc_1", Username: "alice", Email: "a@x.com", FullName: "Alice A", Role: domain.RoleUser}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"a@x.com","password":"pw12345","full_name":"Alice A"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, present := user["password_hash"]; present {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAccountHandler_Register_DuplicateUsername(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Summary, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"b@x.com","password":"pw12345","full_name":"Alice"}`)

	err := h.Register(c)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername to propagate, got %v", err)
	}
}

func TestAccountHandler_Register_InvalidBody(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Summary, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	// Missing email and too-short password fail validation before the
	// service runs.
	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"pw"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAccountHandler_GetProfile(t *testing.T) {
	stub := &stubAccountService{
		getFn: func(ctx context.Context, username string) (*domain.Summary, error) {
			if username != "bob" {
				t.Fatalf("unexpected username: %s", username)
			}
			return &domain.Summary{ID: "acc_2", Username: "bob", Email: "bob@x.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/profile", "")
	c.Set("username", "bob")

	if err := h.GetProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_GetProfile_MissingClaims(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	c, _ := newTestContext(t, http.MethodGet, "/profile", "")

	err := h.GetProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAccountHandler_UpdateProfile_Success(t *testing.T) {
	stub := &stubAccountService{
		updateProfileFn: func(ctx context.Context, username string, changes ports.ProfileUpdate) (*domain.Summary, error) {
			if username != "bob" {
				t.Fatalf("unexpected username: %s", username)
			}
			if changes.FullName != "Bob B" || changes.Email != "bob@x.com" {
				t.Fatalf("unexpected changes: %+v", changes)
			}
			return &domain.Summary{ID: "acc_2", Username: "bob", Email: changes.Email, FullName: changes.FullName, Role: domain.RoleUser}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/profile",
		`{"full_name":"Bob B","email":"bob@x.com"}`)
	c.Set("username", "bob")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_UpdateProfile_DuplicateEmail(t *testing.T) {
	stub := &stubAccountService{
		updateProfileFn: func(ctx context.Context, username string, changes ports.ProfileUpdate) (*domain.Summary, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/profile",
		`{"full_name":"Bob B","email":"taken@x.com"}`)
	c.Set("username", "bob")

	if err := h.UpdateProfile(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail to propagate, got %v", err)
	}
}
