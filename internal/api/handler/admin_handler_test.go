package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/userportal/account-system/internal/core/domain"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	stub := &stubAccountService{
		listAllFn: func(ctx context.Context) ([]*domain.Summary, error) {
			return []*domain.Summary{
				{ID: "acc_1", Username: "admin", Role: domain.RoleAdmin},
				{ID: "acc_2", Username: "alice", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/admin/users", "")

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Users []map[string]any `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Users))
	}
	if resp.Users[0]["username"] != "admin" || resp.Users[1]["username"] != "alice" {
		t.Fatalf("order not preserved: %+v", resp.Users)
	}
}

func TestAdminHandler_ListUsers_Empty(t *testing.T) {
	stub := &stubAccountService{
		listAllFn: func(ctx context.Context) ([]*domain.Summary, error) {
			return nil, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/admin/users", "")

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(resp["users"]) != "[]" {
		t.Fatalf("expected empty array, got %s", resp["users"])
	}
}

func TestAdminHandler_Dashboard(t *testing.T) {
	stub := &stubAccountService{
		listAllFn: func(ctx context.Context) ([]*domain.Summary, error) {
			return []*domain.Summary{
				{ID: "acc_1", Username: "admin", Role: domain.RoleAdmin},
				{ID: "acc_2", Username: "alice", Role: domain.RoleUser},
				{ID: "acc_3", Username: "bob", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/admin/dashboard", "")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		UserCount int              `json:"user_count"`
		Users     []map[string]any `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserCount != 3 || len(resp.Users) != 3 {
		t.Fatalf("unexpected dashboard payload: %+v", resp)
	}
}
