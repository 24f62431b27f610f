package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestRole_Valid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Fatalf("known roles reported invalid")
	}
	if Role("superuser").Valid() {
		t.Fatalf("unknown role reported valid")
	}
	if Role("").Valid() {
		t.Fatalf("empty role reported valid")
	}
}

func TestSummarize_ExcludesPasswordHash(t *testing.T) {
	account := &Account{
		ID:           "acc_1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		FullName:     "Alice A",
		Role:         RoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	summary := account.Summarize()
	if summary.ID != "acc_1" || summary.Username != "alice" || summary.Email != "a@x.com" ||
		summary.FullName != "Alice A" || summary.Role != RoleUser {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("marshal summary: %v", err)
	}
	if strings.Contains(string(raw), "secret") || strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("summary leaks credential material: %s", raw)
	}
}
