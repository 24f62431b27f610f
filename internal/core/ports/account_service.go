package ports

import (
	"context"

	"github.com/userportal/account-system/internal/core/domain"
)

// RegisterInput carries the fields of a registration request. Structural
// validation (non-blank fields, email shape) happens at the HTTP layer
// before the service is called.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	FullName string
	Email    string
}

// AccountService is the single authority over account records.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Summary, error)
	GetByUsername(ctx context.Context, username string) (*domain.Summary, error)
	UpdateProfile(ctx context.Context, username string, changes ProfileUpdate) (*domain.Summary, error)
	ListAll(ctx context.Context) ([]*domain.Summary, error)
}
