package ports

import (
	"context"

	"github.com/userportal/account-system/internal/core/domain"
)

// AccountRepository defines the persistence capabilities the domain
// service needs. The store enforces uniqueness of username and email; the
// service's exists-checks are advisory and a duplicate that races past
// them must still surface from Save as a typed domain error.
type AccountRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)

	// FindAll returns every account in a deterministic order (insertion
	// order for the Mongo implementation).
	FindAll(ctx context.Context) ([]*domain.Account, error)

	// Save inserts when the account has no ID yet, otherwise updates the
	// existing record. The returned account carries the assigned ID.
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
