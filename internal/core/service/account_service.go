package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userportal/account-system/internal/core/domain"
	"github.com/userportal/account-system/internal/core/ports"
)

// AccountService implements registration, profile maintenance and account
// queries. It holds no state of its own; all durable state lives in the
// repository, whose unique constraints are the source of truth for
// username/email uniqueness — the exists-checks here only give friendlier
// errors and avoid hashing a password for a request that will be rejected.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// Register creates a new account with role user. Username is checked
// before email, and the password is hashed only after both checks pass.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Summary, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	taken, err := s.repo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateUsername
	}

	taken, err = s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Save(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("account_id", created.ID).Msg("account registered")

	return created.Summarize(), nil
}

// GetByUsername returns the summary of the named account.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (*domain.Summary, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return account.Summarize(), nil
}

// UpdateProfile overwrites the account's full name and email. The
// duplicate-email check is skipped entirely when the submitted email
// equals the account's current one: a user re-submitting their own email
// must never be rejected as a duplicate of themselves.
func (s *AccountService) UpdateProfile(ctx context.Context, username string, changes ports.ProfileUpdate) (*domain.Summary, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if changes.Email != account.Email {
		taken, err := s.repo.ExistsByEmail(ctx, changes.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicateEmail
		}
	}

	account.FullName = changes.FullName
	account.Email = changes.Email
	account.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Save(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("profile updated")

	return updated.Summarize(), nil
}

// ListAll returns every account's summary in the repository's order.
func (s *AccountService) ListAll(ctx context.Context) ([]*domain.Summary, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.Summary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, account.Summarize())
	}
	return summaries, nil
}
