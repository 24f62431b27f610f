package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userportal/account-system/internal/core/domain"
	"github.com/userportal/account-system/internal/core/ports"
)

// AuthService implements login and logout against the account repository.
type AuthService struct {
	repo      ports.AccountRepository
	sessions  ports.SessionRegistry
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, sessions ports.SessionRegistry, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials, registers a session and returns a signed
// HS256 token carrying the username, role and session id.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Summary, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sessionID := newSessionID()
	if err := s.sessions.Create(ctx, sessionID); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(account, sessionID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Msg("login")

	return token, account.Summarize(), nil
}

// Logout revokes the session; the token stops working on the next request.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}

func (s *AuthService) generateToken(account *domain.Account, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"username": account.Username,
		"role":     string(account.Role),
		"jti":      sessionID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func newSessionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
