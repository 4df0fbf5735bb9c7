package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DoaaAltair/Elite-Home/internal/auth"
	dom "github.com/DoaaAltair/Elite-Home/internal/domain"
	"github.com/DoaaAltair/Elite-Home/internal/repo"
	"github.com/DoaaAltair/Elite-Home/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// AuthService handles account registration and credential checks.
type AuthService struct {
	repo   repo.AccountRepo
	hasher auth.CredentialHasher
}

// NewAuthService returns a new AuthService.
func NewAuthService(r repo.AccountRepo, h auth.CredentialHasher) *AuthService {
	return &AuthService{repo: r, hasher: h}
}

// Register creates a new account with a hashed password. Usernames are
// unique and case-sensitive; a taken name fails with ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (dom.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.Account{}, ErrMissingCredentials
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return dom.Account{}, ErrUsernameTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.Account{}, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return dom.Account{}, err
	}
	a, err := s.repo.Create(ctx, username, digest)
	if err != nil {
		// The unique index backstops a register/register race.
		if utils.IsPGUniqueViolation(err) {
			return dom.Account{}, ErrUsernameTaken
		}
		return dom.Account{}, err
	}
	return a, nil
}

// Login checks username and password. Unknown user and wrong password both
// return ErrInvalidCredentials, so callers cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (dom.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.Account{}, ErrMissingCredentials
	}
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Account{}, ErrInvalidCredentials
		}
		return dom.Account{}, err
	}
	if !s.hasher.Verify(password, a.PasswordDigest) {
		return dom.Account{}, ErrInvalidCredentials
	}
	return a, nil
}
