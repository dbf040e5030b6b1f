// Package services is the thin mediation layer between the UI and the sync
// orchestrator: credential checks, input validation, and table observation.
package services

import (
	"context"
	"unicode"

	"fleetsync/internal/common"
	"fleetsync/internal/cryptox"
	"fleetsync/internal/models"
	"fleetsync/internal/store/users"
	"fleetsync/internal/syncer"
)

// AuthService authenticates against the local credential store and registers
// new users through the orchestrator.
type AuthService struct {
	users users.Repository
	orch  *syncer.Orchestrator
}

func NewAuthService(users users.Repository, orch *syncer.Orchestrator) *AuthService {
	return &AuthService{users: users, orch: orch}
}

// Login checks name/password against the local store. It distinguishes an
// unknown user (ErrNotFound) from a wrong password (ErrBadCredentials).
func (s *AuthService) Login(ctx context.Context, name, password string) (*models.User, error) {
	u, err := s.users.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if cryptox.HashSHA256Hex(password) != u.PasswordHash {
		return nil, common.ErrBadCredentials
	}
	return u, nil
}

// Register validates the input, pre-checks name uniqueness, and inserts the
// user locally plus remotely via the orchestrator.
func (s *AuthService) Register(ctx context.Context, name, password string) (*models.User, syncer.Outcome) {
	if name == "" || password == "" {
		return nil, syncer.Failure(common.ErrMissingFields, "")
	}
	if !ValidatePassword(password) {
		return nil, syncer.Failure(common.ErrWeakPassword,
			"password needs at least 16 characters with upper, lower, digit and symbol")
	}
	if _, err := s.users.GetByName(ctx, name); err == nil {
		return nil, syncer.Failure(common.ErrUserExists, "")
	}

	u := &models.User{
		Name:         name,
		PasswordHash: cryptox.HashSHA256Hex(password),
	}
	res := s.orch.RegisterUser(ctx, u)
	if res.Err != nil && !res.Deferred {
		return nil, res
	}
	return u, res
}

// ValidatePassword enforces the registration password policy: at least 16
// characters including an uppercase letter, a lowercase letter, a digit and
// a symbol.
func ValidatePassword(password string) bool {
	if len(password) < 16 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
