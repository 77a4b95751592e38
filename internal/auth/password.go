package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrUsernameTaken      = errors.New("username unavailable")
	ErrEmailTaken         = errors.New("email already registered")
)

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage storage.AccountStore
}

// Ensure PasswordAuthenticator implements Authenticator
var _ Authenticator = (*PasswordAuthenticator)(nil)

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage storage.AccountStore) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new account with a hashed password. The plaintext
// credential is never persisted or logged. Uniqueness of username and email
// is enforced by the store's constraints, so two racing registrations cannot
// both succeed.
func (a *PasswordAuthenticator) Register(ctx context.Context, username, email, credential string) (*models.Account, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := a.storage.CreateAccount(ctx, account); err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, storage.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// Authenticate verifies the username and password, returning the account if
// valid. bcrypt's comparison is constant-time over the hash, and both the
// unknown-username and wrong-password paths report the same error.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.Account, error) {
	account, err := a.storage.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
