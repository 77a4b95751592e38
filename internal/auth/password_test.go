package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/storage"
)

// fakeAccountStore is an in-memory storage.AccountStore for authenticator
// tests.
type fakeAccountStore struct {
	accounts map[string]*models.Account
	nextID   int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[string]*models.Account)}
}

func (s *fakeAccountStore) CreateAccount(_ context.Context, account *models.Account) error {
	if _, ok := s.accounts[account.Username]; ok {
		return storage.ErrDuplicateUsername
	}
	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return storage.ErrDuplicateEmail
		}
	}
	s.nextID++
	account.ID = s.nextID
	account.CreatedAt = time.Now().Unix()
	s.accounts[account.Username] = account
	return nil
}

func (s *fakeAccountStore) GetAccountByUsername(_ context.Context, username string) (*models.Account, error) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return account, nil
}

func (s *fakeAccountStore) GetAccountByID(_ context.Context, id int64) (*models.Account, error) {
	for _, account := range s.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, storage.ErrNotFound
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("register hashes the password", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newFakeAccountStore())

		account, err := authenticator.Register(ctx, "alice", "alice@example.com", "correct horse")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if account.ID == 0 {
			t.Error("Expected account id to be assigned")
		}
		if account.PasswordHash == "" || account.PasswordHash == "correct horse" {
			t.Error("Expected password to be stored as a hash")
		}
	})

	t.Run("weak password is rejected before storage", func(t *testing.T) {
		store := newFakeAccountStore()
		authenticator := NewPasswordAuthenticator(store)

		if _, err := authenticator.Register(ctx, "bob", "bob@example.com", "short"); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("error = %v, want ErrWeakPassword", err)
		}
		if len(store.accounts) != 0 {
			t.Error("Expected no account to be created")
		}
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newFakeAccountStore())

		if _, err := authenticator.Register(ctx, "carol", "carol@example.com", "password1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := authenticator.Register(ctx, "carol", "carol2@example.com", "password2"); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("error = %v, want ErrUsernameTaken", err)
		}
	})

	t.Run("duplicate email maps to ErrEmailTaken", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newFakeAccountStore())

		if _, err := authenticator.Register(ctx, "dave", "dave@example.com", "password1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := authenticator.Register(ctx, "dana", "dave@example.com", "password2"); !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("error = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("authenticate round trip", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newFakeAccountStore())
		created, err := authenticator.Register(ctx, "erin", "erin@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		account, err := authenticator.Authenticate(ctx, "erin", "password1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if account.ID != created.ID {
			t.Errorf("Authenticated account id = %d, want %d", account.ID, created.ID)
		}
	})

	t.Run("wrong password and unknown user report the same error", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newFakeAccountStore())
		if _, err := authenticator.Register(ctx, "frank", "frank@example.com", "password1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		_, errWrong := authenticator.Authenticate(ctx, "frank", "wrong-password")
		_, errUnknown := authenticator.Authenticate(ctx, "nobody", "password1")

		if !errors.Is(errWrong, ErrInvalidCredentials) || !errors.Is(errUnknown, ErrInvalidCredentials) {
			t.Errorf("errors = (%v, %v), want both ErrInvalidCredentials", errWrong, errUnknown)
		}
	})
}
