package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/storage"
)

// CreateAccount inserts a new account, assigning its numeric id. The UNIQUE
// constraints on username and email are the single-writer uniqueness check;
// violations map to the typed duplicate errors.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.CreatedAt == 0 {
		account.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		account.Username, account.Email, account.PasswordHash, account.CreatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read account id: %w", err)
	}
	account.ID = id

	return nil
}

// GetAccountByUsername retrieves an account by its unique username.
func (s *SQLiteStore) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	return s.getAccount(ctx,
		"SELECT id, username, email, password_hash, created_at FROM accounts WHERE username = ?",
		username,
	)
}

// GetAccountByID retrieves an account by its numeric id.
func (s *SQLiteStore) GetAccountByID(ctx context.Context, id int64) (*models.Account, error) {
	return s.getAccount(ctx,
		"SELECT id, username, email, password_hash, created_at FROM accounts WHERE id = ?",
		id,
	)
}

func (s *SQLiteStore) getAccount(ctx context.Context, query string, arg any) (*models.Account, error) {
	account := &models.Account{}
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// duplicateError maps UNIQUE constraint violations from the driver onto the
// typed storage errors, or returns nil for unrelated errors.
func duplicateError(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	switch {
	case strings.Contains(msg, "accounts.username"):
		return storage.ErrDuplicateUsername
	case strings.Contains(msg, "accounts.email"):
		return storage.ErrDuplicateEmail
	default:
		return nil
	}
}
