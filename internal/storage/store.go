// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/phonetrace/phonetrace/internal/models"
)

// Sentinel errors returned by store implementations. Handlers translate
// these to HTTP statuses; the raw driver error never crosses the boundary.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrUnauthorized      = errors.New("record owned by another account")
	ErrUnavailable       = errors.New("store unavailable")
)

// AccountStore defines the persistence operations for user accounts.
type AccountStore interface {
	// CreateAccount persists a new account and populates its ID and
	// CreatedAt. Username and email uniqueness are enforced atomically;
	// violations surface as ErrDuplicateUsername / ErrDuplicateEmail.
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccountByUsername retrieves an account by its unique username.
	// Returns ErrNotFound when no such account exists.
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)

	// GetAccountByID retrieves an account by its numeric id.
	GetAccountByID(ctx context.Context, id int64) (*models.Account, error)
}

// HistoryStore defines the persistence operations for resolution history.
// All access is scoped to the owning account; cross-account reads and writes
// are forbidden.
type HistoryStore interface {
	// AppendHistory persists a new record and populates its ID and
	// CreatedAt. Records are never mutated afterwards.
	AppendHistory(ctx context.Context, record *models.HistoryRecord) error

	// ListHistory returns every record owned by the account, newest first.
	ListHistory(ctx context.Context, accountID int64) ([]*models.HistoryRecord, error)

	// GetHistory retrieves a single record by id, regardless of owner.
	// Ownership checks belong to the caller.
	GetHistory(ctx context.Context, recordID int64) (*models.HistoryRecord, error)

	// DeleteHistory removes recordID if it is owned by accountID. Returns
	// ErrNotFound for a missing record and ErrUnauthorized when the record
	// belongs to a different account, leaving it intact.
	DeleteHistory(ctx context.Context, recordID, accountID int64) error
}

// Store is the full persistence surface. This abstraction allows swapping
// storage backends (SQLite, PostgreSQL, etc.) without changing the service
// layer.
type Store interface {
	AccountStore
	HistoryStore

	// Close releases any resources held by the store.
	Close() error
}
