package auth

import (
	"context"

	"github.com/phonetrace/phonetrace/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the handler layer.
type Authenticator interface {
	// Register creates a new account with the given username, email, and
	// credential. Returns the created account or an error if registration
	// fails (duplicate username/email, weak credential, store failure).
	Register(ctx context.Context, username, email, credential string) (*models.Account, error)

	// Authenticate verifies the credentials and returns the account if
	// valid. The error is deliberately non-specific: callers cannot tell an
	// unknown username from a wrong password.
	Authenticate(ctx context.Context, username, credential string) (*models.Account, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}
