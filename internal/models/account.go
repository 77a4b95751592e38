package models

// Account represents a registered user account.
type Account struct {
	// ID is the unique numeric identifier assigned by the store.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the user's email address (unique).
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized; plaintext is never stored.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}
