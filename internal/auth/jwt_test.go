package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/phonetrace/phonetrace/internal/models"
)

func TestJWTManager(t *testing.T) {
	account := &models.Account{ID: 42, Username: "alice", Email: "alice@example.com"}

	t.Run("generate and validate round trip", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		token, err := manager.Generate(account)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.AccountID != 42 {
			t.Errorf("AccountID = %d, want 42", claims.AccountID)
		}
		if claims.Username != "alice" {
			t.Errorf("Username = %q, want alice", claims.Username)
		}
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		token, err := NewJWTManager("secret-a", time.Hour).Generate(account)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := NewJWTManager("secret-b", time.Hour).Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", -time.Minute)

		token, err := manager.Generate(account)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})
}
