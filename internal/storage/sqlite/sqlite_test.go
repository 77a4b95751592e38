package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "phonetrace-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustCreateAccount(t *testing.T, store *SQLiteStore, username, email string) *models.Account {
	t.Helper()
	account := &models.Account{Username: username, Email: email, PasswordHash: "hash"}
	if err := store.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("CreateAccount(%s) failed: %v", username, err)
	}
	return account
}

func TestAccountStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateAccount assigns id and timestamp", func(t *testing.T) {
		account := mustCreateAccount(t, store, "alice", "alice@example.com")

		if account.ID == 0 {
			t.Error("Expected account ID to be assigned")
		}
		if account.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("duplicate username is rejected, first account unaffected", func(t *testing.T) {
		first := mustCreateAccount(t, store, "bob", "bob@example.com")

		dup := &models.Account{Username: "bob", Email: "bob2@example.com", PasswordHash: "hash"}
		err := store.CreateAccount(ctx, dup)
		if !errors.Is(err, storage.ErrDuplicateUsername) {
			t.Fatalf("error = %v, want ErrDuplicateUsername", err)
		}

		kept, err := store.GetAccountByUsername(ctx, "bob")
		if err != nil {
			t.Fatalf("GetAccountByUsername failed: %v", err)
		}
		if kept.ID != first.ID || kept.Email != first.Email {
			t.Errorf("First account changed: got %+v, want %+v", kept, first)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		mustCreateAccount(t, store, "carol", "carol@example.com")

		dup := &models.Account{Username: "carol2", Email: "carol@example.com", PasswordHash: "hash"}
		if err := store.CreateAccount(ctx, dup); !errors.Is(err, storage.ErrDuplicateEmail) {
			t.Fatalf("error = %v, want ErrDuplicateEmail", err)
		}
	})

	t.Run("lookup by username and id", func(t *testing.T) {
		created := mustCreateAccount(t, store, "diana", "diana@example.com")

		byName, err := store.GetAccountByUsername(ctx, "diana")
		if err != nil {
			t.Fatalf("GetAccountByUsername failed: %v", err)
		}
		byID, err := store.GetAccountByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetAccountByID failed: %v", err)
		}
		if byName.ID != created.ID || byID.Username != "diana" {
			t.Errorf("Lookups disagree: byName=%+v byID=%+v", byName, byID)
		}
	})

	t.Run("missing account returns ErrNotFound", func(t *testing.T) {
		if _, err := store.GetAccountByUsername(ctx, "nobody"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if _, err := store.GetAccountByID(ctx, 999999); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestHistoryStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, store, "owner", "owner@example.com")
	other := mustCreateAccount(t, store, "other", "other@example.com")

	lat, lng, cc := 36.77, -119.41, "US"

	t.Run("AppendHistory assigns id and roundtrips coordinates", func(t *testing.T) {
		record := &models.HistoryRecord{
			AccountID:   owner.ID,
			PhoneNumber: "+1 415-555-2671",
			Location:    "California, United States",
			Carrier:     "Private Carrier",
			Latitude:    &lat,
			Longitude:   &lng,
			CountryCode: &cc,
			LineType:    models.LineTypeUnknown,
		}
		if err := store.AppendHistory(ctx, record); err != nil {
			t.Fatalf("AppendHistory failed: %v", err)
		}
		if record.ID == 0 {
			t.Error("Expected record ID to be assigned")
		}

		got, err := store.GetHistory(ctx, record.ID)
		if err != nil {
			t.Fatalf("GetHistory failed: %v", err)
		}
		if got.Latitude == nil || got.Longitude == nil {
			t.Fatal("Expected coordinates to roundtrip")
		}
		if *got.Latitude != lat || *got.Longitude != lng {
			t.Errorf("coordinates = (%v, %v), want (%v, %v)", *got.Latitude, *got.Longitude, lat, lng)
		}
		if got.CountryCode == nil || *got.CountryCode != cc {
			t.Errorf("CountryCode = %v, want %v", got.CountryCode, cc)
		}
		if got.LineType != models.LineTypeUnknown {
			t.Errorf("LineType = %q, want %q", got.LineType, models.LineTypeUnknown)
		}
	})

	t.Run("record without geocoding keeps both coordinates null", func(t *testing.T) {
		record := &models.HistoryRecord{
			AccountID:   owner.ID,
			PhoneNumber: "+44 7700 900123",
			Location:    "United Kingdom",
			Carrier:     "Private Carrier",
			LineType:    models.LineTypeMobile,
		}
		if err := store.AppendHistory(ctx, record); err != nil {
			t.Fatalf("AppendHistory failed: %v", err)
		}

		got, err := store.GetHistory(ctx, record.ID)
		if err != nil {
			t.Fatalf("GetHistory failed: %v", err)
		}
		if got.Latitude != nil || got.Longitude != nil || got.CountryCode != nil {
			t.Errorf("Expected null coordinates, got lat=%v lng=%v cc=%v", got.Latitude, got.Longitude, got.CountryCode)
		}
	})

	t.Run("ListHistory is scoped to the account and newest first", func(t *testing.T) {
		records, err := store.ListHistory(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListHistory failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("len(records) = %d, want 2", len(records))
		}
		// Same-second inserts fall back to id ordering.
		if records[0].ID < records[1].ID {
			t.Errorf("Expected newest first, got ids %d then %d", records[0].ID, records[1].ID)
		}
		for _, record := range records {
			if record.AccountID != owner.ID {
				t.Errorf("Record %d owned by %d, want %d", record.ID, record.AccountID, owner.ID)
			}
		}

		empty, err := store.ListHistory(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListHistory failed: %v", err)
		}
		if len(empty) != 0 {
			t.Errorf("Expected no records for other account, got %d", len(empty))
		}
	})

	t.Run("delete by non-owner is rejected and record intact", func(t *testing.T) {
		records, _ := store.ListHistory(ctx, owner.ID)
		target := records[0]

		if err := store.DeleteHistory(ctx, target.ID, other.ID); !errors.Is(err, storage.ErrUnauthorized) {
			t.Fatalf("error = %v, want ErrUnauthorized", err)
		}

		if _, err := store.GetHistory(ctx, target.ID); err != nil {
			t.Errorf("Record should be intact after rejected delete: %v", err)
		}
	})

	t.Run("delete by owner removes the record", func(t *testing.T) {
		records, _ := store.ListHistory(ctx, owner.ID)
		target := records[0]

		if err := store.DeleteHistory(ctx, target.ID, owner.ID); err != nil {
			t.Fatalf("DeleteHistory failed: %v", err)
		}
		if _, err := store.GetHistory(ctx, target.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound after delete", err)
		}
	})

	t.Run("delete of missing record returns ErrNotFound", func(t *testing.T) {
		if err := store.DeleteHistory(ctx, 999999, owner.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
