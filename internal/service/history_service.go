package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/storage"
)

// HistoryService owns per-account resolution history. Every operation takes
// the requesting account id and enforces the ownership rule: records are
// visible and deletable only to the account that created them.
type HistoryService struct {
	store  storage.HistoryStore
	logger *slog.Logger
}

// NewHistoryService creates a history service over the given store.
func NewHistoryService(store storage.HistoryStore, logger *slog.Logger) *HistoryService {
	return &HistoryService{store: store, logger: logger}
}

// Record persists a resolution result as a new history record owned by
// accountID. Store failures surface as storage.ErrUnavailable.
func (s *HistoryService) Record(ctx context.Context, accountID int64, result *models.ResolutionResult) (*models.HistoryRecord, error) {
	record := &models.HistoryRecord{
		AccountID:   accountID,
		PhoneNumber: result.Number,
		Location:    result.Location,
		Carrier:     result.Carrier,
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		CountryCode: result.CountryCode,
		LineType:    result.LineType,
	}

	if err := s.store.AppendHistory(ctx, record); err != nil {
		s.logger.Error("Failed to persist history record", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	return record, nil
}

// List returns the account's history, newest first.
func (s *HistoryService) List(ctx context.Context, accountID int64) ([]*models.HistoryRecord, error) {
	records, err := s.store.ListHistory(ctx, accountID)
	if err != nil {
		s.logger.Error("Failed to list history", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	return records, nil
}

// Get returns a single record if it is owned by accountID. Cross-account
// access fails with storage.ErrUnauthorized and leaks nothing about the
// record.
func (s *HistoryService) Get(ctx context.Context, accountID, recordID int64) (*models.HistoryRecord, error) {
	record, err := s.store.GetHistory(ctx, recordID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Failed to get history record", "record_id", recordID, "error", err)
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	if record.AccountID != accountID {
		return nil, storage.ErrUnauthorized
	}
	return record, nil
}

// Delete removes a record after the store verifies ownership.
func (s *HistoryService) Delete(ctx context.Context, accountID, recordID int64) error {
	err := s.store.DeleteHistory(ctx, recordID, accountID)
	if err == nil || errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrUnauthorized) {
		return err
	}
	s.logger.Error("Failed to delete history record", "record_id", recordID, "error", err)
	return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
}
