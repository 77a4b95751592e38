package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/storage"
)

// AppendHistory persists a new resolution record, assigning its numeric id.
func (s *SQLiteStore) AppendHistory(ctx context.Context, record *models.HistoryRecord) error {
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO history (account_id, phone_number, location, carrier, latitude, longitude, country_code, line_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.AccountID, record.PhoneNumber, record.Location, record.Carrier,
		record.Latitude, record.Longitude, record.CountryCode, string(record.LineType), record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read history record id: %w", err)
	}
	record.ID = id

	return nil
}

// ListHistory returns the account's records ordered by creation time
// descending, with id as a tiebreak for records created in the same second.
func (s *SQLiteStore) ListHistory(ctx context.Context, accountID int64) ([]*models.HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, phone_number, location, carrier, latitude, longitude, country_code, line_type, created_at
		 FROM history WHERE account_id = ? ORDER BY created_at DESC, id DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []*models.HistoryRecord
	for rows.Next() {
		record, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return records, nil
}

// GetHistory retrieves a single record by id.
func (s *SQLiteStore) GetHistory(ctx context.Context, recordID int64) (*models.HistoryRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, phone_number, location, carrier, latitude, longitude, country_code, line_type, created_at
		 FROM history WHERE id = ?`,
		recordID,
	)

	record, err := scanHistory(row)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteHistory removes the record only when it is owned by accountID.
func (s *SQLiteStore) DeleteHistory(ctx context.Context, recordID, accountID int64) error {
	var ownerID int64
	err := s.db.QueryRowContext(ctx,
		"SELECT account_id FROM history WHERE id = ?", recordID,
	).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up history record: %w", err)
	}
	if ownerID != accountID {
		return storage.ErrUnauthorized
	}

	// Owner is rechecked in the predicate so a concurrent delete is a no-op
	// rather than a cross-account removal.
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM history WHERE id = ? AND account_id = ?", recordID, accountID,
	); err != nil {
		return fmt.Errorf("failed to delete history record: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(row scanner) (*models.HistoryRecord, error) {
	record := &models.HistoryRecord{}
	var (
		location    sql.NullString
		carrier     sql.NullString
		latitude    sql.NullFloat64
		longitude   sql.NullFloat64
		countryCode sql.NullString
		lineType    string
	)

	err := row.Scan(
		&record.ID, &record.AccountID, &record.PhoneNumber,
		&location, &carrier, &latitude, &longitude, &countryCode,
		&lineType, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan history record: %w", err)
	}

	record.Location = location.String
	record.Carrier = carrier.String
	record.LineType = models.LineType(lineType)
	if latitude.Valid && longitude.Valid {
		record.Latitude = &latitude.Float64
		record.Longitude = &longitude.Float64
	}
	if countryCode.Valid {
		record.CountryCode = &countryCode.String
	}

	return record, nil
}
