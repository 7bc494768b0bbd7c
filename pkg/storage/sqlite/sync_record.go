package sqlite

import (
	"context"
	"fmt"

	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
)

// CreateSyncRecord stores a new audit entry for a synced item
func (s *SQLite) CreateSyncRecord(ctx context.Context, record model.SyncRecord) (int64, error) {
	stmt := table.SyncRecord.
		INSERT(
			table.SyncRecord.MediaType,
			table.SyncRecord.TmdbID,
			table.SyncRecord.Status,
			table.SyncRecord.ErrorMessage,
		).
		MODEL(record)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create sync record: %w", err)
	}

	return result.LastInsertId()
}

// ListSyncRecords lists audit entries newest first
func (s *SQLite) ListSyncRecords(ctx context.Context, offset, limit int64) ([]*model.SyncRecord, error) {
	stmt := table.SyncRecord.
		SELECT(table.SyncRecord.AllColumns).
		FROM(table.SyncRecord).
		ORDER_BY(table.SyncRecord.ID.DESC()).
		LIMIT(limit).
		OFFSET(offset)

	records := make([]*model.SyncRecord, 0)
	err := stmt.QueryContext(ctx, s.db, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync records: %w", err)
	}

	return records, nil
}

// CountSyncRecords returns the total number of audit entries
func (s *SQLite) CountSyncRecords(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM sync_record`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sync records: %w", err)
	}

	return count, nil
}
