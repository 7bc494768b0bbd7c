package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
)

// GetActiveCatalogConfig returns the active provider config
func (s *SQLite) GetActiveCatalogConfig(ctx context.Context) (*model.CatalogConfig, error) {
	stmt := table.CatalogConfig.
		SELECT(table.CatalogConfig.AllColumns).
		FROM(table.CatalogConfig).
		WHERE(table.CatalogConfig.IsActive.IS_TRUE())

	var config model.CatalogConfig
	err := stmt.QueryContext(ctx, s.db, &config)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNoActiveConfig
		}
		return nil, fmt.Errorf("failed to get catalog config: %w", err)
	}

	return &config, nil
}

// SaveCatalogConfig deactivates any stored config and inserts the given one as
// active, in a single transaction
func (s *SQLite) SaveCatalogConfig(ctx context.Context, config model.CatalogConfig) (int64, error) {
	config.IsActive = true

	deactivate := table.CatalogConfig.
		UPDATE(table.CatalogConfig.IsActive).
		SET(sqlite.Bool(false)).
		WHERE(table.CatalogConfig.IsActive.IS_TRUE())

	insert := table.CatalogConfig.
		INSERT(
			table.CatalogConfig.BaseURL,
			table.CatalogConfig.APIKey,
			table.CatalogConfig.ImageBaseURL,
			table.CatalogConfig.Language,
			table.CatalogConfig.IsActive,
		).
		MODEL(config)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	if _, err := deactivate.ExecContext(ctx, tx); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to deactivate catalog config: %w", err)
	}

	result, err := insert.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to insert catalog config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	return id, tx.Commit()
}
