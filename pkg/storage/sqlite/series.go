package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
)

var seriesWriteColumns = sqlite.ColumnList{
	table.Series.TmdbID,
	table.Series.Title,
	table.Series.OriginalTitle,
	table.Series.Overview,
	table.Series.Year,
	table.Series.Rating,
	table.Series.VoteCount,
	table.Series.Popularity,
	table.Series.PosterURL,
	table.Series.BackdropURL,
	table.Series.TrailerKey,
	table.Series.NumberOfSeasons,
	table.Series.NumberOfEpisodes,
	table.Series.Status,
	table.Series.FirstAirDate,
	table.Series.LastAirDate,
	table.Series.IsActive,
	table.Series.IsFeatured,
}

// CreateSeries stores a new series
func (s *SQLite) CreateSeries(ctx context.Context, series model.Series) (int64, error) {
	stmt := table.Series.
		INSERT(seriesWriteColumns).
		MODEL(series)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create series: %w", err)
	}

	return result.LastInsertId()
}

// GetSeries gets a series for the given where
func (s *SQLite) GetSeries(ctx context.Context, where sqlite.BoolExpression) (*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		WHERE(where)

	var series model.Series
	err := stmt.QueryContext(ctx, s.db, &series)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	return &series, nil
}

// ListSeries lists stored series, optionally filtered
func (s *SQLite) ListSeries(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		ORDER_BY(table.Series.ID.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	series := make([]*model.Series, 0)
	err := stmt.QueryContext(ctx, s.db, &series)
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}

	return series, nil
}

// UpdateSeries overwrites the stored series matched by where
func (s *SQLite) UpdateSeries(ctx context.Context, series model.Series, where sqlite.BoolExpression) error {
	series.UpdatedAt = time.Now().UTC()

	columns := append(sqlite.ColumnList{}, seriesWriteColumns...)
	columns = append(columns, table.Series.UpdatedAt)

	stmt := table.Series.
		UPDATE(columns).
		MODEL(series).
		WHERE(where)

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update series: %w", err)
	}

	return nil
}

// DeleteSeries deletes a stored series given its ID. Seasons and episodes go
// with it through the foreign keys.
func (s *SQLite) DeleteSeries(ctx context.Context, id int64) error {
	stmt := table.Series.
		DELETE().
		WHERE(table.Series.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete series: %w", err)
	}

	return nil
}

// ListSeasons lists the seasons of a series ordered by season number
func (s *SQLite) ListSeasons(ctx context.Context, seriesID int64) ([]*model.Season, error) {
	stmt := table.Season.
		SELECT(table.Season.AllColumns).
		FROM(table.Season).
		WHERE(table.Season.SeriesID.EQ(sqlite.Int64(seriesID))).
		ORDER_BY(table.Season.Number.ASC())

	seasons := make([]*model.Season, 0)
	err := stmt.QueryContext(ctx, s.db, &seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	return seasons, nil
}

// ListEpisodes lists the episodes of a season ordered by episode number
func (s *SQLite) ListEpisodes(ctx context.Context, seasonID int64) ([]*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		WHERE(table.Episode.SeasonID.EQ(sqlite.Int64(seasonID))).
		ORDER_BY(table.Episode.Number.ASC())

	episodes := make([]*model.Episode, 0)
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}

// ReplaceSeasonTree drops every season and episode of the series and inserts
// the given trees in a single transaction. Nothing survives a partial failure.
func (s *SQLite) ReplaceSeasonTree(ctx context.Context, seriesID int64, trees []storage.SeasonTree) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var existing []*model.Season
	listStmt := table.Season.
		SELECT(table.Season.ID).
		FROM(table.Season).
		WHERE(table.Season.SeriesID.EQ(sqlite.Int64(seriesID)))
	if err := listStmt.QueryContext(ctx, tx, &existing); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to list seasons for rebuild: %w", err)
	}

	if len(existing) > 0 {
		seasonIDs := make([]sqlite.Expression, 0, len(existing))
		for _, season := range existing {
			seasonIDs = append(seasonIDs, sqlite.Int32(season.ID))
		}

		deleteEpisodes := table.Episode.
			DELETE().
			WHERE(table.Episode.SeasonID.IN(seasonIDs...))
		if _, err := deleteEpisodes.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete episodes for rebuild: %w", err)
		}

		deleteSeasons := table.Season.
			DELETE().
			WHERE(table.Season.SeriesID.EQ(sqlite.Int64(seriesID)))
		if _, err := deleteSeasons.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete seasons for rebuild: %w", err)
		}
	}

	for _, tree := range trees {
		season := tree.Season
		season.SeriesID = int32(seriesID)

		insertSeason := table.Season.
			INSERT(table.Season.MutableColumns).
			MODEL(season)
		result, err := insertSeason.ExecContext(ctx, tx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert season %d: %w", season.Number, err)
		}

		seasonID, err := result.LastInsertId()
		if err != nil {
			tx.Rollback()
			return err
		}

		for _, episode := range tree.Episodes {
			episode.SeasonID = int32(seasonID)

			insertEpisode := table.Episode.
				INSERT(table.Episode.MutableColumns).
				MODEL(episode)
			if _, err := insertEpisode.ExecContext(ctx, tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to insert episode %d of season %d: %w", episode.Number, season.Number, err)
			}
		}
	}

	return tx.Commit()
}
