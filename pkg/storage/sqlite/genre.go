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

// CreateGenre stores a new genre
func (s *SQLite) CreateGenre(ctx context.Context, genre model.Genre) (int64, error) {
	stmt := table.Genre.
		INSERT(
			table.Genre.TmdbID,
			table.Genre.Name,
			table.Genre.Slug,
			table.Genre.IsActive,
		).
		MODEL(genre)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create genre: %w", err)
	}

	return result.LastInsertId()
}

// GetGenre gets a genre for the given where
func (s *SQLite) GetGenre(ctx context.Context, where sqlite.BoolExpression) (*model.Genre, error) {
	stmt := table.Genre.
		SELECT(table.Genre.AllColumns).
		FROM(table.Genre).
		WHERE(where)

	var genre model.Genre
	err := stmt.QueryContext(ctx, s.db, &genre)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	return &genre, nil
}

// ListGenres lists stored genres, optionally filtered
func (s *SQLite) ListGenres(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Genre, error) {
	stmt := table.Genre.
		SELECT(table.Genre.AllColumns).
		FROM(table.Genre).
		ORDER_BY(table.Genre.Name.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	genres := make([]*model.Genre, 0)
	err := stmt.QueryContext(ctx, s.db, &genres)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	return genres, nil
}

// ReplaceMovieGenres swaps the genre links of a movie in a single transaction
func (s *SQLite) ReplaceMovieGenres(ctx context.Context, movieID int64, genreIDs []int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	deleteStmt := table.MovieGenre.
		DELETE().
		WHERE(table.MovieGenre.MovieID.EQ(sqlite.Int64(movieID)))
	if _, err := deleteStmt.ExecContext(ctx, tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to unlink movie genres: %w", err)
	}

	for _, genreID := range genreIDs {
		link := model.MovieGenre{
			MovieID: int32(movieID),
			GenreID: genreID,
		}
		insertStmt := table.MovieGenre.
			INSERT(table.MovieGenre.AllColumns).
			MODEL(link)
		if _, err := insertStmt.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to link movie genre %d: %w", genreID, err)
		}
	}

	return tx.Commit()
}

// ReplaceSeriesGenres swaps the genre links of a series in a single transaction
func (s *SQLite) ReplaceSeriesGenres(ctx context.Context, seriesID int64, genreIDs []int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	deleteStmt := table.SeriesGenre.
		DELETE().
		WHERE(table.SeriesGenre.SeriesID.EQ(sqlite.Int64(seriesID)))
	if _, err := deleteStmt.ExecContext(ctx, tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to unlink series genres: %w", err)
	}

	for _, genreID := range genreIDs {
		link := model.SeriesGenre{
			SeriesID: int32(seriesID),
			GenreID:  genreID,
		}
		insertStmt := table.SeriesGenre.
			INSERT(table.SeriesGenre.AllColumns).
			MODEL(link)
		if _, err := insertStmt.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to link series genre %d: %w", genreID, err)
		}
	}

	return tx.Commit()
}

// ListMovieGenres lists the genres linked to a movie
func (s *SQLite) ListMovieGenres(ctx context.Context, movieID int64) ([]*model.Genre, error) {
	stmt := table.Genre.
		SELECT(table.Genre.AllColumns).
		FROM(
			table.Genre.
				INNER_JOIN(table.MovieGenre, table.MovieGenre.GenreID.EQ(table.Genre.ID)),
		).
		WHERE(table.MovieGenre.MovieID.EQ(sqlite.Int64(movieID))).
		ORDER_BY(table.Genre.Name.ASC())

	genres := make([]*model.Genre, 0)
	err := stmt.QueryContext(ctx, s.db, &genres)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie genres: %w", err)
	}

	return genres, nil
}

// ListSeriesGenres lists the genres linked to a series
func (s *SQLite) ListSeriesGenres(ctx context.Context, seriesID int64) ([]*model.Genre, error) {
	stmt := table.Genre.
		SELECT(table.Genre.AllColumns).
		FROM(
			table.Genre.
				INNER_JOIN(table.SeriesGenre, table.SeriesGenre.GenreID.EQ(table.Genre.ID)),
		).
		WHERE(table.SeriesGenre.SeriesID.EQ(sqlite.Int64(seriesID))).
		ORDER_BY(table.Genre.Name.ASC())

	genres := make([]*model.Genre, 0)
	err := stmt.QueryContext(ctx, s.db, &genres)
	if err != nil {
		return nil, fmt.Errorf("failed to list series genres: %w", err)
	}

	return genres, nil
}
