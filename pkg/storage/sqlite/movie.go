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

// movieWriteColumns are the columns set by the application; timestamps come
// from the table defaults on insert.
var movieWriteColumns = sqlite.ColumnList{
	table.Movie.TmdbID,
	table.Movie.Title,
	table.Movie.OriginalTitle,
	table.Movie.Overview,
	table.Movie.Year,
	table.Movie.Rating,
	table.Movie.VoteCount,
	table.Movie.Popularity,
	table.Movie.PosterURL,
	table.Movie.BackdropURL,
	table.Movie.TrailerKey,
	table.Movie.IsActive,
	table.Movie.IsFeatured,
}

// CreateMovie stores a new movie
func (s *SQLite) CreateMovie(ctx context.Context, movie model.Movie) (int64, error) {
	stmt := table.Movie.
		INSERT(movieWriteColumns).
		MODEL(movie)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create movie: %w", err)
	}

	return result.LastInsertId()
}

// GetMovie gets a movie for the given where
func (s *SQLite) GetMovie(ctx context.Context, where sqlite.BoolExpression) (*model.Movie, error) {
	stmt := table.Movie.
		SELECT(table.Movie.AllColumns).
		FROM(table.Movie).
		WHERE(where)

	var movie model.Movie
	err := stmt.QueryContext(ctx, s.db, &movie)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return &movie, nil
}

// ListMovies lists stored movies, optionally filtered
func (s *SQLite) ListMovies(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Movie, error) {
	stmt := table.Movie.
		SELECT(table.Movie.AllColumns).
		FROM(table.Movie).
		ORDER_BY(table.Movie.ID.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	movies := make([]*model.Movie, 0)
	err := stmt.QueryContext(ctx, s.db, &movies)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return movies, nil
}

// UpdateMovie overwrites the stored movie matched by where
func (s *SQLite) UpdateMovie(ctx context.Context, movie model.Movie, where sqlite.BoolExpression) error {
	movie.UpdatedAt = time.Now().UTC()

	columns := append(sqlite.ColumnList{}, movieWriteColumns...)
	columns = append(columns, table.Movie.UpdatedAt)

	stmt := table.Movie.
		UPDATE(columns).
		MODEL(movie).
		WHERE(where)

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	return nil
}

// DeleteMovie deletes a stored movie given its ID
func (s *SQLite) DeleteMovie(ctx context.Context, id int64) error {
	stmt := table.Movie.
		DELETE().
		WHERE(table.Movie.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	return nil
}
