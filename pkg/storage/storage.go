package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")
var ErrNoActiveConfig = errors.New("no active catalog config")

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

// SeasonTree is a season together with the episodes that belong to it. The
// episode SeasonID is assigned by storage on insert.
type SeasonTree struct {
	Season   model.Season
	Episodes []model.Episode
}

type SyncRecordStatus string

const (
	SyncRecordStatusSuccess SyncRecordStatus = "success"
	SyncRecordStatusError   SyncRecordStatus = "error"
)

type Storage interface {
	CatalogConfigStorage
	MovieStorage
	SeriesStorage
	GenreStorage
	SyncRecordStorage
}

type CatalogConfigStorage interface {
	// GetActiveCatalogConfig returns the single active config row or ErrNoActiveConfig.
	GetActiveCatalogConfig(ctx context.Context) (*model.CatalogConfig, error)
	// SaveCatalogConfig deactivates any existing config and stores the given one as active.
	SaveCatalogConfig(ctx context.Context, config model.CatalogConfig) (int64, error)
}

type MovieStorage interface {
	CreateMovie(ctx context.Context, movie model.Movie) (int64, error)
	GetMovie(ctx context.Context, where sqlite.BoolExpression) (*model.Movie, error)
	ListMovies(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Movie, error)
	UpdateMovie(ctx context.Context, movie model.Movie, where sqlite.BoolExpression) error
	DeleteMovie(ctx context.Context, id int64) error
}

type SeriesStorage interface {
	CreateSeries(ctx context.Context, series model.Series) (int64, error)
	GetSeries(ctx context.Context, where sqlite.BoolExpression) (*model.Series, error)
	ListSeries(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Series, error)
	UpdateSeries(ctx context.Context, series model.Series, where sqlite.BoolExpression) error
	DeleteSeries(ctx context.Context, id int64) error

	ListSeasons(ctx context.Context, seriesID int64) ([]*model.Season, error)
	ListEpisodes(ctx context.Context, seasonID int64) ([]*model.Episode, error)
	// ReplaceSeasonTree removes every season and episode of the series and
	// inserts the given trees in a single transaction.
	ReplaceSeasonTree(ctx context.Context, seriesID int64, trees []SeasonTree) error
}

type GenreStorage interface {
	CreateGenre(ctx context.Context, genre model.Genre) (int64, error)
	GetGenre(ctx context.Context, where sqlite.BoolExpression) (*model.Genre, error)
	ListGenres(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Genre, error)
	// ReplaceMovieGenres swaps the genre links of a movie for the given genre ids.
	ReplaceMovieGenres(ctx context.Context, movieID int64, genreIDs []int32) error
	ReplaceSeriesGenres(ctx context.Context, seriesID int64, genreIDs []int32) error
	ListMovieGenres(ctx context.Context, movieID int64) ([]*model.Genre, error)
	ListSeriesGenres(ctx context.Context, seriesID int64) ([]*model.Genre, error)
}

type SyncRecordStorage interface {
	CreateSyncRecord(ctx context.Context, record model.SyncRecord) (int64, error)
	ListSyncRecords(ctx context.Context, offset, limit int64) ([]*model.SyncRecord, error)
	CountSyncRecords(ctx context.Context) (int64, error)
}
