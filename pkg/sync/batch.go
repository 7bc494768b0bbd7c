package sync

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/cache"
	"github.com/streamhaven/catalogd/pkg/catalog"
	"github.com/streamhaven/catalogd/pkg/logger"
	"github.com/streamhaven/catalogd/pkg/machine"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// batch holds the state shared by every item of one sync run: the provider
// client built from the active config and a genre id cache so repeated genres
// hit storage once.
type batch struct {
	store  storage.Storage
	client catalog.ClientInterface
	cfg    catalog.Config
	genres *cache.Cache[int32, int32]
}

func advance(ctx context.Context, m *machine.StateMachine[itemState], next itemState) {
	if err := m.Transition(next); err != nil {
		logger.FromCtx(ctx).Warn("unexpected item state transition",
			zap.String("from", string(m.Current())),
			zap.String("to", string(next)),
			zap.Error(err))
	}
}

// importMovie creates a movie from its discovery summary unless its tmdb id
// is already present locally.
func (b *batch) importMovie(ctx context.Context, summary catalog.MovieSummary) ItemResult {
	m := newItemMachine()
	result := ItemResult{TmdbID: summary.ID, Title: summary.Title}

	advance(ctx, m, stateFetching)
	_, err := b.store.GetMovie(ctx, table.Movie.TmdbID.EQ(sqlite.Int32(summary.ID)))
	if err == nil {
		advance(ctx, m, stateSkipped)
		result.Status = ItemStatusSkipped
		result.Reason = "already imported"
		return result
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return b.fail(ctx, m, storage.MediaTypeMovie, result, err)
	}

	advance(ctx, m, stateApplying)
	if _, err := b.store.CreateMovie(ctx, movieFromSummary(b.cfg, summary)); err != nil {
		return b.fail(ctx, m, storage.MediaTypeMovie, result, err)
	}

	advance(ctx, m, stateSucceeded)
	result.Status = ItemStatusSuccess
	b.audit(ctx, storage.MediaTypeMovie, summary.ID, storage.SyncRecordStatusSuccess, nil)
	return result
}

func (b *batch) importSeries(ctx context.Context, summary catalog.SeriesSummary) ItemResult {
	m := newItemMachine()
	result := ItemResult{TmdbID: summary.ID, Title: summary.Name}

	advance(ctx, m, stateFetching)
	_, err := b.store.GetSeries(ctx, table.Series.TmdbID.EQ(sqlite.Int32(summary.ID)))
	if err == nil {
		advance(ctx, m, stateSkipped)
		result.Status = ItemStatusSkipped
		result.Reason = "already imported"
		return result
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}

	advance(ctx, m, stateApplying)
	if _, err := b.store.CreateSeries(ctx, seriesFromSummary(b.cfg, summary)); err != nil {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}

	advance(ctx, m, stateSucceeded)
	result.Status = ItemStatusSuccess
	b.audit(ctx, storage.MediaTypeSeries, summary.ID, storage.SyncRecordStatusSuccess, nil)
	return result
}

// resyncMovie overwrites a stored movie with the provider's current detail
// and swaps its genre links.
func (b *batch) resyncMovie(ctx context.Context, movie *model.Movie) ItemResult {
	m := newItemMachine()
	result := ItemResult{TmdbID: *movie.TmdbID, Title: movie.Title}

	advance(ctx, m, stateFetching)
	details, err := b.client.MovieDetails(ctx, *movie.TmdbID)
	if err != nil {
		return b.fail(ctx, m, storage.MediaTypeMovie, result, err)
	}
	videos, err := b.client.Videos(ctx, catalog.MediaTypeMovie, *movie.TmdbID)
	if err != nil {
		return b.fail(ctx, m, storage.MediaTypeMovie, result, err)
	}

	advance(ctx, m, stateApplying)
	updated := movieFromDetails(b.cfg, *details, SelectTrailer(videos, b.cfg.Language))
	// featured is local curation, not provider data
	updated.IsFeatured = movie.IsFeatured
	if err := b.store.UpdateMovie(ctx, updated, table.Movie.ID.EQ(sqlite.Int32(movie.ID))); err != nil {
		return b.fail(ctx, m, storage.MediaTypeMovie, result, err)
	}

	genreIDs, err := b.resolveGenres(ctx, details.Genres)
	if err != nil {
		return b.fail(ctx, m, storage.MediaTypeMovie, result, err)
	}
	if err := b.store.ReplaceMovieGenres(ctx, int64(movie.ID), genreIDs); err != nil {
		return b.fail(ctx, m, storage.MediaTypeMovie, result, err)
	}

	advance(ctx, m, stateSucceeded)
	result.Title = details.Title
	result.Status = ItemStatusSuccess
	b.audit(ctx, storage.MediaTypeMovie, *movie.TmdbID, storage.SyncRecordStatusSuccess, nil)
	return result
}

// resyncSeries overwrites a stored series, swaps its genre links, and rebuilds
// its whole season/episode tree from the provider's per-season detail.
func (b *batch) resyncSeries(ctx context.Context, series *model.Series) ItemResult {
	m := newItemMachine()
	result := ItemResult{TmdbID: *series.TmdbID, Title: series.Title}

	advance(ctx, m, stateFetching)
	details, err := b.client.SeriesDetails(ctx, *series.TmdbID)
	if err != nil {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}
	videos, err := b.client.Videos(ctx, catalog.MediaTypeTV, *series.TmdbID)
	if err != nil {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}
	trees := b.fetchSeasonTrees(ctx, *series.TmdbID, details.NumberOfSeasons)

	advance(ctx, m, stateApplying)
	updated := seriesFromDetails(b.cfg, *details, SelectTrailer(videos, b.cfg.Language))
	updated.IsFeatured = series.IsFeatured
	if err := b.store.UpdateSeries(ctx, updated, table.Series.ID.EQ(sqlite.Int32(series.ID))); err != nil {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}

	genreIDs, err := b.resolveGenres(ctx, details.Genres)
	if err != nil {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}
	if err := b.store.ReplaceSeriesGenres(ctx, int64(series.ID), genreIDs); err != nil {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}

	if err := b.store.ReplaceSeasonTree(ctx, int64(series.ID), trees); err != nil {
		return b.fail(ctx, m, storage.MediaTypeSeries, result, err)
	}

	advance(ctx, m, stateSucceeded)
	result.Title = details.Name
	result.Status = ItemStatusSuccess
	b.audit(ctx, storage.MediaTypeSeries, *series.TmdbID, storage.SyncRecordStatusSuccess, nil)
	return result
}

// resolveGenres maps provider genres to local genre ids, creating missing
// ones with a derived slug. Resolutions are cached for the batch.
func (b *batch) resolveGenres(ctx context.Context, genres []catalog.Genre) ([]int32, error) {
	ids := make([]int32, 0, len(genres))
	for _, g := range genres {
		if id, ok := b.genres.Get(g.ID); ok {
			ids = append(ids, id)
			continue
		}

		local, err := b.store.GetGenre(ctx, table.Genre.TmdbID.EQ(sqlite.Int32(g.ID)))
		if err == nil {
			b.genres.Set(g.ID, local.ID)
			ids = append(ids, local.ID)
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		created, err := b.store.CreateGenre(ctx, model.Genre{
			TmdbID:   g.ID,
			Name:     g.Name,
			Slug:     Slugify(g.Name),
			IsActive: true,
		})
		if err != nil {
			return nil, err
		}
		b.genres.Set(g.ID, int32(created))
		ids = append(ids, int32(created))
	}

	return ids, nil
}

// fetchSeasonTrees fetches season detail for season numbers 1..count. A
// failed season is logged and left out of the rebuilt tree; it does not fail
// the series.
func (b *batch) fetchSeasonTrees(ctx context.Context, seriesTmdbID, count int32) []storage.SeasonTree {
	log := logger.FromCtx(ctx)

	trees := make([]storage.SeasonTree, 0, count)
	for number := int32(1); number <= count; number++ {
		details, err := b.client.SeasonDetails(ctx, seriesTmdbID, number)
		if err != nil {
			log.Warn("skipping season, detail fetch failed",
				zap.Int32("seriesTmdbID", seriesTmdbID),
				zap.Int32("season", number),
				zap.Error(err))
			continue
		}
		trees = append(trees, seasonTreeFrom(b.cfg, *details))
	}

	return trees
}

func (b *batch) fail(ctx context.Context, m *machine.StateMachine[itemState], mediaType storage.MediaType, result ItemResult, err error) ItemResult {
	logger.FromCtx(ctx).Warn("sync item failed",
		zap.String("mediaType", string(mediaType)),
		zap.Int32("tmdbID", result.TmdbID),
		zap.Error(err))

	advance(ctx, m, stateFailed)
	result.Status = ItemStatusError
	result.Error = err.Error()
	b.audit(ctx, mediaType, result.TmdbID, storage.SyncRecordStatusError, err)
	return result
}

// audit appends the per-item outcome. A failed write is logged, never fatal.
func (b *batch) audit(ctx context.Context, mediaType storage.MediaType, tmdbID int32, status storage.SyncRecordStatus, cause error) {
	record := model.SyncRecord{
		MediaType: string(mediaType),
		TmdbID:    tmdbID,
		Status:    string(status),
	}
	if cause != nil {
		msg := cause.Error()
		record.ErrorMessage = &msg
	}

	if _, err := b.store.CreateSyncRecord(ctx, record); err != nil {
		logger.FromCtx(ctx).Warn("failed to write sync record",
			zap.Int32("tmdbID", tmdbID),
			zap.Error(err))
	}
}
