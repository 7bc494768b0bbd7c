package sync

import (
	"context"
	"testing"

	jetsqlite "github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/catalog"
	"github.com/streamhaven/catalogd/pkg/catalog/mocks"
	"github.com/streamhaven/catalogd/pkg/storage"
	sqlitestore "github.com/streamhaven/catalogd/pkg/storage/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncer(t *testing.T, ctx context.Context) (*Syncer, storage.Storage, *mocks.MockClientInterface) {
	store, err := sqlitestore.New(":memory:")
	require.Nil(t, err)

	_, err = store.SaveCatalogConfig(ctx, model.CatalogConfig{
		BaseURL:      "https://api.example.test/3",
		APIKey:       "secret",
		ImageBaseURL: "https://images.example.test/t/p",
		Language:     "fr",
	})
	require.Nil(t, err)

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)
	syncer := New(store, WithClientFactory(func(catalog.Config) catalog.ClientInterface {
		return client
	}))

	return syncer, store, client
}

func TestRunDiscoveryRequiresActiveConfig(t *testing.T) {
	ctx := context.Background()

	store, err := sqlitestore.New(":memory:")
	require.Nil(t, err)

	syncer := New(store)
	_, err = syncer.RunDiscovery(ctx, storage.MediaTypeMovie, 5)
	assert.ErrorIs(t, err, storage.ErrNoActiveConfig)
}

func TestRunDiscoveryMoviesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	syncer, store, client := newTestSyncer(t, ctx)

	poster := "/matrix.jpg"
	summaries := []catalog.MovieSummary{
		{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.23, PosterPath: &poster},
		{ID: 604, Title: "The Matrix Reloaded", ReleaseDate: "2003-05-15", VoteAverage: 7.04},
	}
	client.EXPECT().PopularMovies(gomock.Any(), 1).Return(summaries, nil).Times(2)

	report, err := syncer.RunDiscovery(ctx, storage.MediaTypeMovie, 20)
	require.Nil(t, err)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Success)
	assert.Zero(t, report.Summary.Errors)

	movie, err := store.GetMovie(ctx, table.Movie.TmdbID.EQ(jetsqlite.Int32(603)))
	require.Nil(t, err)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, 8.2, movie.Rating)
	require.NotNil(t, movie.PosterURL)
	assert.Equal(t, "https://images.example.test/t/p/w500/matrix.jpg", *movie.PosterURL)
	require.NotNil(t, movie.Year)
	assert.Equal(t, int32(1999), *movie.Year)

	// the second run skips everything and creates no duplicate rows
	report, err = syncer.RunDiscovery(ctx, storage.MediaTypeMovie, 20)
	require.Nil(t, err)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Zero(t, report.Summary.Success)
	assert.Equal(t, 2, report.Summary.Skipped)
	for _, result := range report.Results {
		assert.Equal(t, ItemStatusSkipped, result.Status)
		assert.Equal(t, "already imported", result.Reason)
	}

	movies, err := store.ListMovies(ctx)
	require.Nil(t, err)
	assert.Len(t, movies, 2)
}

func TestRunDiscoveryHonorsLimit(t *testing.T) {
	ctx := context.Background()
	syncer, _, client := newTestSyncer(t, ctx)

	summaries := []catalog.SeriesSummary{
		{ID: 1, Name: "One"},
		{ID: 2, Name: "Two"},
		{ID: 3, Name: "Three"},
	}
	client.EXPECT().PopularSeries(gomock.Any(), 1).Return(summaries, nil)

	report, err := syncer.RunDiscovery(ctx, storage.MediaTypeSeries, 2)
	require.Nil(t, err)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Len(t, report.Results, 2)
	assert.Equal(t, int32(1), report.Results[0].TmdbID)
	assert.Equal(t, int32(2), report.Results[1].TmdbID)
}

func TestRunResyncMoviesOverwritesAndReplacesGenres(t *testing.T) {
	ctx := context.Background()
	syncer, store, client := newTestSyncer(t, ctx)

	tmdbID := int32(603)
	movieID, err := store.CreateMovie(ctx, model.Movie{
		TmdbID:     &tmdbID,
		Title:      "The Matrix",
		Overview:   strptr("stale overview"),
		IsActive:   true,
		IsFeatured: true,
	})
	require.Nil(t, err)

	actionID, err := store.CreateGenre(ctx, model.Genre{TmdbID: 28, Name: "Action", Slug: "action", IsActive: true})
	require.Nil(t, err)
	dramaID, err := store.CreateGenre(ctx, model.Genre{TmdbID: 18, Name: "Drama", Slug: "drama", IsActive: true})
	require.Nil(t, err)
	require.Nil(t, store.ReplaceMovieGenres(ctx, movieID, []int32{int32(actionID), int32(dramaID)}))

	details := &catalog.MovieDetails{
		MovieSummary: catalog.MovieSummary{
			ID:          tmdbID,
			Title:       "The Matrix",
			Overview:    "fresh overview",
			ReleaseDate: "1999-03-31",
			VoteAverage: 8.7,
		},
		Genres: []catalog.Genre{{ID: 35, Name: "Comedy"}},
	}
	videos := []catalog.Video{
		{Type: "Trailer", Site: "YouTube", Language: "en", Key: "A"},
		{Type: "Trailer", Site: "YouTube", Language: "fr", Key: "B"},
	}
	client.EXPECT().MovieDetails(gomock.Any(), tmdbID).Return(details, nil)
	client.EXPECT().Videos(gomock.Any(), catalog.MediaTypeMovie, tmdbID).Return(videos, nil)

	report, err := syncer.RunResync(ctx, storage.MediaTypeMovie)
	require.Nil(t, err)
	assert.Equal(t, 1, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Success)

	movie, err := store.GetMovie(ctx, table.Movie.ID.EQ(jetsqlite.Int64(movieID)))
	require.Nil(t, err)
	assert.Equal(t, strptr("fresh overview"), movie.Overview)
	assert.Equal(t, 8.7, movie.Rating)
	assert.Equal(t, strptr("B"), movie.TrailerKey)
	// featured is local curation and survives the overwrite
	assert.True(t, movie.IsFeatured)

	genres, err := store.ListMovieGenres(ctx, movieID)
	require.Nil(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Comedy", genres[0].Name)
	assert.Equal(t, "comedy", genres[0].Slug)
}

func TestRunResyncSeriesRebuildIsTotal(t *testing.T) {
	ctx := context.Background()
	syncer, store, client := newTestSyncer(t, ctx)

	tmdbID := int32(1396)
	seriesID, err := store.CreateSeries(ctx, model.Series{
		TmdbID:   &tmdbID,
		Title:    "Breaking Bad",
		IsActive: true,
	})
	require.Nil(t, err)

	twoSeasons := &catalog.SeriesDetails{
		SeriesSummary:   catalog.SeriesSummary{ID: tmdbID, Name: "Breaking Bad", FirstAirDate: "2008-01-20"},
		NumberOfSeasons: 2,
		Status:          "Ended",
	}
	client.EXPECT().SeriesDetails(gomock.Any(), tmdbID).Return(twoSeasons, nil)
	client.EXPECT().Videos(gomock.Any(), catalog.MediaTypeTV, tmdbID).Return(nil, nil)
	client.EXPECT().SeasonDetails(gomock.Any(), tmdbID, int32(1)).Return(&catalog.SeasonDetails{
		ID: 100, SeasonNumber: 1, Name: "Season 1",
		Episodes: []catalog.EpisodeDetails{
			{ID: 1001, EpisodeNumber: 1, Name: "Pilot"},
			{ID: 1002, EpisodeNumber: 2, Name: "Cat's in the Bag..."},
		},
	}, nil)
	client.EXPECT().SeasonDetails(gomock.Any(), tmdbID, int32(2)).Return(&catalog.SeasonDetails{
		ID: 200, SeasonNumber: 2, Name: "Season 2",
		Episodes: []catalog.EpisodeDetails{
			{ID: 2001, EpisodeNumber: 1, Name: "Seven Thirty-Seven"},
		},
	}, nil)

	report, err := syncer.RunResync(ctx, storage.MediaTypeSeries)
	require.Nil(t, err)
	assert.Equal(t, 1, report.Summary.Success)

	seasons, err := store.ListSeasons(ctx, seriesID)
	require.Nil(t, err)
	require.Len(t, seasons, 2)

	// upstream dropped to one season; the rebuild leaves no trace of the other
	oneSeason := &catalog.SeriesDetails{
		SeriesSummary:   catalog.SeriesSummary{ID: tmdbID, Name: "Breaking Bad", FirstAirDate: "2008-01-20"},
		NumberOfSeasons: 1,
		Status:          "Ended",
	}
	client.EXPECT().SeriesDetails(gomock.Any(), tmdbID).Return(oneSeason, nil)
	client.EXPECT().Videos(gomock.Any(), catalog.MediaTypeTV, tmdbID).Return(nil, nil)
	client.EXPECT().SeasonDetails(gomock.Any(), tmdbID, int32(1)).Return(&catalog.SeasonDetails{
		ID: 100, SeasonNumber: 1, Name: "Season 1",
		Episodes: []catalog.EpisodeDetails{
			{ID: 1001, EpisodeNumber: 1, Name: "Pilot"},
		},
	}, nil)

	report, err = syncer.RunResync(ctx, storage.MediaTypeSeries)
	require.Nil(t, err)
	assert.Equal(t, 1, report.Summary.Success)

	seasons, err = store.ListSeasons(ctx, seriesID)
	require.Nil(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, int32(1), seasons[0].Number)

	episodes, err := store.ListEpisodes(ctx, int64(seasons[0].ID))
	require.Nil(t, err)
	assert.Len(t, episodes, 1)

	series, err := store.GetSeries(ctx, table.Series.ID.EQ(jetsqlite.Int64(seriesID)))
	require.Nil(t, err)
	assert.Equal(t, int32(1), series.NumberOfSeasons)
	assert.Equal(t, strptr("Ended"), series.Status)
}

func TestRunResyncSeriesToleratesSeasonFetchFailure(t *testing.T) {
	ctx := context.Background()
	syncer, store, client := newTestSyncer(t, ctx)

	tmdbID := int32(42)
	seriesID, err := store.CreateSeries(ctx, model.Series{
		TmdbID:   &tmdbID,
		Title:    "Some Show",
		IsActive: true,
	})
	require.Nil(t, err)

	details := &catalog.SeriesDetails{
		SeriesSummary:   catalog.SeriesSummary{ID: tmdbID, Name: "Some Show"},
		NumberOfSeasons: 2,
	}
	client.EXPECT().SeriesDetails(gomock.Any(), tmdbID).Return(details, nil)
	client.EXPECT().Videos(gomock.Any(), catalog.MediaTypeTV, tmdbID).Return(nil, nil)
	client.EXPECT().SeasonDetails(gomock.Any(), tmdbID, int32(1)).Return(&catalog.SeasonDetails{
		ID: 100, SeasonNumber: 1,
		Episodes: []catalog.EpisodeDetails{{ID: 1001, EpisodeNumber: 1}},
	}, nil)
	client.EXPECT().SeasonDetails(gomock.Any(), tmdbID, int32(2)).
		Return(nil, &catalog.StatusError{Code: 503, Path: "/tv/42/season/2"})

	report, err := syncer.RunResync(ctx, storage.MediaTypeSeries)
	require.Nil(t, err)
	// a missing season degrades the tree but the series still succeeds
	assert.Equal(t, 1, report.Summary.Success)
	assert.Zero(t, report.Summary.Errors)

	seasons, err := store.ListSeasons(ctx, seriesID)
	require.Nil(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, int32(1), seasons[0].Number)
}

func TestRunResyncIsolatesItemFailures(t *testing.T) {
	ctx := context.Background()
	syncer, store, client := newTestSyncer(t, ctx)

	for i := int32(1); i <= 5; i++ {
		id := i
		_, err := store.CreateMovie(ctx, model.Movie{TmdbID: &id, Title: "Movie", IsActive: true})
		require.Nil(t, err)
	}

	client.EXPECT().MovieDetails(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int32) (*catalog.MovieDetails, error) {
			if id == 3 {
				return nil, &catalog.StatusError{Code: 500, Path: "/movie/3"}
			}
			return &catalog.MovieDetails{
				MovieSummary: catalog.MovieSummary{ID: id, Title: "Movie"},
			}, nil
		}).Times(5)
	client.EXPECT().Videos(gomock.Any(), catalog.MediaTypeMovie, gomock.Any()).Return(nil, nil).Times(4)

	report, err := syncer.RunResync(ctx, storage.MediaTypeMovie)
	require.Nil(t, err)

	assert.Equal(t, 5, report.Summary.Total)
	assert.Equal(t, 4, report.Summary.Success)
	assert.Equal(t, 1, report.Summary.Errors)
	assert.Len(t, report.Results, 5)
	for _, result := range report.Results {
		if result.TmdbID == 3 {
			assert.Equal(t, ItemStatusError, result.Status)
			assert.NotEmpty(t, result.Error)
			continue
		}
		assert.Equal(t, ItemStatusSuccess, result.Status)
	}

	// one audit row per processed item
	count, err := store.CountSyncRecords(ctx)
	require.Nil(t, err)
	assert.Equal(t, int64(5), count)

	records, err := store.ListSyncRecords(ctx, 0, 10)
	require.Nil(t, err)
	errors := 0
	for _, record := range records {
		if record.Status == string(storage.SyncRecordStatusError) {
			errors++
			assert.NotNil(t, record.ErrorMessage)
		}
	}
	assert.Equal(t, 1, errors)
}

func strptr(s string) *string {
	return &s
}
