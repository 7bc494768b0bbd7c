package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	genres, err := store.ListGenres(ctx)
	assert.Nil(t, err)
	assert.Empty(t, genres)

	action := model.Genre{
		TmdbID:   28,
		Name:     "Action",
		Slug:     "action",
		IsActive: true,
	}
	id, err := store.CreateGenre(ctx, action)
	assert.Nil(t, err)
	assert.Greater(t, id, int64(0))

	got, err := store.GetGenre(ctx, table.Genre.TmdbID.EQ(sqlite.Int32(28)))
	assert.Nil(t, err)
	assert.Equal(t, action.Name, got.Name)
	assert.Equal(t, action.Slug, got.Slug)

	_, err = store.GetGenre(ctx, table.Genre.TmdbID.EQ(sqlite.Int32(999)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReplaceMovieGenres(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	movieID, err := store.CreateMovie(ctx, model.Movie{
		TmdbID:   ptr(int32(603)),
		Title:    "The Matrix",
		IsActive: true,
	})
	require.Nil(t, err)

	actionID, err := store.CreateGenre(ctx, model.Genre{TmdbID: 28, Name: "Action", Slug: "action", IsActive: true})
	require.Nil(t, err)
	scifiID, err := store.CreateGenre(ctx, model.Genre{TmdbID: 878, Name: "Science Fiction", Slug: "science-fiction", IsActive: true})
	require.Nil(t, err)
	dramaID, err := store.CreateGenre(ctx, model.Genre{TmdbID: 18, Name: "Drama", Slug: "drama", IsActive: true})
	require.Nil(t, err)

	err = store.ReplaceMovieGenres(ctx, movieID, []int32{int32(actionID), int32(scifiID)})
	assert.Nil(t, err)

	genres, err := store.ListMovieGenres(ctx, movieID)
	assert.Nil(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Action", genres[0].Name)
	assert.Equal(t, "Science Fiction", genres[1].Name)

	// replacing swaps the full link set
	err = store.ReplaceMovieGenres(ctx, movieID, []int32{int32(dramaID)})
	assert.Nil(t, err)

	genres, err = store.ListMovieGenres(ctx, movieID)
	assert.Nil(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Drama", genres[0].Name)
}

func TestReplaceSeriesGenres(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	seriesID, err := store.CreateSeries(ctx, model.Series{
		TmdbID:   ptr(int32(1396)),
		Title:    "Breaking Bad",
		IsActive: true,
	})
	require.Nil(t, err)

	dramaID, err := store.CreateGenre(ctx, model.Genre{TmdbID: 18, Name: "Drama", Slug: "drama", IsActive: true})
	require.Nil(t, err)
	crimeID, err := store.CreateGenre(ctx, model.Genre{TmdbID: 80, Name: "Crime", Slug: "crime", IsActive: true})
	require.Nil(t, err)

	err = store.ReplaceSeriesGenres(ctx, seriesID, []int32{int32(dramaID), int32(crimeID)})
	assert.Nil(t, err)

	genres, err := store.ListSeriesGenres(ctx, seriesID)
	assert.Nil(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Crime", genres[0].Name)
	assert.Equal(t, "Drama", genres[1].Name)

	err = store.ReplaceSeriesGenres(ctx, seriesID, nil)
	assert.Nil(t, err)

	genres, err = store.ListSeriesGenres(ctx, seriesID)
	assert.Nil(t, err)
	assert.Empty(t, genres)
}
