package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
)

func TestMovieStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	movies, err := store.ListMovies(ctx)
	assert.Nil(t, err)
	assert.Empty(t, movies)

	movie := model.Movie{
		TmdbID:        ptr(int32(603)),
		Title:         "The Matrix",
		OriginalTitle: ptr("The Matrix"),
		Overview:      ptr("A computer hacker learns the truth."),
		Year:          ptr(int32(1999)),
		Rating:        8.2,
		VoteCount:     24000,
		Popularity:    85.5,
		PosterURL:     ptr("https://image.tmdb.org/t/p/w500/matrix.jpg"),
		TrailerKey:    ptr("vKQi3bBA1y8"),
		IsActive:      true,
	}
	id, err := store.CreateMovie(ctx, movie)
	assert.Nil(t, err)
	assert.Greater(t, id, int64(0))

	got, err := store.GetMovie(ctx, table.Movie.TmdbID.EQ(sqlite.Int32(603)))
	assert.Nil(t, err)
	assert.Equal(t, movie.Title, got.Title)
	assert.Equal(t, movie.Rating, got.Rating)
	assert.Equal(t, movie.TrailerKey, got.TrailerKey)
	assert.True(t, got.IsActive)
	assert.False(t, got.CreatedAt.IsZero())

	movies, err = store.ListMovies(ctx)
	assert.Nil(t, err)
	assert.Len(t, movies, 1)

	got.Rating = 8.7
	got.TrailerKey = ptr("replacement")
	err = store.UpdateMovie(ctx, *got, table.Movie.ID.EQ(sqlite.Int32(got.ID)))
	assert.Nil(t, err)

	updated, err := store.GetMovie(ctx, table.Movie.ID.EQ(sqlite.Int32(got.ID)))
	assert.Nil(t, err)
	assert.Equal(t, 8.7, updated.Rating)
	assert.Equal(t, ptr("replacement"), updated.TrailerKey)

	err = store.DeleteMovie(ctx, int64(got.ID))
	assert.Nil(t, err)

	_, err = store.GetMovie(ctx, table.Movie.ID.EQ(sqlite.Int32(got.ID)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
