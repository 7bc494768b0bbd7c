package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	series := model.Series{
		TmdbID:           ptr(int32(1396)),
		Title:            "Breaking Bad",
		Overview:         ptr("A chemistry teacher turns to crime."),
		Year:             ptr(int32(2008)),
		Rating:           8.9,
		VoteCount:        12000,
		NumberOfSeasons:  5,
		NumberOfEpisodes: 62,
		Status:           ptr("Ended"),
		IsActive:         true,
	}
	id, err := store.CreateSeries(ctx, series)
	assert.Nil(t, err)
	assert.Greater(t, id, int64(0))

	got, err := store.GetSeries(ctx, table.Series.TmdbID.EQ(sqlite.Int32(1396)))
	assert.Nil(t, err)
	assert.Equal(t, series.Title, got.Title)
	assert.Equal(t, int32(5), got.NumberOfSeasons)
	assert.Equal(t, ptr("Ended"), got.Status)

	got.Rating = 9.1
	err = store.UpdateSeries(ctx, *got, table.Series.ID.EQ(sqlite.Int32(got.ID)))
	assert.Nil(t, err)

	updated, err := store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(got.ID)))
	assert.Nil(t, err)
	assert.Equal(t, 9.1, updated.Rating)

	err = store.DeleteSeries(ctx, int64(got.ID))
	assert.Nil(t, err)

	_, err = store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(got.ID)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReplaceSeasonTree(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	id, err := store.CreateSeries(ctx, model.Series{
		TmdbID:   ptr(int32(42)),
		Title:    "Some Show",
		IsActive: true,
	})
	require.Nil(t, err)

	airDate := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	first := []storage.SeasonTree{
		{
			Season: model.Season{
				TmdbID:       ptr(int32(100)),
				Number:       1,
				Title:        ptr("Season 1"),
				AirDate:      &airDate,
				EpisodeCount: 2,
			},
			Episodes: []model.Episode{
				{TmdbID: ptr(int32(1001)), Number: 1, Title: ptr("Pilot"), Rating: 7.5, IsActive: true},
				{TmdbID: ptr(int32(1002)), Number: 2, Title: ptr("Second"), Rating: 7.8, IsActive: true},
			},
		},
		{
			Season: model.Season{
				TmdbID:       ptr(int32(200)),
				Number:       2,
				Title:        ptr("Season 2"),
				EpisodeCount: 1,
			},
			Episodes: []model.Episode{
				{TmdbID: ptr(int32(2001)), Number: 1, Title: ptr("Return"), IsActive: true},
			},
		},
	}
	err = store.ReplaceSeasonTree(ctx, id, first)
	assert.Nil(t, err)

	seasons, err := store.ListSeasons(ctx, id)
	assert.Nil(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, int32(1), seasons[0].Number)
	assert.Equal(t, int32(2), seasons[1].Number)

	episodes, err := store.ListEpisodes(ctx, int64(seasons[0].ID))
	assert.Nil(t, err)
	assert.Len(t, episodes, 2)

	// the rebuild replaces everything, dropped seasons do not survive
	second := []storage.SeasonTree{
		{
			Season: model.Season{
				TmdbID:       ptr(int32(100)),
				Number:       1,
				Title:        ptr("Season 1"),
				EpisodeCount: 1,
			},
			Episodes: []model.Episode{
				{TmdbID: ptr(int32(1001)), Number: 1, Title: ptr("Pilot"), IsActive: true},
			},
		},
	}
	err = store.ReplaceSeasonTree(ctx, id, second)
	assert.Nil(t, err)

	seasons, err = store.ListSeasons(ctx, id)
	assert.Nil(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, int32(1), seasons[0].Number)

	episodes, err = store.ListEpisodes(ctx, int64(seasons[0].ID))
	assert.Nil(t, err)
	assert.Len(t, episodes, 1)

	// no orphaned episodes remain after the rebuild
	sq, ok := store.(*SQLite)
	require.True(t, ok)
	var orphans int
	err = sq.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM episode`).Scan(&orphans)
	assert.Nil(t, err)
	assert.Equal(t, 1, orphans)
}
