package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRecordStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	count, err := store.CountSyncRecords(ctx)
	assert.Nil(t, err)
	assert.Zero(t, count)

	for i := 0; i < 5; i++ {
		record := model.SyncRecord{
			MediaType: "movie",
			TmdbID:    int32(100 + i),
			Status:    "success",
		}
		if i == 3 {
			record.Status = "error"
			record.ErrorMessage = ptr(fmt.Sprintf("fetch failed for %d", 100+i))
		}
		id, err := store.CreateSyncRecord(ctx, record)
		require.Nil(t, err)
		assert.Greater(t, id, int64(0))
	}

	count, err = store.CountSyncRecords(ctx)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), count)

	// newest first
	records, err := store.ListSyncRecords(ctx, 0, 2)
	assert.Nil(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int32(104), records[0].TmdbID)
	assert.Equal(t, int32(103), records[1].TmdbID)
	assert.Equal(t, "error", records[1].Status)
	assert.NotNil(t, records[1].ErrorMessage)
	assert.False(t, records[0].CreatedAt.IsZero())

	records, err = store.ListSyncRecords(ctx, 4, 2)
	assert.Nil(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int32(100), records[0].TmdbID)
}
