package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/streamhaven/catalogd/pkg/storage"
	sqlitestore "github.com/streamhaven/catalogd/pkg/storage/sqlite"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/sync"
	"github.com/streamhaven/catalogd/server/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (Server, *mocks.MockSyncer, storage.Storage) {
	store, err := sqlitestore.New(":memory:")
	require.Nil(t, err)

	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)

	return New(zap.NewNop().Sugar(), syncer, store), syncer, store
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_BulkImport(t *testing.T) {
	t.Run("runs a discovery import", func(t *testing.T) {
		s, syncer, _ := newTestServer(t)

		report := &sync.BatchReport{
			Results: []sync.ItemResult{
				{TmdbID: 603, Title: "The Matrix", Status: sync.ItemStatusSuccess},
				{TmdbID: 604, Title: "The Matrix Reloaded", Status: sync.ItemStatusSkipped, Reason: "already imported"},
			},
			Summary: sync.Summary{Total: 2, Success: 1, Skipped: 1},
		}
		syncer.EXPECT().RunDiscovery(gomock.Any(), storage.MediaTypeMovie, 10).Return(report, nil)

		req := httptest.NewRequest("POST", "/admin/catalog/bulk-import", strings.NewReader(`{"kind":"movies","limit":10}`))
		rr := httptest.NewRecorder()
		s.BulkImport().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response batchResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Summary.Total)
		assert.Equal(t, 1, response.Summary.Success)
		assert.Len(t, response.Results, 2)
	})

	t.Run("rejects a missing kind", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		req := httptest.NewRequest("POST", "/admin/catalog/bulk-import", strings.NewReader(`{"limit":10}`))
		rr := httptest.NewRecorder()
		s.BulkImport().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		req := httptest.NewRequest("POST", "/admin/catalog/bulk-import", strings.NewReader(`{"kind":"albums"}`))
		rr := httptest.NewRecorder()
		s.BulkImport().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		req := httptest.NewRequest("POST", "/admin/catalog/bulk-import", strings.NewReader(`{`))
		rr := httptest.NewRecorder()
		s.BulkImport().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServer_Sync(t *testing.T) {
	t.Run("runs a resync", func(t *testing.T) {
		s, syncer, _ := newTestServer(t)

		report := &sync.BatchReport{
			Results: []sync.ItemResult{{TmdbID: 1396, Title: "Breaking Bad", Status: sync.ItemStatusSuccess}},
			Summary: sync.Summary{Total: 1, Success: 1},
		}
		syncer.EXPECT().RunResync(gomock.Any(), storage.MediaTypeSeries).Return(report, nil)

		req := httptest.NewRequest("POST", "/admin/catalog/sync", strings.NewReader(`{"kind":"series"}`))
		rr := httptest.NewRecorder()
		s.Sync().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response batchResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, 1, response.Summary.Success)
	})

	t.Run("fails without an active config", func(t *testing.T) {
		s, syncer, _ := newTestServer(t)

		syncer.EXPECT().RunResync(gomock.Any(), storage.MediaTypeMovie).Return(nil, storage.ErrNoActiveConfig)

		req := httptest.NewRequest("POST", "/admin/catalog/sync", strings.NewReader(`{"kind":"movies"}`))
		rr := httptest.NewRecorder()
		s.Sync().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var response errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, storage.ErrNoActiveConfig.Error(), response.Error)
	})

	t.Run("surfaces engine errors", func(t *testing.T) {
		s, syncer, _ := newTestServer(t)

		syncer.EXPECT().RunResync(gomock.Any(), storage.MediaTypeMovie).Return(nil, errors.New("boom"))

		req := httptest.NewRequest("POST", "/admin/catalog/sync", strings.NewReader(`{"kind":"movies"}`))
		rr := httptest.NewRecorder()
		s.Sync().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestServer_ListSyncRecords(t *testing.T) {
	ctx := context.Background()
	s, _, store := newTestServer(t)

	for i := 0; i < 3; i++ {
		_, err := store.CreateSyncRecord(ctx, model.SyncRecord{
			MediaType: "movie",
			TmdbID:    int32(600 + i),
			Status:    "success",
		})
		require.Nil(t, err)
	}

	req := httptest.NewRequest("GET", "/admin/catalog/sync-records?page=1&pageSize=2", nil)
	rr := httptest.NewRecorder()
	s.ListSyncRecords().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Response struct {
			Records []model.SyncRecord `json:"records"`
			Meta    struct {
				TotalItems int `json:"totalItems"`
				TotalPages int `json:"totalPages"`
			} `json:"meta"`
		} `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response.Response.Records, 2)
	assert.Equal(t, 3, response.Response.Meta.TotalItems)
	assert.Equal(t, 2, response.Response.Meta.TotalPages)
	assert.Equal(t, int32(602), response.Response.Records[0].TmdbID)

	t.Run("rejects a bad page", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/catalog/sync-records?page=zero", nil)
		rr := httptest.NewRecorder()
		s.ListSyncRecords().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServer_CatalogConfig(t *testing.T) {
	s, _, _ := newTestServer(t)

	t.Run("404 before any config is saved", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/catalog/config", nil)
		rr := httptest.NewRecorder()
		s.GetCatalogConfig().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("save and fetch roundtrip", func(t *testing.T) {
		body := `{"baseUrl":"https://api.themoviedb.org/3","apiKey":"supersecret","imageBaseUrl":"https://image.tmdb.org/t/p","language":"fr"}`
		req := httptest.NewRequest("PUT", "/admin/catalog/config", strings.NewReader(body))
		rr := httptest.NewRecorder()
		s.PutCatalogConfig().ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		req = httptest.NewRequest("GET", "/admin/catalog/config", nil)
		rr = httptest.NewRecorder()
		s.GetCatalogConfig().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response catalogConfigResponse `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "https://api.themoviedb.org/3", response.Response.BaseURL)
		assert.Equal(t, "fr", response.Response.Language)
		// the api key is never echoed back
		assert.NotContains(t, rr.Body.String(), "supersecret")
	})

	t.Run("rejects an incomplete config", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/admin/catalog/config", strings.NewReader(`{"baseUrl":"https://api.themoviedb.org/3"}`))
		rr := httptest.NewRecorder()
		s.PutCatalogConfig().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
