package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/streamhaven/catalogd/pkg/logger"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"github.com/streamhaven/catalogd/pkg/sync"
	"go.uber.org/zap"
)

type catalogBatchRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=movies series"`
	Limit int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

type batchResponse struct {
	Success bool              `json:"success,omitempty"`
	Message string            `json:"message"`
	Results []sync.ItemResult `json:"results"`
	Summary sync.Summary      `json:"summary"`
}

// BulkImport runs a discovery import of popular titles
func (s Server) BulkImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		request, ok := decodeBatchRequest(w, r)
		if !ok {
			return
		}

		mediaType, err := sync.ParseKind(request.Kind)
		if err != nil {
			http.Error(w, "kind must be movies or series", http.StatusBadRequest)
			return
		}

		report, err := s.syncer.RunDiscovery(r.Context(), mediaType, request.Limit)
		if err != nil {
			log.Error("bulk import failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, batchResponse{
			Message: "bulk import finished",
			Results: report.Results,
			Summary: report.Summary,
		})
	}
}

// Sync resynchronizes every imported title of the requested kind
func (s Server) Sync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		request, ok := decodeBatchRequest(w, r)
		if !ok {
			return
		}

		mediaType, err := sync.ParseKind(request.Kind)
		if err != nil {
			http.Error(w, "kind must be movies or series", http.StatusBadRequest)
			return
		}

		report, err := s.syncer.RunResync(r.Context(), mediaType)
		if err != nil {
			log.Error("sync failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, batchResponse{
			Success: true,
			Message: "sync finished",
			Results: report.Results,
			Summary: report.Summary,
		})
	}
}

func decodeBatchRequest(w http.ResponseWriter, r *http.Request) (catalogBatchRequest, bool) {
	log := logger.FromCtx(r.Context())

	var request catalogBatchRequest
	b, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("invalid request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return request, false
	}

	if err := json.Unmarshal(b, &request); err != nil {
		log.Debug("invalid request body", zap.ByteString("body", b))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return request, false
	}

	if err := validate.Struct(request); err != nil {
		http.Error(w, "kind must be movies or series", http.StatusBadRequest)
		return request, false
	}

	return request, true
}

type syncRecordsResponse struct {
	Records []*model.SyncRecord `json:"records"`
	Meta    any                 `json:"meta"`
}

const defaultSyncRecordsPageSize = 50

// ListSyncRecords pages through the per-item audit trail, newest first
func (s Server) ListSyncRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if params.PageSize == 0 {
			params.PageSize = defaultSyncRecordsPageSize
		}

		offset, limit := params.CalculateOffsetLimit()
		records, err := s.store.ListSyncRecords(r.Context(), int64(offset), int64(limit))
		if err != nil {
			log.Error("failed to list sync records", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		total, err := s.store.CountSyncRecords(r.Context())
		if err != nil {
			log.Error("failed to count sync records", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: syncRecordsResponse{
			Records: records,
			Meta:    params.BuildMeta(int(total)),
		}})
	}
}

type catalogConfigRequest struct {
	BaseURL      string `json:"baseUrl" validate:"required,url"`
	APIKey       string `json:"apiKey" validate:"required"`
	ImageBaseURL string `json:"imageBaseUrl" validate:"required,url"`
	Language     string `json:"language" validate:"omitempty,len=2"`
}

// catalogConfigResponse never echoes the api key back
type catalogConfigResponse struct {
	BaseURL      string    `json:"baseUrl"`
	ImageBaseURL string    `json:"imageBaseUrl"`
	Language     string    `json:"language"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GetCatalogConfig returns the active provider configuration
func (s Server) GetCatalogConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		config, err := s.store.GetActiveCatalogConfig(r.Context())
		if err != nil {
			if err == storage.ErrNoActiveConfig {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Error("failed to get catalog config", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: catalogConfigResponse{
			BaseURL:      config.BaseURL,
			ImageBaseURL: config.ImageBaseURL,
			Language:     config.Language,
			UpdatedAt:    config.UpdatedAt,
		}})
	}
}

// PutCatalogConfig stores a new provider configuration and activates it
func (s Server) PutCatalogConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request catalogConfigRequest
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal(b, &request); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if request.Language == "" {
			request.Language = "en"
		}

		_, err = s.store.SaveCatalogConfig(r.Context(), model.CatalogConfig{
			BaseURL:      request.BaseURL,
			APIKey:       request.APIKey,
			ImageBaseURL: request.ImageBaseURL,
			Language:     request.Language,
		})
		if err != nil {
			log.Error("failed to save catalog config", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "catalog config saved"})
	}
}
