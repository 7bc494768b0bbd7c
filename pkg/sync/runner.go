package sync

import (
	"context"
	"fmt"
	gosync "sync"

	"github.com/streamhaven/catalogd/pkg/cache"
	"github.com/streamhaven/catalogd/pkg/catalog"
	"github.com/streamhaven/catalogd/pkg/logger"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

const DefaultImportLimit = 20

// ClientFactory builds a provider client for the config active at batch start.
type ClientFactory func(cfg catalog.Config) catalog.ClientInterface

// Syncer runs discovery imports and full resyncs. Batches are serialized:
// two concurrent runs would race on the destroy-and-rebuild of a series'
// season tree, so only one batch is in flight per process.
type Syncer struct {
	store   storage.Storage
	factory ClientFactory
	mu      gosync.Mutex
}

type Option func(*Syncer)

// WithClientFactory overrides how provider clients are built
func WithClientFactory(factory ClientFactory) Option {
	return func(s *Syncer) {
		s.factory = factory
	}
}

func New(store storage.Storage, opts ...Option) *Syncer {
	s := &Syncer{
		store: store,
		factory: func(cfg catalog.Config) catalog.ClientInterface {
			return catalog.New(cfg)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RunDiscovery imports up to limit popular titles of the given kind. Items
// already present locally are reported as skipped.
func (s *Syncer) RunDiscovery(ctx context.Context, mediaType storage.MediaType, limit int) (*BatchReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromCtx(ctx)

	if limit <= 0 {
		limit = DefaultImportLimit
	}

	b, err := s.newBatch(ctx)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{Results: []ItemResult{}}
	switch mediaType {
	case storage.MediaTypeMovie:
		summaries, err := b.client.PopularMovies(ctx, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch popular movies: %w", err)
		}
		if len(summaries) > limit {
			summaries = summaries[:limit]
		}
		for _, summary := range summaries {
			report.add(b.importMovie(ctx, summary))
		}
	case storage.MediaTypeSeries:
		summaries, err := b.client.PopularSeries(ctx, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch popular series: %w", err)
		}
		if len(summaries) > limit {
			summaries = summaries[:limit]
		}
		for _, summary := range summaries {
			report.add(b.importSeries(ctx, summary))
		}
	default:
		return nil, fmt.Errorf("unknown media type %q", mediaType)
	}

	log.Info("discovery import finished",
		zap.String("mediaType", string(mediaType)),
		zap.Int("total", report.Summary.Total),
		zap.Int("success", report.Summary.Success),
		zap.Int("errors", report.Summary.Errors),
		zap.Int("skipped", report.Summary.Skipped))

	return report, nil
}

// RunResync re-fetches and overwrites every stored title of the given kind
// that carries a tmdb id. Item failures are isolated; the batch always runs
// to completion.
func (s *Syncer) RunResync(ctx context.Context, mediaType storage.MediaType) (*BatchReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromCtx(ctx)

	b, err := s.newBatch(ctx)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{Results: []ItemResult{}}
	switch mediaType {
	case storage.MediaTypeMovie:
		movies, err := s.store.ListMovies(ctx, table.Movie.TmdbID.IS_NOT_NULL())
		if err != nil {
			return nil, err
		}
		for _, movie := range movies {
			report.add(b.resyncMovie(ctx, movie))
		}
	case storage.MediaTypeSeries:
		series, err := s.store.ListSeries(ctx, table.Series.TmdbID.IS_NOT_NULL())
		if err != nil {
			return nil, err
		}
		for _, sr := range series {
			report.add(b.resyncSeries(ctx, sr))
		}
	default:
		return nil, fmt.Errorf("unknown media type %q", mediaType)
	}

	log.Info("resync finished",
		zap.String("mediaType", string(mediaType)),
		zap.Int("total", report.Summary.Total),
		zap.Int("success", report.Summary.Success),
		zap.Int("errors", report.Summary.Errors))

	return report, nil
}

// newBatch loads the active provider config once and builds the client the
// whole batch will use. Without an active config the batch never starts.
func (s *Syncer) newBatch(ctx context.Context) (*batch, error) {
	config, err := s.store.GetActiveCatalogConfig(ctx)
	if err != nil {
		return nil, err
	}

	cfg := catalog.Config{
		BaseURL:      config.BaseURL,
		APIKey:       config.APIKey,
		ImageBaseURL: config.ImageBaseURL,
		Language:     config.Language,
	}

	return &batch{
		store:  s.store,
		client: s.factory(cfg),
		cfg:    cfg,
		genres: cache.New[int32, int32](),
	}, nil
}
