package sync

import (
	"math"
	"strings"
	"time"

	"github.com/streamhaven/catalogd/pkg/catalog"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
)

// provider image sizes per field
const (
	posterSizeTitle  = "w500"
	posterSizeSeason = "w780"
	backdropSize     = "w1280"
	stillSize        = "original"
)

const dateLayout = "2006-01-02"

// imageURL builds an absolute image URL from the configured base, a size
// segment and a provider path (which starts with a slash).
func imageURL(cfg catalog.Config, size string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := strings.TrimRight(cfg.ImageBaseURL, "/") + "/" + size + *path
	return &u
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func yearFrom(date string) *int32 {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil
	}
	year := int32(t.Year())
	return &year
}

func dateFrom(date string) *time.Time {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil
	}
	return &t
}

// roundRating keeps ratings at one decimal
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

func movieFromSummary(cfg catalog.Config, s catalog.MovieSummary) model.Movie {
	id := s.ID
	return model.Movie{
		TmdbID:        &id,
		Title:         s.Title,
		OriginalTitle: optionalString(s.OriginalTitle),
		Overview:      optionalString(s.Overview),
		Year:          yearFrom(s.ReleaseDate),
		Rating:        roundRating(s.VoteAverage),
		VoteCount:     s.VoteCount,
		Popularity:    s.Popularity,
		PosterURL:     imageURL(cfg, posterSizeTitle, s.PosterPath),
		BackdropURL:   imageURL(cfg, backdropSize, s.BackdropPath),
		IsActive:      true,
	}
}

func movieFromDetails(cfg catalog.Config, d catalog.MovieDetails, trailerKey *string) model.Movie {
	movie := movieFromSummary(cfg, d.MovieSummary)
	movie.TrailerKey = trailerKey
	return movie
}

func seriesFromSummary(cfg catalog.Config, s catalog.SeriesSummary) model.Series {
	id := s.ID
	return model.Series{
		TmdbID:        &id,
		Title:         s.Name,
		OriginalTitle: optionalString(s.OriginalName),
		Overview:      optionalString(s.Overview),
		Year:          yearFrom(s.FirstAirDate),
		Rating:        roundRating(s.VoteAverage),
		VoteCount:     s.VoteCount,
		Popularity:    s.Popularity,
		PosterURL:     imageURL(cfg, posterSizeTitle, s.PosterPath),
		BackdropURL:   imageURL(cfg, backdropSize, s.BackdropPath),
		FirstAirDate:  dateFrom(s.FirstAirDate),
		IsActive:      true,
	}
}

func seriesFromDetails(cfg catalog.Config, d catalog.SeriesDetails, trailerKey *string) model.Series {
	series := seriesFromSummary(cfg, d.SeriesSummary)
	series.TrailerKey = trailerKey
	series.NumberOfSeasons = d.NumberOfSeasons
	series.NumberOfEpisodes = d.NumberOfEpisodes
	series.Status = optionalString(d.Status)
	series.LastAirDate = dateFrom(d.LastAirDate)
	return series
}

func seasonTreeFrom(cfg catalog.Config, sd catalog.SeasonDetails) storage.SeasonTree {
	id := sd.ID
	tree := storage.SeasonTree{
		Season: model.Season{
			TmdbID:       &id,
			Number:       sd.SeasonNumber,
			Title:        optionalString(sd.Name),
			Overview:     optionalString(sd.Overview),
			PosterURL:    imageURL(cfg, posterSizeSeason, sd.PosterPath),
			AirDate:      dateFrom(sd.AirDate),
			EpisodeCount: int32(len(sd.Episodes)),
		},
	}

	for _, e := range sd.Episodes {
		episodeID := e.ID
		tree.Episodes = append(tree.Episodes, model.Episode{
			TmdbID:    &episodeID,
			Number:    e.EpisodeNumber,
			Title:     optionalString(e.Name),
			Overview:  optionalString(e.Overview),
			Runtime:   e.Runtime,
			AirDate:   dateFrom(e.AirDate),
			Rating:    roundRating(e.VoteAverage),
			VoteCount: e.VoteCount,
			StillURL:  imageURL(cfg, stillSize, e.StillPath),
			IsActive:  true,
		})
	}

	return tree
}
