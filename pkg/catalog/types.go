package catalog

// MediaType selects the provider resource family for a title.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Config carries the provider credentials for one sync batch. It is loaded
// from the active catalog configuration row and passed by value; nothing in
// this package reads ambient state.
type Config struct {
	BaseURL      string
	APIKey       string
	ImageBaseURL string
	Language     string
}

// MovieSummary is the shape returned by the popular listing. Summaries carry
// no genres or videos; those require the detail endpoints.
type MovieSummary struct {
	ID            int32   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int32   `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
}

type SeriesSummary struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int32   `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
}

type Genre struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type MovieDetails struct {
	MovieSummary
	Genres []Genre `json:"genres"`
}

type SeriesDetails struct {
	SeriesSummary
	Genres           []Genre `json:"genres"`
	NumberOfSeasons  int32   `json:"number_of_seasons"`
	NumberOfEpisodes int32   `json:"number_of_episodes"`
	Status           string  `json:"status"`
	LastAirDate      string  `json:"last_air_date"`
}

// Video is one trailer/teaser/clip candidate for a title.
type Video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Language string `json:"iso_639_1"`
}

type SeasonDetails struct {
	ID           int32            `json:"id"`
	SeasonNumber int32            `json:"season_number"`
	Name         string           `json:"name"`
	Overview     string           `json:"overview"`
	AirDate      string           `json:"air_date"`
	PosterPath   *string          `json:"poster_path"`
	Episodes     []EpisodeDetails `json:"episodes"`
}

type EpisodeDetails struct {
	ID            int32   `json:"id"`
	EpisodeNumber int32   `json:"episode_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	Runtime       *int32  `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int32   `json:"vote_count"`
	StillPath     *string `json:"still_path"`
}

type pagedResponse[T any] struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Results      []T `json:"results"`
}

type videosResponse struct {
	Results []Video `json:"results"`
}
