package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	mhttp "github.com/streamhaven/catalogd/pkg/http"
)

// ClientInterface is the surface the sync engine consumes.
type ClientInterface interface {
	PopularMovies(ctx context.Context, page int) ([]MovieSummary, error)
	PopularSeries(ctx context.Context, page int) ([]SeriesSummary, error)
	MovieDetails(ctx context.Context, id int32) (*MovieDetails, error)
	SeriesDetails(ctx context.Context, id int32) (*SeriesDetails, error)
	Videos(ctx context.Context, mediaType MediaType, id int32) ([]Video, error)
	SeasonDetails(ctx context.Context, seriesID, number int32) (*SeasonDetails, error)
}

// StatusError reports a non-2xx provider response. The status code is kept
// for diagnostics in the per-item audit trail.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d for %s", e.Code, e.Path)
}

// DecodeError reports a 2xx response whose body did not match the expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("provider response for %s could not be decoded: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Client issues authenticated GET calls against the external catalog provider.
// It performs no retries itself; retry and rate-limit policy belong to the
// injected doer.
type Client struct {
	cfg  Config
	doer mhttp.HTTPClient
}

// ClientOption is a function that can be used to configure a Client
type ClientOption func(*Client)

// WithHTTPClient sets the underlying doer, typically a rate-limited client
func WithHTTPClient(doer mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.doer = doer
	}
}

// New creates a provider client for the given configuration
func New(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		cfg:  cfg,
		doer: mhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PopularMovies fetches one page of the popular movie listing
func (c *Client) PopularMovies(ctx context.Context, page int) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var resp pagedResponse[MovieSummary]
	if err := c.get(ctx, "/movie/popular", params, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// PopularSeries fetches one page of the popular tv listing
func (c *Client) PopularSeries(ctx context.Context, page int) ([]SeriesSummary, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var resp pagedResponse[SeriesSummary]
	if err := c.get(ctx, "/tv/popular", params, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// MovieDetails fetches the full detail for a movie including its genres
func (c *Client) MovieDetails(ctx context.Context, id int32) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "genres")

	details := new(MovieDetails)
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, details); err != nil {
		return nil, err
	}

	return details, nil
}

// SeriesDetails fetches the full detail for a series including its genres and season count
func (c *Client) SeriesDetails(ctx context.Context, id int32) (*SeriesDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "genres")

	details := new(SeriesDetails)
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), params, details); err != nil {
		return nil, err
	}

	return details, nil
}

// Videos lists the trailer candidates for a title
func (c *Client) Videos(ctx context.Context, mediaType MediaType, id int32) ([]Video, error) {
	var resp videosResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/videos", mediaType, id), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// SeasonDetails fetches one season of a series with its episodes
func (c *Client) SeasonDetails(ctx context.Context, seriesID, number int32) (*SeasonDetails, error) {
	details := new(SeasonDetails)
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", seriesID, number), nil, details); err != nil {
		return nil, err
	}

	return details, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u, err := url.Parse(strings.TrimRight(c.cfg.BaseURL, "/") + path)
	if err != nil {
		return fmt.Errorf("failed to build provider url: %w", err)
	}

	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	q.Set("api_key", c.cfg.APIKey)
	if c.cfg.Language != "" {
		q.Set("language", c.cfg.Language)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}

	return nil
}
