// Package nominatim geocodes street addresses with the OpenStreetMap
// Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabapcia/oraclewatch/internal/eventsource"
	"github.com/gabapcia/oraclewatch/internal/pkg/logger"
	"github.com/gabapcia/oraclewatch/internal/pkg/resilience/retry"

	lru "github.com/hashicorp/golang-lru"
)

const (
	// DefaultBaseURL is the public Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	defaultCacheSize = 256
)

var (
	// ErrNoResults is returned when the address matches no place.
	ErrNoResults = errors.New("address not found")

	// ErrUnexpectedStatus is returned for non-200 responses.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// place is one entry of the /search response; coordinates are strings.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) toCoordinates() (eventsource.Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return eventsource.Coordinates{}, fmt.Errorf("invalid latitude %q: %w", p.Lat, err)
	}

	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return eventsource.Coordinates{}, fmt.Errorf("invalid longitude %q: %w", p.Lon, err)
	}

	return eventsource.Coordinates{Latitude: lat, Longitude: lon}, nil
}

type client struct {
	httpClient *http.Client
	baseURL    string
	retry      retry.Retry
	cache      *lru.Cache
}

var _ eventsource.Geocoder = (*client)(nil)

type config struct {
	baseURL   string
	retry     retry.Retry
	cacheSize int
}

type Option func(*config)

// NewClient creates a geocoder. Resolved addresses are cached for the life
// of the process; failed lookups are not.
func NewClient(httpClient *http.Client, opts ...Option) (*client, error) {
	cfg := config{
		baseURL:   DefaultBaseURL,
		retry:     retry.New(retry.WithRetryIf(isTransient)),
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New(cfg.cacheSize)
	if err != nil {
		return nil, err
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		retry:      cfg.retry,
		cache:      cache,
	}, nil
}

// isTransient reports whether a failed lookup is worth another attempt.
func isTransient(err error) bool {
	return !errors.Is(err, ErrNoResults) && !errors.Is(err, context.Canceled)
}

func (c *client) Geocode(ctx context.Context, address string) (eventsource.Coordinates, error) {
	key := strings.ToLower(strings.TrimSpace(address))
	if v, ok := c.cache.Get(key); ok {
		return v.(eventsource.Coordinates), nil
	}

	var coords eventsource.Coordinates
	err := c.retry.Execute(ctx, func() error {
		var err error
		coords, err = c.search(ctx, address)
		return err
	})
	if err != nil {
		return eventsource.Coordinates{}, err
	}

	c.cache.Add(key, coords)
	logger.Debug(ctx, "address geocoded",
		"geocode.address", address,
		"geocode.lat", coords.Latitude,
		"geocode.lon", coords.Longitude,
	)

	return coords, nil
}

func (c *client) search(ctx context.Context, address string) (eventsource.Coordinates, error) {
	query := url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return eventsource.Coordinates{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return eventsource.Coordinates{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return eventsource.Coordinates{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(res.Body).Decode(&places); err != nil {
		return eventsource.Coordinates{}, fmt.Errorf("decode search results: %w", err)
	}

	if len(places) == 0 {
		return eventsource.Coordinates{}, fmt.Errorf("%w: %q", ErrNoResults, address)
	}

	return places[0].toCoordinates()
}

// WithBaseURL points the client at a self-hosted Nominatim instance.
func WithBaseURL(u string) Option {
	return func(c *config) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithRetry replaces the retry policy applied to each lookup.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCacheSize sets how many resolved addresses are kept.
func WithCacheSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}
