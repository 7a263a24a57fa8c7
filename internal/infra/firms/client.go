// Package firms reads active fire detections from the NASA FIRMS area API.
package firms

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/oraclewatch/internal/eventsource"
)

// DefaultBaseURL is the public FIRMS API host.
const DefaultBaseURL = "https://firms.modaps.eosdis.nasa.gov"

var (
	// ErrUnexpectedStatus is returned for non-200 responses.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrMalformedResponse is returned when the body is not a FIRMS CSV, for
	// example the plain-text message sent for an invalid map key.
	ErrMalformedResponse = errors.New("malformed firms response")
)

type client struct {
	httpClient *http.Client
	baseURL    string
	mapKey     string
}

var _ eventsource.HotspotFeed = (*client)(nil)

// NewClient creates a FIRMS feed authenticated with mapKey. An empty baseURL
// uses DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL, mapKey string) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		mapKey:     mapKey,
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// areaURL builds /api/area/csv/{key}/{source}/{west},{south},{east},{north}/{days}.
func (c *client) areaURL(q eventsource.HotspotQuery) string {
	area := strings.Join([]string{
		formatCoord(q.Area.MinLon),
		formatCoord(q.Area.MinLat),
		formatCoord(q.Area.MaxLon),
		formatCoord(q.Area.MaxLat),
	}, ",")

	return fmt.Sprintf("%s/api/area/csv/%s/%s/%s/%d", c.baseURL, c.mapKey, q.Source, area, q.DaysBack)
}

func (c *client) Hotspots(ctx context.Context, q eventsource.HotspotQuery) ([]eventsource.Hotspot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.areaURL(q), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	return parseCSV(res.Body)
}

// parseCSV decodes a FIRMS area CSV. Columns are located by header name so
// both VIIRS (bright_ti4) and MODIS (brightness) products are accepted.
func parseCSV(r io.Reader) ([]eventsource.Hotspot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	if _, ok := cols["latitude"]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(header, ","))
	}
	if _, ok := cols["longitude"]; !ok {
		return nil, fmt.Errorf("%w: missing longitude column", ErrMalformedResponse)
	}

	field := func(row []string, names ...string) string {
		for _, name := range names {
			if i, ok := cols[name]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	var hotspots []eventsource.Hotspot
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		lat, err := strconv.ParseFloat(field(row, "latitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: latitude: %w", ErrMalformedResponse, err)
		}

		lon, err := strconv.ParseFloat(field(row, "longitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: longitude: %w", ErrMalformedResponse, err)
		}

		hotspots = append(hotspots, eventsource.Hotspot{
			Location:   eventsource.Coordinates{Latitude: lat, Longitude: lon},
			AcquiredAt: acquiredAt(field(row, "acq_date"), field(row, "acq_time")),
			Confidence: field(row, "confidence"),
			Brightness: field(row, "bright_ti4", "brightness"),
			Satellite:  field(row, "satellite"),
		})
	}

	return hotspots, nil
}

// acquiredAt combines acq_date (YYYY-MM-DD) and acq_time (HHMM, UTC, leading
// zeros sometimes dropped). It returns the zero time when either is unusable.
func acquiredAt(date, hhmm string) time.Time {
	if date == "" || hhmm == "" || len(hhmm) > 4 {
		return time.Time{}
	}

	hhmm = strings.Repeat("0", 4-len(hhmm)) + hhmm
	t, err := time.Parse("2006-01-02 1504", date+" "+hhmm)
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}
