package eventsource

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"time"

	"github.com/gabapcia/oraclewatch/internal/target"
)

const (
	DefaultDaysBack   = 10
	MaxDaysBack       = 10
	DefaultHalfWidth  = 0.05
	DefaultSourceFeed = "VIIRS_SNPP_NRT"
)

// BoundingBox is a lon/lat rectangle.
type BoundingBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// Around returns the box extending halfWidth degrees on each side of c.
func Around(c Coordinates, halfWidth float64) BoundingBox {
	return BoundingBox{
		MinLon: c.Longitude - halfWidth,
		MinLat: c.Latitude - halfWidth,
		MaxLon: c.Longitude + halfWidth,
		MaxLat: c.Latitude + halfWidth,
	}
}

// HotspotQuery selects satellite detections inside Area over the last DaysBack days.
type HotspotQuery struct {
	Area     BoundingBox
	DaysBack int
	Source   string
}

// Hotspot is one satellite fire detection.
type Hotspot struct {
	Location Coordinates

	// AcquiredAt is zero when the feed row carried no usable timestamp.
	AcquiredAt time.Time

	Confidence string
	Brightness string
	Satellite  string
}

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

// HotspotFeed lists fire detections for an area.
type HotspotFeed interface {
	Hotspots(ctx context.Context, q HotspotQuery) ([]Hotspot, error)
}

// Wildfire detects satellite fire hotspots around a street address.
type Wildfire struct {
	geocoder Geocoder
	feed     HotspotFeed

	daysBack  int
	halfWidth float64
	source    string
}

var _ EventSource = (*Wildfire)(nil)

// WildfireOption configures a Wildfire source.
type WildfireOption func(*Wildfire)

// WithDaysBack sets how many days of detections are queried. Values are
// clamped to [1, MaxDaysBack].
func WithDaysBack(days int) WildfireOption {
	return func(w *Wildfire) {
		w.daysBack = min(max(days, 1), MaxDaysBack)
	}
}

// WithHalfWidth sets the half-width, in degrees, of the box searched around
// the geocoded address. Non-positive values keep the default.
func WithHalfWidth(deg float64) WildfireOption {
	return func(w *Wildfire) {
		if deg > 0 {
			w.halfWidth = deg
		}
	}
}

// WithSourceFeed selects the satellite product, e.g. "MODIS_NRT".
func WithSourceFeed(source string) WildfireOption {
	return func(w *Wildfire) {
		if source != "" {
			w.source = source
		}
	}
}

func NewWildfire(geocoder Geocoder, feed HotspotFeed, opts ...WildfireOption) *Wildfire {
	w := &Wildfire{
		geocoder:  geocoder,
		feed:      feed,
		daysBack:  DefaultDaysBack,
		halfWidth: DefaultHalfWidth,
		source:    DefaultSourceFeed,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Scan geocodes the target address and reports every hotspot found in the
// surrounding box as an occurred event.
func (w *Wildfire) Scan(ctx context.Context, t target.MonitoredTarget) (iter.Seq[DetectedEvent], error) {
	if t.Kind != target.KindWildfire {
		return nil, fmt.Errorf("%w: wildfire source cannot scan %s target", ErrSourceUnavailable, t.Kind)
	}

	center, err := w.geocoder.Geocode(ctx, t.Descriptor)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode %q: %w", ErrSourceUnavailable, t.Descriptor, err)
	}

	hotspots, err := w.feed.Hotspots(ctx, HotspotQuery{
		Area:     Around(center, w.halfWidth),
		DaysBack: w.daysBack,
		Source:   w.source,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: hotspots: %w", ErrSourceUnavailable, err)
	}

	if len(hotspots) == 0 {
		return empty, nil
	}

	events := make([]DetectedEvent, 0, len(hotspots))
	for _, h := range hotspots {
		location := h.Location
		events = append(events, DetectedEvent{
			SourceTargetID: t.ID,
			Occurred:       true,
			OccurredAt:     h.AcquiredAt,
			Confidence:     h.Confidence,
			Location:       &location,
			Attributes: map[string]string{
				"brightness": h.Brightness,
				"satellite":  h.Satellite,
				"latitude":   strconv.FormatFloat(h.Location.Latitude, 'f', -1, 64),
				"longitude":  strconv.FormatFloat(h.Location.Longitude, 'f', -1, 64),
			},
		})
	}

	return slices.Values(events), nil
}
