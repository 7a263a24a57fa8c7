package eventsource

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"time"

	"github.com/gabapcia/oraclewatch/internal/target"
)

// DefaultDelayCutoff is how late an arrival must be to count as delayed.
const DefaultDelayCutoff = 15 * time.Minute

// FlightRecord is the latest known schedule of a flight. Nil times are unknown.
type FlightRecord struct {
	Ident       string
	ScheduledIn *time.Time
	ActualIn    *time.Time
}

// FlightStatusFeed looks up flights by identifier.
type FlightStatusFeed interface {
	// LatestFlight returns the most recent record for ident. ok is false when
	// the feed knows no flight with that identifier.
	LatestFlight(ctx context.Context, ident string) (rec FlightRecord, ok bool, err error)
}

// Flight reports whether a flight arrived later than a cutoff.
type Flight struct {
	feed   FlightStatusFeed
	cutoff time.Duration
}

var _ EventSource = (*Flight)(nil)

// NewFlight creates a Flight source. A non-positive cutoff uses DefaultDelayCutoff.
func NewFlight(feed FlightStatusFeed, cutoff time.Duration) *Flight {
	if cutoff <= 0 {
		cutoff = DefaultDelayCutoff
	}

	return &Flight{feed: feed, cutoff: cutoff}
}

// Scan emits a single event once the flight has both a scheduled and an
// actual arrival time. Occurred is true when the delay exceeds the cutoff;
// OccurredAt is the actual arrival. Flights still in the air yield nothing.
func (f *Flight) Scan(ctx context.Context, t target.MonitoredTarget) (iter.Seq[DetectedEvent], error) {
	if t.Kind != target.KindFlight {
		return nil, fmt.Errorf("%w: flight source cannot scan %s target", ErrSourceUnavailable, t.Kind)
	}

	rec, ok, err := f.feed.LatestFlight(ctx, t.Descriptor)
	if err != nil {
		return nil, fmt.Errorf("%w: flight %s: %w", ErrSourceUnavailable, t.Descriptor, err)
	}

	if !ok || rec.ScheduledIn == nil || rec.ActualIn == nil {
		return empty, nil
	}

	delay := rec.ActualIn.Sub(*rec.ScheduledIn)
	event := DetectedEvent{
		SourceTargetID: t.ID,
		Occurred:       delay > f.cutoff,
		OccurredAt:     *rec.ActualIn,
		Attributes: map[string]string{
			"ident":         t.Descriptor,
			"scheduled_in":  rec.ScheduledIn.UTC().Format(time.RFC3339),
			"actual_in":     rec.ActualIn.UTC().Format(time.RFC3339),
			"delay_minutes": strconv.FormatFloat(delay.Minutes(), 'f', 1, 64),
		},
	}

	return func(yield func(DetectedEvent) bool) {
		yield(event)
	}, nil
}
