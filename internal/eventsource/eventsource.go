// Package eventsource turns monitored targets into detected real-world events.
//
// Each EventSource queries one upstream signal (satellite hotspots, flight
// arrivals) and reports what it found as a finite sequence of DetectedEvent
// values. Sources hold no state between scans.
package eventsource

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/gabapcia/oraclewatch/internal/target"
)

// ErrSourceUnavailable wraps any upstream I/O or parse failure during a scan.
// The orchestrator skips the target for the current tick when it sees it.
var ErrSourceUnavailable = errors.New("event source unavailable")

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// DetectedEvent is one observation worth reporting on-chain.
type DetectedEvent struct {
	SourceTargetID string
	Occurred       bool

	// OccurredAt is the zero time when the source cannot tell when the event happened.
	OccurredAt time.Time

	Confidence string
	Location   *Coordinates
	Attributes map[string]string
}

// EventSource scans a single target.
type EventSource interface {
	// Scan returns the events detected for t. An empty sequence means nothing
	// was detected. Errors wrap ErrSourceUnavailable.
	Scan(ctx context.Context, t target.MonitoredTarget) (iter.Seq[DetectedEvent], error)
}

// empty is the sequence returned when nothing was detected.
func empty(func(DetectedEvent) bool) {}
