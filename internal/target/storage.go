package target

import (
	"context"
	"time"
)

// TargetStorage persists the set of monitored targets.
type TargetStorage interface {
	// SaveTarget adds t. Saving an existing target is a no-op.
	SaveTarget(ctx context.Context, t MonitoredTarget) error

	// DeleteTarget removes t. It returns ErrTargetNotFound if t is not stored.
	DeleteTarget(ctx context.Context, t MonitoredTarget) error

	// ListTargets returns the targets of the given kind in a stable order.
	ListTargets(ctx context.Context, kind Kind) ([]MonitoredTarget, error)
}

// ScanCheckpointStorage records when each target was last scanned.
type ScanCheckpointStorage interface {
	SaveLastScan(ctx context.Context, targetID string, at time.Time) error

	// LoadLastScans returns the last scan time of every given target that has
	// one. Targets never scanned are absent from the map.
	LoadLastScans(ctx context.Context, targetIDs []string) (map[string]time.Time, error)
}
