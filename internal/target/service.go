// Package target manages the registry of monitored targets and their scan
// checkpoints.
package target

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/oraclewatch/internal/pkg/logger"
)

// Service registers, unregisters and lists monitored targets.
type Service interface {
	// Add validates and registers a target. It returns the stored target.
	Add(ctx context.Context, kind Kind, descriptor string) (MonitoredTarget, error)

	// Remove unregisters a target.
	Remove(ctx context.Context, kind Kind, descriptor string) error

	// List returns the targets of kind with their LastScanAt populated. An
	// empty kind lists every kind.
	List(ctx context.Context, kind Kind) ([]MonitoredTarget, error)

	// MarkScanned records that the target was scanned at the given time.
	MarkScanned(ctx context.Context, t MonitoredTarget, at time.Time) error
}

type service struct {
	targets     TargetStorage
	checkpoints ScanCheckpointStorage
}

var _ Service = (*service)(nil)

// NewService creates a target Service. checkpoints may be nil, in which case
// scan times are neither loaded nor recorded.
func NewService(targets TargetStorage, checkpoints ScanCheckpointStorage) *service {
	return &service{
		targets:     targets,
		checkpoints: checkpoints,
	}
}

func (s *service) Add(ctx context.Context, kind Kind, descriptor string) (MonitoredTarget, error) {
	t, err := New(kind, descriptor)
	if err != nil {
		return MonitoredTarget{}, err
	}

	if err := s.targets.SaveTarget(ctx, t); err != nil {
		return MonitoredTarget{}, err
	}

	return t, nil
}

func (s *service) Remove(ctx context.Context, kind Kind, descriptor string) error {
	t, err := New(kind, descriptor)
	if err != nil {
		return err
	}

	return s.targets.DeleteTarget(ctx, t)
}

func (s *service) List(ctx context.Context, kind Kind) ([]MonitoredTarget, error) {
	kinds := []Kind{kind}
	if kind == "" {
		kinds = Kinds
	}

	var all []MonitoredTarget
	for _, k := range kinds {
		stored, err := s.targets.ListTargets(ctx, k)
		if err != nil {
			return nil, err
		}

		for _, t := range stored {
			t, err := Normalize(t)
			if err != nil {
				logger.Warn(ctx, "ignoring invalid stored target",
					"target.id", t.ID,
					"error", err,
				)
				continue
			}
			all = append(all, t)
		}
	}

	if s.checkpoints == nil || len(all) == 0 {
		return all, nil
	}

	ids := make([]string, len(all))
	for i, t := range all {
		ids[i] = t.ID
	}

	scans, err := s.checkpoints.LoadLastScans(ctx, ids)
	if err != nil {
		return nil, errors.Join(errors.New("load scan checkpoints"), err)
	}

	for i := range all {
		if at, ok := scans[all[i].ID]; ok {
			all[i].LastScanAt = &at
		}
	}

	return all, nil
}

func (s *service) MarkScanned(ctx context.Context, t MonitoredTarget, at time.Time) error {
	if s.checkpoints == nil {
		return nil
	}

	return s.checkpoints.SaveLastScan(ctx, t.ID, at)
}
