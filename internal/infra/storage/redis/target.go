package redis

import (
	"context"
	"slices"

	"github.com/gabapcia/oraclewatch/internal/target"
)

// targetStorageKey returns the set holding the descriptors of one kind.
func (c *client) targetStorageKey(kind target.Kind) string {
	return c.key("target:storage:%s", kind)
}

// SaveTarget adds the target's descriptor to the set of its kind.
func (c *client) SaveTarget(ctx context.Context, t target.MonitoredTarget) error {
	return c.conn.SAdd(ctx, c.targetStorageKey(t.Kind), t.Descriptor).Err()
}

// DeleteTarget removes the target's descriptor from the set of its kind.
// It returns target.ErrTargetNotFound when the descriptor was not a member.
func (c *client) DeleteTarget(ctx context.Context, t target.MonitoredTarget) error {
	removed, err := c.conn.SRem(ctx, c.targetStorageKey(t.Kind), t.Descriptor).Result()
	if err != nil {
		return err
	}

	if removed == 0 {
		return target.ErrTargetNotFound
	}

	return nil
}

// ListTargets returns every target of kind sorted by descriptor. Redis sets
// are unordered, so sorting keeps scan order stable across ticks.
func (c *client) ListTargets(ctx context.Context, kind target.Kind) ([]target.MonitoredTarget, error) {
	descriptors, err := c.conn.SMembers(ctx, c.targetStorageKey(kind)).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(descriptors)

	targets := make([]target.MonitoredTarget, len(descriptors))
	for i, d := range descriptors {
		targets[i] = target.MonitoredTarget{
			ID:         target.MakeID(kind, d),
			Kind:       kind,
			Descriptor: d,
		}
	}

	return targets, nil
}

var _ target.TargetStorage = new(client)
