package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/oraclewatch/internal/target"
)

// checkpointKey returns the hash mapping target IDs to their last scan time.
func (c *client) checkpointKey() string {
	return c.key("target:lastscan")
}

// SaveLastScan stores the scan time as RFC 3339 with nanoseconds, in UTC.
func (c *client) SaveLastScan(ctx context.Context, targetID string, at time.Time) error {
	return c.conn.HSet(ctx, c.checkpointKey(), targetID, at.UTC().Format(time.RFC3339Nano)).Err()
}

// LoadLastScans fetches the checkpoints of targetIDs with a single HMGET.
// Missing fields are skipped; unparsable values are reported as errors.
func (c *client) LoadLastScans(ctx context.Context, targetIDs []string) (map[string]time.Time, error) {
	scans := make(map[string]time.Time, len(targetIDs))
	if len(targetIDs) == 0 {
		return scans, nil
	}

	values, err := c.conn.HMGet(ctx, c.checkpointKey(), targetIDs...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("parse checkpoint of %s: %w", targetIDs[i], err)
		}
		scans[targetIDs[i]] = at
	}

	return scans, nil
}

var _ target.ScanCheckpointStorage = new(client)
