package eventsource

import (
	"context"
	"fmt"
	"iter"

	"github.com/gabapcia/oraclewatch/internal/target"
)

// Router dispatches a scan to the source registered for the target's kind.
type Router struct {
	sources map[target.Kind]EventSource
}

var _ EventSource = (*Router)(nil)

func NewRouter(sources map[target.Kind]EventSource) *Router {
	return &Router{sources: sources}
}

func (r *Router) Scan(ctx context.Context, t target.MonitoredTarget) (iter.Seq[DetectedEvent], error) {
	source, ok := r.sources[t.Kind]
	if !ok || source == nil {
		return nil, fmt.Errorf("%w: no source for kind %q", ErrSourceUnavailable, t.Kind)
	}

	return source.Scan(ctx, t)
}
