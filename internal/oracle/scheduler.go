package oracle

import (
	"context"
	"time"

	"github.com/gabapcia/oraclewatch/internal/pkg/x/chflow"
	"github.com/gabapcia/oraclewatch/internal/target"
)

// produceTicks asks for a tick of kind immediately and then at every cadence.
// A tick that is due while the worker is still busy waits for it; ticks missed
// meanwhile are dropped by the ticker.
func (s *service) produceTicks(ctx context.Context, kind target.Kind, cadence time.Duration, ticksCh chan<- target.Kind) {
	if !chflow.Send(ctx, ticksCh, kind) {
		return
	}

	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return
		}

		if !chflow.Send(ctx, ticksCh, kind) {
			return
		}
	}
}

// consumeTicks is the single worker: ticks of every kind run here, one at a time.
func (s *service) consumeTicks(ctx context.Context, ticksCh <-chan target.Kind) {
	for {
		kind, ok := chflow.Receive(ctx, ticksCh)
		if !ok {
			return
		}

		summary, err := s.RunTick(ctx, kind)
		s.onTick(ctx, summary, err)
	}
}
