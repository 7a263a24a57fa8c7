package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/oraclewatch/internal/contractcall"
	"github.com/gabapcia/oraclewatch/internal/eventsource"
	"github.com/gabapcia/oraclewatch/internal/pkg/logger"
	"github.com/gabapcia/oraclewatch/internal/pkg/x/chflow"
	"github.com/gabapcia/oraclewatch/internal/target"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TickSummary reports what a single tick did.
type TickSummary struct {
	TickID     string
	Kind       target.Kind
	StartedAt  time.Time
	FinishedAt time.Time

	TargetsScanned int
	TargetsSkipped int

	EventsDetected   int
	EventsReported   int
	EventsUnreported int

	Outcomes map[ReportStatus]int
}

func newTickSummary(kind target.Kind, startedAt time.Time) TickSummary {
	return TickSummary{
		TickID:    uuid.Must(uuid.NewV7()).String(),
		Kind:      kind,
		StartedAt: startedAt,
		Outcomes:  make(map[ReportStatus]int),
	}
}

// RunTick loads the targets of kind and processes them in order. A failed
// scan skips only its target; a failed report affects only its event. The
// returned error is non-nil only when the targets cannot be loaded or ctx
// ends the tick early.
func (s *service) RunTick(ctx context.Context, kind target.Kind) (summary TickSummary, err error) {
	summary = newTickSummary(kind, s.now())

	ctx = logger.With(ctx, "tick.id", summary.TickID, "tick.kind", kind)
	ctx, span := s.tracer.Start(ctx, "oracle.tick", trace.WithAttributes(
		attribute.String("tick.id", summary.TickID),
		attribute.String("tick.kind", string(kind)),
	))
	defer func() {
		summary.FinishedAt = s.now()
		span.SetAttributes(
			attribute.Int("targets.scanned", summary.TargetsScanned),
			attribute.Int("targets.skipped", summary.TargetsSkipped),
			attribute.Int("events.detected", summary.EventsDetected),
			attribute.Int("events.reported", summary.EventsReported),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	targets, err := s.targets.List(ctx, kind)
	if err != nil {
		return summary, fmt.Errorf("load %s targets: %w", kind, err)
	}

	for i, t := range targets {
		if i > 0 && !chflow.Sleep(ctx, s.interTargetDelay) {
			return summary, ctx.Err()
		}

		if err := ctx.Err(); err != nil {
			return summary, err
		}

		s.processTarget(logger.With(ctx, "target.id", t.ID), t, &summary)
	}

	return summary, nil
}

// processTarget scans t and reports up to reportCap of its events.
func (s *service) processTarget(ctx context.Context, t target.MonitoredTarget, summary *TickSummary) {
	events, err := s.source.Scan(ctx, t)
	if err != nil {
		summary.TargetsSkipped++
		s.metrics.recordSkipped(ctx, t.Kind)
		s.onSkip(ctx, t, err)
		return
	}
	summary.TargetsScanned++

	var reported, unreported int
	for event := range events {
		summary.EventsDetected++
		s.metrics.recordDetected(ctx, t.Kind)

		if reported >= s.reportCap {
			unreported++
			continue
		}
		reported++

		s.report(ctx, t, event, summary)
	}

	summary.EventsReported += reported
	summary.EventsUnreported += unreported
	if unreported > 0 {
		s.onUnreported(ctx, t, unreported)
	}

	if err := s.targets.MarkScanned(ctx, t, s.now()); err != nil {
		logger.Warn(ctx, "failed to record scan checkpoint", "error", err)
	}
}

func (s *service) report(ctx context.Context, t target.MonitoredTarget, event eventsource.DetectedEvent, summary *TickSummary) {
	outcome := s.reporter.Report(ctx, contractcall.NewParams(event.Occurred, event.OccurredAt))
	outcome.ReportID = uuid.Must(uuid.NewV7()).String()
	outcome.TargetID = t.ID
	outcome.Event = event
	outcome.ReportedAt = s.now()

	summary.Outcomes[outcome.Status]++
	s.metrics.recordReport(ctx, t.Kind, outcome.Status)
	logOutcome(ctx, outcome)

	if err := s.notifier.NotifyReport(ctx, outcome); err != nil {
		logger.Warn(ctx, "failed to publish report outcome",
			"report.id", outcome.ReportID,
			"error", err,
		)
	}
}

func logOutcome(ctx context.Context, o Outcome) {
	kv := []any{
		"report.id", o.ReportID,
		"report.status", string(o.Status),
		"event.occurred", o.Params.EventOccurred,
	}
	if o.Params.EventTime != nil {
		kv = append(kv, "event.time", *o.Params.EventTime)
	}
	if tx := o.Transaction; tx != nil {
		kv = append(kv, "tx.hash", tx.Hash, "tx.polls", tx.Polls)
	}

	switch o.Status {
	case ReportSuccess:
		if rv := o.Transaction.ReturnValue; rv != nil {
			kv = append(kv, "tx.return_value", contractcall.Decode(*rv))
		}
		logger.Info(ctx, "event reported", kv...)
	case ReportTimedOut:
		logger.Warn(ctx, "event report not confirmed", append(kv, "error", o.Err)...)
	default:
		logger.Error(ctx, "event report failed", append(kv, "error", o.Err)...)
	}
}
