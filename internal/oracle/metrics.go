package oracle

import (
	"context"

	"github.com/gabapcia/oraclewatch/internal/target"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/oraclewatch/internal/oracle"

type metrics struct {
	eventsDetected metric.Int64Counter
	reports        metric.Int64Counter
	targetsSkipped metric.Int64Counter
}

func newMetrics(mp metric.MeterProvider) metrics {
	meter := mp.Meter(instrumentationName)
	fallback := noop.Meter{}

	detected, err := meter.Int64Counter("oracle.events.detected",
		metric.WithDescription("Events detected by scans"),
	)
	if err != nil {
		detected, _ = fallback.Int64Counter("oracle.events.detected")
	}

	reports, err := meter.Int64Counter("oracle.reports",
		metric.WithDescription("Report attempts by outcome status"),
	)
	if err != nil {
		reports, _ = fallback.Int64Counter("oracle.reports")
	}

	skipped, err := meter.Int64Counter("oracle.targets.skipped",
		metric.WithDescription("Targets whose scan failed"),
	)
	if err != nil {
		skipped, _ = fallback.Int64Counter("oracle.targets.skipped")
	}

	return metrics{
		eventsDetected: detected,
		reports:        reports,
		targetsSkipped: skipped,
	}
}

func kindAttr(kind target.Kind) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("kind", string(kind)))
}

func (m metrics) recordDetected(ctx context.Context, kind target.Kind) {
	m.eventsDetected.Add(ctx, 1, kindAttr(kind))
}

func (m metrics) recordSkipped(ctx context.Context, kind target.Kind) {
	m.targetsSkipped.Add(ctx, 1, kindAttr(kind))
}

func (m metrics) recordReport(ctx context.Context, kind target.Kind, status ReportStatus) {
	m.reports.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("status", string(status)),
	))
}
