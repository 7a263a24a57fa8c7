// Package oracle schedules periodic scans of monitored targets and reports
// every detected event to the ledger.
//
// A single worker runs ticks one at a time, so submissions from the shared
// signer never race for a sequence number. Each kind has its own cadence.
package oracle

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/oraclewatch/internal/eventsource"
	"github.com/gabapcia/oraclewatch/internal/pkg/logger"
	"github.com/gabapcia/oraclewatch/internal/target"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	DefaultReportCap        = 5
	DefaultInterTargetDelay = 2 * time.Second
	DefaultWildfireCadence  = 5 * time.Minute
	DefaultFlightCadence    = 30 * time.Second
)

// Service runs the scan-and-report schedule.
type Service interface {
	// Start launches the scheduler. One tick per kind runs immediately, then
	// each kind repeats at its cadence until Close.
	//
	// Returns ErrServiceAlreadyStarted if the scheduler is already running.
	Start(ctx context.Context) error

	// Close stops the scheduler and waits for the running tick to unwind.
	// It is safe to call Close even if the service was never started.
	Close()

	// RunTick scans every target of kind once and reports what it finds.
	RunTick(ctx context.Context, kind target.Kind) (TickSummary, error)
}

type closeFunc func()

type (
	skipHandler       func(ctx context.Context, t target.MonitoredTarget, err error)
	unreportedHandler func(ctx context.Context, t target.MonitoredTarget, count int)
	tickHandler       func(ctx context.Context, summary TickSummary, err error)
)

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	targets  target.Service
	source   eventsource.EventSource
	reporter Reporter
	notifier ReportNotifier

	cadences         map[target.Kind]time.Duration
	reportCap        int
	interTargetDelay time.Duration
	now              func() time.Time

	onSkip       skipHandler
	onUnreported unreportedHandler
	onTick       tickHandler

	tracer  trace.Tracer
	metrics metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		ticksCh = make(chan target.Kind)
		done    = make(chan struct{})
		wg      sync.WaitGroup
	)

	for kind, cadence := range s.cadences {
		if cadence <= 0 {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.produceTicks(ctx, kind, cadence, ticksCh)
		}()
	}

	go func() {
		defer close(done)
		s.consumeTicks(ctx, ticksCh)
	}()

	s.closeFunc = func() {
		cancel()
		wg.Wait()
		<-done
	}
	s.isStarted = true

	logger.Info(ctx, "oracle scheduler started", "cadences", s.cadences)
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

type config struct {
	notifier         ReportNotifier
	cadences         map[target.Kind]time.Duration
	reportCap        int
	interTargetDelay time.Duration
	now              func() time.Time

	onSkip       skipHandler
	onUnreported unreportedHandler
	onTick       tickHandler

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

type Option func(*config)

// New creates the orchestrator. targets supplies what to scan, source scans
// it and reporter commits each detected event.
func New(targets target.Service, source eventsource.EventSource, reporter Reporter, opts ...Option) *service {
	cfg := config{
		notifier: nopNotifier{},
		cadences: map[target.Kind]time.Duration{
			target.KindWildfire: DefaultWildfireCadence,
			target.KindFlight:   DefaultFlightCadence,
		},
		reportCap:        DefaultReportCap,
		interTargetDelay: DefaultInterTargetDelay,
		now:              time.Now,
		onSkip:           defaultOnSkip,
		onUnreported:     defaultOnUnreported,
		onTick:           defaultOnTick,
		tracerProvider:   otel.GetTracerProvider(),
		meterProvider:    otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		targets:          targets,
		source:           source,
		reporter:         reporter,
		notifier:         cfg.notifier,
		cadences:         cfg.cadences,
		reportCap:        cfg.reportCap,
		interTargetDelay: cfg.interTargetDelay,
		now:              cfg.now,
		onSkip:           cfg.onSkip,
		onUnreported:     cfg.onUnreported,
		onTick:           cfg.onTick,
		tracer:           cfg.tracerProvider.Tracer(instrumentationName),
		metrics:          newMetrics(cfg.meterProvider),
	}
}

func defaultOnSkip(ctx context.Context, t target.MonitoredTarget, err error) {
	logger.Warn(ctx, "target skipped for this tick",
		"target.kind", t.Kind,
		"error", err,
	)
}

func defaultOnUnreported(ctx context.Context, t target.MonitoredTarget, count int) {
	logger.Warn(ctx, "events not reported: per-target cap reached",
		"events.unreported", count,
	)
}

func defaultOnTick(ctx context.Context, summary TickSummary, err error) {
	if err != nil {
		logger.Error(ctx, "tick aborted",
			"tick.id", summary.TickID,
			"tick.kind", summary.Kind,
			"error", err,
		)
		return
	}

	logger.Info(ctx, "tick completed",
		"tick.id", summary.TickID,
		"tick.kind", summary.Kind,
		"targets.scanned", summary.TargetsScanned,
		"targets.skipped", summary.TargetsSkipped,
		"events.detected", summary.EventsDetected,
		"events.reported", summary.EventsReported,
		"events.unreported", summary.EventsUnreported,
		"tick.duration", summary.FinishedAt.Sub(summary.StartedAt),
	)
}

// WithNotifier publishes every report outcome to n.
func WithNotifier(n ReportNotifier) Option {
	return func(c *config) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithCadence sets how often targets of kind are scanned. A non-positive
// cadence disables the scheduled scan of that kind.
func WithCadence(kind target.Kind, d time.Duration) Option {
	return func(c *config) {
		c.cadences[kind] = d
	}
}

// WithReportCap bounds how many events of a single target are reported per tick.
func WithReportCap(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.reportCap = n
		}
	}
}

// WithInterTargetDelay sets the pause between consecutive targets of a tick.
func WithInterTargetDelay(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.interTargetDelay = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithSkipHandler replaces the default handler called once for every target
// whose scan failed.
func WithSkipHandler(f skipHandler) Option {
	return func(c *config) {
		c.onSkip = f
	}
}

// WithUnreportedHandler replaces the default handler called when a target
// produced more events than the report cap.
func WithUnreportedHandler(f unreportedHandler) Option {
	return func(c *config) {
		c.onUnreported = f
	}
}

// WithTickHandler replaces the default handler called after every scheduled tick.
func WithTickHandler(f tickHandler) Option {
	return func(c *config) {
		c.onTick = f
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}
