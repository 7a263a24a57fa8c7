package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/oraclewatch/internal/config"
	"github.com/gabapcia/oraclewatch/internal/eventsource"
	"github.com/gabapcia/oraclewatch/internal/handlers/cli"
	"github.com/gabapcia/oraclewatch/internal/infra/aeroapi"
	"github.com/gabapcia/oraclewatch/internal/infra/firms"
	"github.com/gabapcia/oraclewatch/internal/infra/ledger/soroban"
	"github.com/gabapcia/oraclewatch/internal/infra/nominatim"
	"github.com/gabapcia/oraclewatch/internal/infra/notify/kafka"
	"github.com/gabapcia/oraclewatch/internal/infra/storage/file"
	"github.com/gabapcia/oraclewatch/internal/infra/storage/redis"
	"github.com/gabapcia/oraclewatch/internal/ledger"
	"github.com/gabapcia/oraclewatch/internal/oracle"
	"github.com/gabapcia/oraclewatch/internal/pkg/logger"
	"github.com/gabapcia/oraclewatch/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/oraclewatch/internal/pkg/transport/http"
	"github.com/gabapcia/oraclewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/oraclewatch/internal/target"
)

const shutdownTimeout = 10 * time.Second

// newLedgerRPC builds the Soroban JSON-RPC client. Transport retries are
// disabled: each ledger.Gateway call is sent exactly once.
func newLedgerRPC(url string) jsonrpc.Client {
	return jsonrpc.NewClient(
		httptransport.NewClient(
			httptransport.WithTimeout(30*time.Second),
			httptransport.WithRetryMax(0),
		).StandardClient(),
		url,
	)
}

type storage interface {
	target.TargetStorage
	target.ScanCheckpointStorage
}

func openStorage(ctx context.Context, cfg config.Storage) (storage, func() error, error) {
	if cfg.UseRedis() {
		c, err := redis.NewClient(ctx, cfg.RedisAddr,
			redis.WithCredentials(cfg.RedisUsername, cfg.RedisPassword),
			redis.WithDB(cfg.RedisDB),
			redis.WithNamespace(cfg.RedisPrefix),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return c, c.Close, nil
	}

	s, err := file.Open(cfg.TargetsFile)
	if err != nil {
		return nil, nil, err
	}
	return s, func() error { return nil }, nil
}

func newEventSource(cfg config.Config) (eventsource.EventSource, error) {
	apiClient := httptransport.NewClient().StandardClient()

	geocoder, err := nominatim.NewClient(
		httptransport.NewClient(httptransport.WithUserAgent(cfg.Nominatim.UserAgent)).StandardClient(),
		nominatim.WithBaseURL(cfg.Nominatim.BaseURL),
	)
	if err != nil {
		return nil, err
	}

	wildfire := eventsource.NewWildfire(
		geocoder,
		firms.NewClient(apiClient, cfg.FIRMS.BaseURL, cfg.FIRMS.MapKey),
		eventsource.WithDaysBack(cfg.FIRMS.DaysBack),
		eventsource.WithHalfWidth(cfg.FIRMS.HalfWidth),
		eventsource.WithSourceFeed(cfg.FIRMS.Source),
	)

	flight := eventsource.NewFlight(
		aeroapi.NewClient(apiClient, cfg.AeroAPI.BaseURL, cfg.AeroAPI.APIKey),
		cfg.AeroAPI.DelayCutoff,
	)

	return eventsource.NewRouter(map[target.Kind]eventsource.EventSource{
		target.KindWildfire: wildfire,
		target.KindFlight:   flight,
	}), nil
}

// reporterFactory builds reporters sharing one gateway and signer. The
// unbounded variant never expires its transactions and polls without deadline.
func reporterFactory(cfg config.Stellar, poll config.Poll, gateway ledger.Gateway, signer ledger.Signer) cli.ReporterFactory {
	return func(unbounded bool) (oracle.Reporter, error) {
		opts := []ledger.SubmitterOption{
			ledger.WithMethod(cfg.Method),
			ledger.WithBaseFee(cfg.BaseFee),
			ledger.WithTimeout(cfg.TxTimeout),
		}
		if !cfg.Simulate {
			opts = append(opts, ledger.WithoutSimulation())
		}

		poller := ledger.NewPoller(gateway)
		if unbounded {
			submitter := ledger.NewSubmitter(gateway, cfg.NetworkPassphrase, append(opts, ledger.WithInfiniteTimeout())...)
			return oracle.NewManualReporter(submitter, poller, signer, cfg.Contract, ledger.ManualPolicy(poll.Interval))
		}

		submitter := ledger.NewSubmitter(gateway, cfg.NetworkPassphrase, opts...)
		return oracle.NewReporter(submitter, poller, signer, cfg.Contract, ledger.Policy{
			Interval: poll.Interval,
			Deadline: poll.Deadline,
		})
	}
}

func run(ctx context.Context, cfg config.Config) error {
	store, closeStore, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	targets := target.NewService(store, store)

	source, err := newEventSource(cfg)
	if err != nil {
		return err
	}

	signer, err := ledger.NewKeypairSigner(cfg.Stellar.Seed)
	if err != nil {
		return err
	}

	reporters := reporterFactory(cfg.Stellar, cfg.Poll, soroban.NewClient(newLedgerRPC(cfg.Stellar.RPCURL)), signer)

	reporter, err := reporters(false)
	if err != nil {
		return err
	}

	opts := []oracle.Option{
		oracle.WithCadence(target.KindWildfire, cfg.Schedule.WildfireCadence),
		oracle.WithCadence(target.KindFlight, cfg.Schedule.FlightCadence),
		oracle.WithReportCap(cfg.Schedule.ReportCap),
		oracle.WithInterTargetDelay(cfg.Schedule.InterTargetDelay),
	}

	if cfg.Kafka.Enabled() {
		notifier := kafka.NewNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer notifier.Close()

		opts = append(opts, oracle.WithNotifier(notifier))
	}

	svc := oracle.New(targets, source, reporter, opts...)

	logger.Debug(ctx, "oraclewatch configured",
		"signer", signer.Address(),
		"contract", cfg.Stellar.Contract,
		"rpc", cfg.Stellar.RPCURL,
		"storage.redis", cfg.Storage.UseRedis(),
		"kafka", cfg.Kafka.Enabled(),
	)

	return cli.Run(ctx, targets, svc, reporters)
}

// start initializes telemetry and logging, runs the CLI and returns the
// process exit code.
func start() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 1
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "init telemetry: %v\n", err)
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithServiceName(cfg.ServiceName)); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "oraclewatch exited with error", "error", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(start())
}
