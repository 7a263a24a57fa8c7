package cli

import (
	"context"
	"os"

	"github.com/gabapcia/oraclewatch/internal/oracle"
	"github.com/gabapcia/oraclewatch/internal/target"

	"github.com/urfave/cli/v3"
)

// ReporterFactory builds the Reporter used by the manual report command.
// unbounded asks for a reporter that waits for confirmation without a
// deadline and submits transactions without an expiration.
type ReporterFactory func(unbounded bool) (oracle.Reporter, error)

// Run initializes and executes the oraclewatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the scan-and-report scheduler.
//   - `tick`: Runs a single tick for one kind.
//   - `report`: Invokes the contract once with explicit parameters.
//   - `targets`: Adds, removes and lists monitored targets.
func Run(ctx context.Context, ts target.Service, svc oracle.Service, reporters ReporterFactory) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "oraclewatch",
		Description:           "Command-line interface for running the oraclewatch scheduler and managing its targets.",
		Usage:                 "oraclewatch [command] [flags]",
		Commands: []*cli.Command{
			startSchedulerCommand(svc),
			runTickCommand(svc),
			reportCommand(reporters),
			targetsCommand(ts),
		},
	}

	return app.Run(ctx, os.Args)
}
