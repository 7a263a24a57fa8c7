package cli

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/oraclewatch/internal/oracle"
	"github.com/gabapcia/oraclewatch/internal/target"

	"github.com/urfave/cli/v3"
)

// startSchedulerCommand returns a CLI command that runs the oracle scheduler:
// one tick per kind immediately, then each kind at its cadence.
//
// Usage example:
//
//	oraclewatch start
//
// The process runs until it receives SIGINT or SIGTERM, or ctx is canceled.
func startSchedulerCommand(svc oracle.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the oracle scheduler that scans targets and reports detected events on-chain.",
		Usage:       "Runs the scheduler. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}

			return nil
		},
	}
}

// runTickCommand returns a CLI command that runs a single tick and prints its
// summary as JSON.
//
// Usage example:
//
//	oraclewatch tick --kind flight
func runTickCommand(svc oracle.Service) *cli.Command {
	return &cli.Command{
		Name:        "tick",
		Description: "Scans every target of one kind once and reports what it finds.",
		Usage:       "Runs one tick and prints its summary.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "kind",
				Usage:    "Target kind (wildfire or flight)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			kind, err := target.ParseKind(c.String("kind"))
			if err != nil {
				return err
			}

			summary, err := svc.RunTick(ctx, kind)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}
