package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/oraclewatch/internal/contractcall"
	"github.com/gabapcia/oraclewatch/internal/oracle"

	"github.com/urfave/cli/v3"
)

var errEventTimeRequired = errors.New("either --event-time or --no-time is required")

// reportCommand invokes the contract once with explicit parameters and waits
// for the result.
//
// Usage example:
//
//	oraclewatch report --occurred --event-time 1700000000
//	oraclewatch report --no-time --no-timeout
func reportCommand(reporters ReporterFactory) *cli.Command {
	return &cli.Command{
		Name:        "report",
		Description: "Submit one report to the contract and wait for its confirmation.",
		Usage:       "Invokes the contract once. --no-timeout waits for the ledger without a deadline.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "occurred",
				Usage: "Whether the event occurred",
			},
			&cli.Int64Flag{
				Name:  "event-time",
				Usage: "Event time in Unix seconds",
			},
			&cli.BoolFlag{
				Name:  "no-time",
				Usage: "Report without an event time",
			},
			&cli.BoolFlag{
				Name:  "no-timeout",
				Usage: "Submit without expiration and poll until the ledger answers",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			params := contractcall.Params{EventOccurred: c.Bool("occurred")}
			switch {
			case c.Bool("no-time"):
			case c.IsSet("event-time"):
				at := c.Int64("event-time")
				params.EventTime = &at
			default:
				return errEventTimeRequired
			}

			reporter, err := reporters(c.Bool("no-timeout"))
			if err != nil {
				return err
			}

			outcome := reporter.Report(ctx, params)

			w := c.Root().Writer
			fmt.Fprintf(w, "status: %s\n", outcome.Status)
			if tx := outcome.Transaction; tx != nil {
				fmt.Fprintf(w, "transaction: %s (%s, %d polls)\n", tx.Hash, tx.Status, tx.Polls)
				if tx.ReturnValue != nil {
					fmt.Fprintf(w, "result: %v\n", contractcall.Decode(*tx.ReturnValue))
				}
			}

			if outcome.Status != oracle.ReportSuccess {
				return fmt.Errorf("report %s: %w", outcome.Status, outcome.Err)
			}

			return nil
		},
	}
}
