package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/oraclewatch/internal/target"

	"github.com/urfave/cli/v3"
)

func targetFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "kind",
			Usage:    "Target kind (wildfire or flight)",
			Required: required,
		},
		&cli.StringFlag{
			Name:     "descriptor",
			Usage:    "Street address for wildfire targets, flight identifier for flight targets",
			Required: required,
		},
	}
}

// targetsCommand groups the commands managing monitored targets.
func targetsCommand(ts target.Service) *cli.Command {
	return &cli.Command{
		Name:        "targets",
		Description: "Manage the targets monitored by the oracle.",
		Usage:       "Adds, removes or lists monitored targets.",
		Commands: []*cli.Command{
			addTargetCommand(ts),
			removeTargetCommand(ts),
			listTargetsCommand(ts),
		},
	}
}

// addTargetCommand registers a target.
//
// Usage example:
//
//	oraclewatch targets add --kind flight --descriptor UA1324
func addTargetCommand(ts target.Service) *cli.Command {
	return &cli.Command{
		Name:        "add",
		Description: "Register a target to be scanned on every tick of its kind.",
		Usage:       "Registers a target. Must provide both kind and descriptor.",
		Flags:       targetFlags(true),
		Action: func(ctx context.Context, c *cli.Command) error {
			kind, err := target.ParseKind(c.String("kind"))
			if err != nil {
				return err
			}

			t, err := ts.Add(ctx, kind, c.String("descriptor"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "added %s\n", t.ID)
			return err
		},
	}
}

// removeTargetCommand unregisters a target.
//
// Usage example:
//
//	oraclewatch targets remove --kind flight --descriptor UA1324
func removeTargetCommand(ts target.Service) *cli.Command {
	return &cli.Command{
		Name:        "remove",
		Description: "Unregister a target so it is no longer scanned.",
		Usage:       "Unregisters a target. Must provide both kind and descriptor.",
		Flags:       targetFlags(true),
		Action: func(ctx context.Context, c *cli.Command) error {
			kind, err := target.ParseKind(c.String("kind"))
			if err != nil {
				return err
			}

			return ts.Remove(ctx, kind, c.String("descriptor"))
		},
	}
}

// listTargetsCommand prints one line per target with its last scan time.
//
// Usage example:
//
//	oraclewatch targets list --kind wildfire
func listTargetsCommand(ts target.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the registered targets and when each was last scanned.",
		Usage:       "Lists targets. Without --kind every kind is listed.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Target kind (wildfire or flight)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var kind target.Kind
			if c.IsSet("kind") {
				k, err := target.ParseKind(c.String("kind"))
				if err != nil {
					return err
				}
				kind = k
			}

			targets, err := ts.List(ctx, kind)
			if err != nil {
				return err
			}

			for _, t := range targets {
				lastScan := "never"
				if t.LastScanAt != nil {
					lastScan = t.LastScanAt.UTC().Format(time.RFC3339)
				}

				if _, err := fmt.Fprintf(c.Root().Writer, "%s\t%s\n", t.ID, lastScan); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
