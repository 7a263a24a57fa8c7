package oracle

import "context"

// ReportNotifier is told about every report outcome, successful or not.
// Errors are logged and never affect the tick.
type ReportNotifier interface {
	NotifyReport(ctx context.Context, outcome Outcome) error
}

type nopNotifier struct{}

func (nopNotifier) NotifyReport(context.Context, Outcome) error { return nil }
