package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/oraclewatch/internal/contractcall"
	"github.com/gabapcia/oraclewatch/internal/eventsource"
	"github.com/gabapcia/oraclewatch/internal/ledger"
)

// ReportStatus classifies how a single report attempt ended.
type ReportStatus string

const (
	ReportSuccess            ReportStatus = "success"
	ReportFailed             ReportStatus = "failed"
	ReportTimedOut           ReportStatus = "timed_out"
	ReportAccountLookup      ReportStatus = "account_lookup"
	ReportEncoding           ReportStatus = "encoding"
	ReportSimulationRejected ReportStatus = "simulation_rejected"
	ReportSubmissionRejected ReportStatus = "submission_rejected"
	ReportSigning            ReportStatus = "signing"
	ReportInvalidContract    ReportStatus = "invalid_contract"
	ReportCanceled           ReportStatus = "canceled"
	ReportBuildFailed        ReportStatus = "build_failed"
)

// Outcome is the result of reporting one detected event on-chain.
type Outcome struct {
	ReportID string
	TargetID string
	Event    eventsource.DetectedEvent
	Params   contractcall.Params
	Status   ReportStatus

	// Transaction is nil when the attempt failed before submission.
	Transaction *ledger.Transaction

	Err        error
	ReportedAt time.Time
}

// classify maps a submission error to its ReportStatus. Errors carrying no
// known sentinel, such as envelope build failures, map to ReportBuildFailed.
func classify(err error) ReportStatus {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReportCanceled
	case errors.Is(err, contractcall.ErrEncoding):
		return ReportEncoding
	case errors.Is(err, ledger.ErrAccountLookup):
		return ReportAccountLookup
	case errors.Is(err, ledger.ErrSimulationRejected):
		return ReportSimulationRejected
	case errors.Is(err, ledger.ErrSigning):
		return ReportSigning
	case errors.Is(err, ledger.ErrSubmissionRejected):
		return ReportSubmissionRejected
	case errors.Is(err, ledger.ErrInvalidContract):
		return ReportInvalidContract
	default:
		return ReportBuildFailed
	}
}

// Reporter commits a fact to the ledger and waits for its confirmation.
type Reporter interface {
	Report(ctx context.Context, params contractcall.Params) Outcome
}

type ledgerReporter struct {
	submitter  ledger.Submitter
	poller     ledger.Poller
	signer     ledger.Signer
	contractID string
	policy     ledger.Policy
}

var _ Reporter = (*ledgerReporter)(nil)

// NewReporter creates a Reporter that invokes contractID as signer and awaits
// each transaction under policy. The policy must carry a deadline; use
// NewManualReporter for one-off invocations that may wait indefinitely.
func NewReporter(submitter ledger.Submitter, poller ledger.Poller, signer ledger.Signer, contractID string, policy ledger.Policy) (*ledgerReporter, error) {
	if policy.Unbounded() {
		return nil, fmt.Errorf("%w: scheduled reports need a finite deadline", ledger.ErrInvalidPolicy)
	}

	return NewManualReporter(submitter, poller, signer, contractID, policy)
}

// NewManualReporter is like NewReporter but also accepts a policy built with
// ledger.ManualPolicy.
func NewManualReporter(submitter ledger.Submitter, poller ledger.Poller, signer ledger.Signer, contractID string, policy ledger.Policy) (*ledgerReporter, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &ledgerReporter{
		submitter:  submitter,
		poller:     poller,
		signer:     signer,
		contractID: contractID,
		policy:     policy,
	}, nil
}

// Report runs encode → submit → await. It never returns early with a bare
// error: every failure is carried in the Outcome with its class.
func (r *ledgerReporter) Report(ctx context.Context, params contractcall.Params) Outcome {
	outcome := Outcome{Params: params}

	args, err := contractcall.Encode(params)
	if err != nil {
		outcome.Status, outcome.Err = ReportEncoding, err
		return outcome
	}

	tx, err := r.submitter.Submit(ctx, r.contractID, args, r.signer)
	if err != nil {
		outcome.Status, outcome.Err = classify(err), err
		return outcome
	}
	outcome.Transaction = tx

	final, err := r.poller.AwaitTerminal(ctx, tx, r.policy)
	if err != nil {
		outcome.Status, outcome.Err = ReportTimedOut, err
		return outcome
	}
	outcome.Transaction = final

	switch final.Status {
	case ledger.StatusSuccess:
		outcome.Status = ReportSuccess
	case ledger.StatusFailed:
		outcome.Status = ReportFailed
		outcome.Err = fmt.Errorf("transaction %s failed: %s", final.Hash, final.Reason)
	default:
		outcome.Status = ReportTimedOut
		outcome.Err = fmt.Errorf("transaction %s not confirmed after %d polls", final.Hash, final.Polls)
	}

	return outcome
}
