package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/oraclewatch/internal/pkg/logger"
	"github.com/gabapcia/oraclewatch/internal/pkg/x/chflow"
)

const (
	// DefaultPollInterval is the reference wait between status checks.
	DefaultPollInterval = 2 * time.Second

	// DefaultPollDeadline bounds how long a submitted transaction is awaited.
	DefaultPollDeadline = 60 * time.Second
)

var (
	// ErrInvalidPolicy is returned when a poll Policy cannot be used.
	ErrInvalidPolicy = errors.New("invalid poll policy")

	// ErrNotPending is returned when AwaitTerminal is given a transaction that
	// was not handed over by the Submitter.
	ErrNotPending = errors.New("transaction is not pending")
)

// Policy controls confirmation polling. The zero value is invalid.
type Policy struct {
	Interval time.Duration
	Deadline time.Duration

	unbounded bool
}

// DefaultPolicy returns the reference policy: poll every 2s for up to 60s.
func DefaultPolicy() Policy {
	return Policy{Interval: DefaultPollInterval, Deadline: DefaultPollDeadline}
}

// ManualPolicy returns a policy that polls until the ledger answers or the
// context is canceled. It exists for manual invocations only; automated paths
// must use a finite Deadline.
func ManualPolicy(interval time.Duration) Policy {
	return Policy{Interval: interval, unbounded: true}
}

// Unbounded reports whether the policy has no deadline.
func (p Policy) Unbounded() bool {
	return p.unbounded
}

// Validate checks that the interval is positive and that a deadline is set
// unless the policy was built with ManualPolicy.
func (p Policy) Validate() error {
	if p.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidPolicy, p.Interval)
	}

	if !p.unbounded && p.Deadline <= 0 {
		return fmt.Errorf("%w: deadline must be positive, got %s", ErrInvalidPolicy, p.Deadline)
	}

	return nil
}

// Poller waits for a pending transaction to reach a terminal state.
type Poller interface {
	AwaitTerminal(ctx context.Context, tx *Transaction, policy Policy) (*Transaction, error)
}

type poller struct {
	gateway Gateway
	now     func() time.Time
}

var _ Poller = (*poller)(nil)

// NewPoller creates a Poller backed by gateway.
func NewPoller(gateway Gateway) *poller {
	return &poller{
		gateway: gateway,
		now:     time.Now,
	}
}

// AwaitTerminal polls the status of tx every policy.Interval until it succeeds,
// fails, or policy.Deadline elapses. A hash the ledger has not seen yet keeps
// the poll going, as does a failed status lookup.
//
// On deadline or context cancellation the transaction is marked TimedOut: its
// outcome is unknown and the ledger may still apply it later. A terminal
// transaction is always returned with a nil error; errors are reserved for an
// invalid policy or a transaction that is not Pending.
func (p *poller) AwaitTerminal(ctx context.Context, tx *Transaction, policy Policy) (*Transaction, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	if tx == nil || tx.Status != StatusPending || tx.Hash == "" {
		return nil, ErrNotPending
	}

	var (
		start    = p.now()
		deadline = start.Add(policy.Deadline)
	)

	for {
		wait := policy.Interval
		if !policy.unbounded {
			wait = min(wait, deadline.Sub(p.now()))
		}

		if !chflow.Sleep(ctx, wait) {
			logger.Warn(ctx, "transaction poll interrupted",
				"tx.hash", tx.Hash,
				"tx.polls", tx.Polls,
				"error", ctx.Err(),
			)
			_ = tx.advance(StatusTimedOut)
			return tx, nil
		}

		res, err := p.gateway.GetTransactionStatus(ctx, tx.Hash)
		tx.Polls++
		tx.LastPolledAt = p.now()

		switch {
		case err != nil:
			logger.Warn(ctx, "transaction status lookup failed",
				"tx.hash", tx.Hash,
				"tx.polls", tx.Polls,
				"error", err,
			)
		case res.Status == TxStatusSuccess:
			tx.Ledger = res.Ledger
			tx.ReturnValue = res.ReturnValue
			tx.Reason = res.Reason
			_ = tx.advance(StatusSuccess)
			return tx, nil
		case res.Status == TxStatusFailed:
			tx.Ledger = res.Ledger
			tx.Reason = res.Reason
			_ = tx.advance(StatusFailed)
			return tx, nil
		default:
			logger.Debug(ctx, "transaction not yet processed",
				"tx.hash", tx.Hash,
				"tx.status", res.Status.String(),
				"tx.polls", tx.Polls,
			)
		}

		if !policy.unbounded && !tx.LastPolledAt.Before(deadline) {
			_ = tx.advance(StatusTimedOut)
			return tx, nil
		}
	}
}
