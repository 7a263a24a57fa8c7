// Package ledger implements the submit-and-confirm protocol that turns a
// locally detected event into a recorded Soroban contract invocation.
//
// A Transaction moves through a strictly monotonic state machine:
//
//	Built → Signed → Submitted → Pending → {Success | Failed | TimedOut}
//
// The Submitter owns the transient states and hands a Pending transaction to
// the Poller, which alone drives it to a terminal state.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/stellar/go/xdr"
)

// ErrInvalidTransition is returned when a status change would move a
// transaction backwards or skip a state.
var ErrInvalidTransition = errors.New("invalid transaction status transition")

// Status is the lifecycle state of a Transaction.
type Status int

const (
	StatusBuilt Status = iota
	StatusSigned
	StatusSubmitted
	StatusPending
	StatusSuccess
	StatusFailed
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusBuilt:
		return "built"
	case StatusSigned:
		return "signed"
	case StatusSubmitted:
		return "submitted"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusTimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// IsTerminal reports whether no further polling is meaningful.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusTimedOut
}

// Transaction is one attempt to invoke the reporting contract.
//
// Hash is set once on submission and never changes afterwards.
type Transaction struct {
	Hash         string
	Status       Status
	BuiltAt      time.Time
	SubmittedAt  time.Time
	LastPolledAt time.Time
	Polls        int

	// Reason carries the ledger-reported failure cause for StatusFailed.
	Reason string

	// Ledger is the sequence of the ledger that included the transaction, when known.
	Ledger uint32

	// ReturnValue is the raw contract return value for StatusSuccess.
	ReturnValue *xdr.ScVal
}

// advance moves the transaction to next. Before Pending every step must be
// taken in order; from Pending only a terminal state is reachable.
func (t *Transaction) advance(next Status) error {
	switch {
	case t.Status.IsTerminal():
	case t.Status < StatusPending && next == t.Status+1:
		t.Status = next
		return nil
	case t.Status == StatusPending && next.IsTerminal():
		t.Status = next
		return nil
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, next)
}
