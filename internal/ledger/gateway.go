package ledger

import (
	"context"
	"errors"

	"github.com/stellar/go/xdr"
)

var (
	// ErrAccountNotFound is returned by a Gateway when the account does not
	// exist on the ledger (for example, it was never funded).
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountLookup is returned by Submit when the signer's sequence number
	// cannot be fetched. It is fatal for the attempt and never retried.
	ErrAccountLookup = errors.New("account lookup failed")

	// ErrSimulationRejected is returned when preflight simulation fails. The
	// event is dropped for this cycle.
	ErrSimulationRejected = errors.New("simulation rejected")

	// ErrSubmissionRejected is returned when the ledger refuses the envelope
	// at admission (malformed, insufficient fee, bad sequence).
	ErrSubmissionRejected = errors.New("submission rejected")

	// ErrSigning is returned when the envelope cannot be signed.
	ErrSigning = errors.New("signing failed")
)

// TxStatus is the ledger-side status reported for a transaction hash.
type TxStatus int

const (
	// TxStatusNotFound means the ledger has not processed the hash yet. It is not a failure.
	TxStatusNotFound TxStatus = iota
	TxStatusPending
	TxStatusSuccess
	TxStatusFailed
)

func (s TxStatus) String() string {
	switch s {
	case TxStatusNotFound:
		return "NOT_FOUND"
	case TxStatusPending:
		return "PENDING"
	case TxStatusSuccess:
		return "SUCCESS"
	case TxStatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// SimulationResult carries the resource data required to make a Soroban
// invocation executable.
type SimulationResult struct {
	// TransactionData is the base64 SorobanTransactionData footprint.
	TransactionData string

	// MinResourceFee is the resource fee, in stroops, reported by the simulation.
	// The same amount is already carried in TransactionData.
	MinResourceFee int64

	// Auth holds base64 SorobanAuthorizationEntry values for the invocation.
	Auth []string
}

// SubmitResult is the ledger acknowledgment of an accepted envelope.
type SubmitResult struct {
	Hash string
}

// StatusResult is the answer to a status lookup by hash.
type StatusResult struct {
	Status      TxStatus
	Ledger      uint32
	ReturnValue *xdr.ScVal
	Reason      string
}

// Gateway is the capability boundary over the remote ledger. Implementations
// perform pure I/O and never retry on their own.
type Gateway interface {
	// GetAccountSequence returns the current sequence number of accountID.
	// It returns ErrAccountNotFound if the account does not exist.
	GetAccountSequence(ctx context.Context, accountID string) (int64, error)

	// Simulate runs the base64 envelope against current ledger state.
	// A contract-side failure is reported as ErrSimulationRejected.
	Simulate(ctx context.Context, envelopeXDR string) (SimulationResult, error)

	// Submit sends a signed base64 envelope. An admission failure is reported
	// as ErrSubmissionRejected.
	Submit(ctx context.Context, envelopeXDR string) (SubmitResult, error)

	// GetTransactionStatus looks up a submitted transaction by hash.
	GetTransactionStatus(ctx context.Context, hash string) (StatusResult, error)
}
