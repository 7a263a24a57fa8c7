package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/oraclewatch/internal/pkg/logger"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/txnbuild"
	"github.com/stellar/go/xdr"
)

const (
	defaultMethod         = "bump"
	defaultTimeoutSeconds = 30
)

// ErrInvalidContract is returned when the target contract address is not a valid "C..." strkey.
var ErrInvalidContract = errors.New("invalid contract address")

// Submitter builds, optionally simulates, signs and submits one contract
// invocation. A successful Submit returns a Pending transaction.
type Submitter interface {
	Submit(ctx context.Context, contractID string, args []xdr.ScVal, signer Signer) (*Transaction, error)
}

type submitter struct {
	gateway           Gateway
	networkPassphrase string

	method          string
	baseFee         int64
	timeoutSeconds  int64
	infiniteTimeout bool
	simulate        bool
	now             func() time.Time
}

var _ Submitter = (*submitter)(nil)

// contractAddress decodes a "C..." contract strkey into an ScAddress.
func contractAddress(contractID string) (xdr.ScAddress, error) {
	raw, err := strkey.Decode(strkey.VersionByteContract, contractID)
	if err != nil {
		return xdr.ScAddress{}, fmt.Errorf("%w: %w", ErrInvalidContract, err)
	}

	var id xdr.ContractId
	copy(id[:], raw)

	return xdr.ScAddress{
		Type:       xdr.ScAddressTypeScAddressTypeContract,
		ContractId: &id,
	}, nil
}

// preconditions returns the expiration window for new envelopes.
func (s *submitter) preconditions() txnbuild.Preconditions {
	if s.infiniteTimeout {
		return txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()}
	}

	return txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(s.timeoutSeconds)}
}

// build assembles an unsigned envelope. The SimpleAccount is created fresh on
// every call because txnbuild increments its sequence in place.
func (s *submitter) build(account string, sequence int64, op *txnbuild.InvokeHostFunction, fee int64) (*txnbuild.Transaction, error) {
	return txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: account, Sequence: sequence},
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              fee,
		Preconditions:        s.preconditions(),
	})
}

// applySimulation attaches the simulated transaction data and authorization
// entries to op. txnbuild adds the resource fee carried in the transaction
// data on top of the inclusion fee, so the base fee stays unchanged.
func (s *submitter) applySimulation(op *txnbuild.InvokeHostFunction, sim SimulationResult) error {
	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(sim.TransactionData, &data); err != nil {
		return fmt.Errorf("%w: decode transaction data: %w", ErrSimulationRejected, err)
	}

	auth := make([]xdr.SorobanAuthorizationEntry, 0, len(sim.Auth))
	for _, raw := range sim.Auth {
		var entry xdr.SorobanAuthorizationEntry
		if err := xdr.SafeUnmarshalBase64(raw, &entry); err != nil {
			return fmt.Errorf("%w: decode auth entry: %w", ErrSimulationRejected, err)
		}
		auth = append(auth, entry)
	}

	op.Auth = auth
	op.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}

	return nil
}

// Submit runs the build → simulate → sign → submit steps for one invocation
// of the configured method on contractID.
//
// The signer's sequence number is fetched from the ledger on every call and
// never cached. Errors are classified as ErrAccountLookup, ErrSimulationRejected,
// ErrSigning or ErrSubmissionRejected; none of them is retried here.
func (s *submitter) Submit(ctx context.Context, contractID string, args []xdr.ScVal, signer Signer) (*Transaction, error) {
	contract, err := contractAddress(contractID)
	if err != nil {
		return nil, err
	}

	account := signer.Address()
	sequence, err := s.gateway.GetAccountSequence(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAccountLookup, account, err)
	}

	op := &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: contract,
				FunctionName:    xdr.ScSymbol(s.method),
				Args:            args,
			},
		},
	}

	envelope, err := s.build(account, sequence, op, s.baseFee)
	if err != nil {
		return nil, err
	}

	if s.simulate {
		unsigned, err := envelope.Base64()
		if err != nil {
			return nil, err
		}

		sim, err := s.gateway.Simulate(ctx, unsigned)
		if err != nil {
			if errors.Is(err, ErrSimulationRejected) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrSimulationRejected, err)
		}

		if err := s.applySimulation(op, sim); err != nil {
			return nil, err
		}

		if envelope, err = s.build(account, sequence, op, s.baseFee); err != nil {
			return nil, err
		}
	}

	tx := &Transaction{Status: StatusBuilt, BuiltAt: s.now()}

	signed, err := signer.Sign(envelope, s.networkPassphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	_ = tx.advance(StatusSigned)

	signedXDR, err := signed.Base64()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	localHash, err := signed.HashHex(s.networkPassphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	_ = tx.advance(StatusSubmitted)
	res, err := s.gateway.Submit(ctx, signedXDR)
	if err != nil {
		if errors.Is(err, ErrSubmissionRejected) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSubmissionRejected, err)
	}

	tx.Hash = res.Hash
	if tx.Hash == "" {
		tx.Hash = localHash
	} else if tx.Hash != localHash {
		logger.Warn(ctx, "ledger acknowledged a different transaction hash",
			"tx.hash", tx.Hash,
			"tx.local_hash", localHash,
		)
	}

	tx.SubmittedAt = s.now()
	_ = tx.advance(StatusPending)

	logger.Debug(ctx, "transaction submitted",
		"tx.hash", tx.Hash,
		"tx.account", account,
		"tx.sequence", sequence+1,
	)

	return tx, nil
}

type submitterConfig struct {
	method          string
	baseFee         int64
	timeoutSeconds  int64
	infiniteTimeout bool
	simulate        bool
	now             func() time.Time
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*submitterConfig)

// NewSubmitter creates a Submitter for the network identified by networkPassphrase.
//
// Defaults: method "bump", base fee txnbuild.MinBaseFee, 30s expiration
// window, simulation enabled.
func NewSubmitter(gateway Gateway, networkPassphrase string, opts ...SubmitterOption) *submitter {
	cfg := submitterConfig{
		method:         defaultMethod,
		baseFee:        txnbuild.MinBaseFee,
		timeoutSeconds: defaultTimeoutSeconds,
		simulate:       true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &submitter{
		gateway:           gateway,
		networkPassphrase: networkPassphrase,
		method:            cfg.method,
		baseFee:           cfg.baseFee,
		timeoutSeconds:    cfg.timeoutSeconds,
		infiniteTimeout:   cfg.infiniteTimeout,
		simulate:          cfg.simulate,
		now:               cfg.now,
	}
}

// WithMethod sets the contract entry point to invoke.
func WithMethod(method string) SubmitterOption {
	return func(c *submitterConfig) {
		c.method = method
	}
}

// WithBaseFee sets the inclusion fee ceiling in stroops. Values below
// txnbuild.MinBaseFee are raised to it.
func WithBaseFee(fee int64) SubmitterOption {
	return func(c *submitterConfig) {
		c.baseFee = max(fee, txnbuild.MinBaseFee)
	}
}

// WithTimeout sets the envelope expiration window. Non-positive durations
// keep the default; use WithInfiniteTimeout for an unbounded window.
func WithTimeout(d time.Duration) SubmitterOption {
	return func(c *submitterConfig) {
		if secs := int64(d / time.Second); secs > 0 {
			c.timeoutSeconds = secs
		}
	}
}

// WithInfiniteTimeout removes the expiration window. It is intended only for
// manual invocations and must not be used by the scheduler.
func WithInfiniteTimeout() SubmitterOption {
	return func(c *submitterConfig) {
		c.infiniteTimeout = true
	}
}

// WithoutSimulation submits the envelope without preflight. Only contracts
// whose footprint is already attached can succeed this way.
func WithoutSimulation() SubmitterOption {
	return func(c *submitterConfig) {
		c.simulate = false
	}
}

// WithClock overrides the time source used for BuiltAt and SubmittedAt.
func WithClock(now func() time.Time) SubmitterOption {
	return func(c *submitterConfig) {
		c.now = now
	}
}
