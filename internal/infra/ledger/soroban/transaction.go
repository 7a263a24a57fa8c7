package soroban

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/oraclewatch/internal/ledger"
	"github.com/gabapcia/oraclewatch/internal/pkg/logger"

	"github.com/stellar/go/xdr"
)

const (
	sendStatusPending       = "PENDING"
	sendStatusDuplicate     = "DUPLICATE"
	sendStatusTryAgainLater = "TRY_AGAIN_LATER"
	sendStatusError         = "ERROR"

	txStatusSuccess  = "SUCCESS"
	txStatusNotFound = "NOT_FOUND"
	txStatusFailed   = "FAILED"
)

// Simulate preflights the envelope. A response carrying an error string is a
// contract-side rejection.
func (c *client) Simulate(ctx context.Context, envelopeXDR string) (ledger.SimulationResult, error) {
	var res simulateTransactionResponse
	if err := c.call(ctx, methodSimulateTransaction, transactionRequest{Transaction: envelopeXDR}, &res); err != nil {
		return ledger.SimulationResult{}, err
	}

	if res.Error != "" {
		return ledger.SimulationResult{}, fmt.Errorf("%w: %s", ledger.ErrSimulationRejected, res.Error)
	}

	if res.TransactionData == "" {
		return ledger.SimulationResult{}, fmt.Errorf("%w: missing transaction data", ledger.ErrSimulationRejected)
	}

	sim := ledger.SimulationResult{
		TransactionData: res.TransactionData,
		MinResourceFee:  int64(res.MinResourceFee),
	}
	for _, r := range res.Results {
		sim.Auth = append(sim.Auth, r.Auth...)
	}

	return sim, nil
}

// Submit sends a signed envelope. PENDING and DUPLICATE are acceptances;
// anything else is reported as ledger.ErrSubmissionRejected.
func (c *client) Submit(ctx context.Context, envelopeXDR string) (ledger.SubmitResult, error) {
	var res sendTransactionResponse
	if err := c.call(ctx, methodSendTransaction, transactionRequest{Transaction: envelopeXDR}, &res); err != nil {
		return ledger.SubmitResult{}, err
	}

	switch res.Status {
	case sendStatusPending, sendStatusDuplicate:
		return ledger.SubmitResult{Hash: res.Hash}, nil
	case sendStatusError:
		return ledger.SubmitResult{}, fmt.Errorf("%w: %s", ledger.ErrSubmissionRejected, resultReason(res.ErrorResultXDR))
	case sendStatusTryAgainLater:
		return ledger.SubmitResult{}, fmt.Errorf("%w: server asked to try again later", ledger.ErrSubmissionRejected)
	default:
		return ledger.SubmitResult{}, fmt.Errorf("%w: unexpected status %q", ledger.ErrSubmissionRejected, res.Status)
	}
}

// GetTransactionStatus looks up hash. A successful transaction carries the
// contract return value decoded from the result meta.
func (c *client) GetTransactionStatus(ctx context.Context, hash string) (ledger.StatusResult, error) {
	var res getTransactionResponse
	if err := c.call(ctx, methodGetTransaction, getTransactionRequest{Hash: hash}, &res); err != nil {
		return ledger.StatusResult{}, err
	}

	switch res.Status {
	case txStatusNotFound:
		return ledger.StatusResult{Status: ledger.TxStatusNotFound}, nil
	case txStatusSuccess:
		st := ledger.StatusResult{Status: ledger.TxStatusSuccess, Ledger: res.Ledger}

		rv, err := returnValue(res.ResultMetaXDR)
		if err != nil {
			logger.Debug(ctx, "transaction meta could not be decoded",
				"tx.hash", hash,
				"error", err,
			)
			st.Reason = "undecodable result meta: " + err.Error()
		}
		st.ReturnValue = rv

		return st, nil
	case txStatusFailed:
		return ledger.StatusResult{
			Status: ledger.TxStatusFailed,
			Ledger: res.Ledger,
			Reason: resultReason(res.ResultXDR),
		}, nil
	default:
		return ledger.StatusResult{Status: ledger.TxStatusPending, Ledger: res.Ledger}, nil
	}
}

// returnValue extracts the contract return value from a base64
// TransactionMeta. It returns nil without error when the meta carries none.
func returnValue(metaXDR string) (*xdr.ScVal, error) {
	if metaXDR == "" {
		return nil, nil
	}

	var meta xdr.TransactionMeta
	if err := xdr.SafeUnmarshalBase64(metaXDR, &meta); err != nil {
		return nil, err
	}

	switch meta.V {
	case 3:
		if meta.V3 != nil && meta.V3.SorobanMeta != nil {
			rv := meta.V3.SorobanMeta.ReturnValue
			return &rv, nil
		}
	case 4:
		if meta.V4 != nil && meta.V4.SorobanMeta != nil {
			return meta.V4.SorobanMeta.ReturnValue, nil
		}
	}

	return nil, nil
}

// resultReason renders a base64 TransactionResult as its result codes, for
// example "tx_failed: invoke_host_function_trapped".
func resultReason(resultXDR string) string {
	if resultXDR == "" {
		return "unknown"
	}

	var result xdr.TransactionResult
	if err := xdr.SafeUnmarshalBase64(resultXDR, &result); err != nil {
		return "undecodable result: " + err.Error()
	}

	codes := []string{resultCode(result.Result.Code.String(), "TransactionResultCode")}
	if ops, ok := result.Result.GetResults(); ok {
		for _, op := range ops {
			if tr, ok := op.GetTr(); ok {
				if ih, ok := tr.GetInvokeHostFunctionResult(); ok {
					codes = append(codes, resultCode(ih.Code.String(), "InvokeHostFunctionResultCode"))
				}
			}
		}
	}

	return strings.Join(codes, ": ")
}

// resultCode turns "TransactionResultCodeTxFailed" into "tx_failed".
func resultCode(name, prefix string) string {
	name = strings.TrimPrefix(name, prefix)

	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}

	return b.String()
}
