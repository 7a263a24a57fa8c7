package soroban

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// stroops is an amount that Soroban RPC encodes either as a JSON number or
// as a decimal string.
type stroops int64

func (s *stroops) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*s = 0
	case float64:
		*s = stroops(v)
	case string:
		if v == "" {
			*s = 0
			return nil
		}

		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid stroop amount %q: %w", v, err)
		}
		*s = stroops(n)
	default:
		return fmt.Errorf("invalid stroop amount: %s", data)
	}

	return nil
}

type (
	getLedgerEntriesRequest struct {
		Keys []string `json:"keys"`
	}

	getLedgerEntriesResponse struct {
		Entries []struct {
			Key                   string `json:"key"`
			XDR                   string `json:"xdr"`
			LastModifiedLedgerSeq uint32 `json:"lastModifiedLedgerSeq"`
		} `json:"entries"`
		LatestLedger uint32 `json:"latestLedger"`
	}

	transactionRequest struct {
		Transaction string `json:"transaction"`
	}

	simulateTransactionResponse struct {
		Error           string  `json:"error,omitempty"`
		TransactionData string  `json:"transactionData"`
		MinResourceFee  stroops `json:"minResourceFee"`
		Results         []struct {
			Auth []string `json:"auth"`
			XDR  string   `json:"xdr"`
		} `json:"results"`
		LatestLedger uint32 `json:"latestLedger"`
	}

	sendTransactionResponse struct {
		Status         string `json:"status"`
		Hash           string `json:"hash"`
		ErrorResultXDR string `json:"errorResultXdr,omitempty"`
		LatestLedger   uint32 `json:"latestLedger"`
	}

	getTransactionRequest struct {
		Hash string `json:"hash"`
	}

	getTransactionResponse struct {
		Status        string `json:"status"`
		Ledger        uint32 `json:"ledger"`
		ResultXDR     string `json:"resultXdr"`
		ResultMetaXDR string `json:"resultMetaXdr"`
		LatestLedger  uint32 `json:"latestLedger"`
	}
)
