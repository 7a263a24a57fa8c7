package soroban

import (
	"context"
	"fmt"

	"github.com/gabapcia/oraclewatch/internal/ledger"

	"github.com/stellar/go/xdr"
)

// accountKey returns the base64 ledger key of an account entry.
func accountKey(accountID string) (string, error) {
	id, err := xdr.AddressToAccountId(accountID)
	if err != nil {
		return "", err
	}

	return xdr.MarshalBase64(xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountId: id},
	})
}

// GetAccountSequence reads the account entry from the ledger and returns its
// current sequence number.
func (c *client) GetAccountSequence(ctx context.Context, accountID string) (int64, error) {
	key, err := accountKey(accountID)
	if err != nil {
		return 0, fmt.Errorf("invalid account %q: %w", accountID, err)
	}

	var res getLedgerEntriesResponse
	if err := c.call(ctx, methodGetLedgerEntries, getLedgerEntriesRequest{Keys: []string{key}}, &res); err != nil {
		return 0, err
	}

	if len(res.Entries) == 0 {
		return 0, fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, accountID)
	}

	var data xdr.LedgerEntryData
	if err := xdr.SafeUnmarshalBase64(res.Entries[0].XDR, &data); err != nil {
		return 0, fmt.Errorf("decode account entry: %w", err)
	}

	account, ok := data.GetAccount()
	if !ok {
		return 0, fmt.Errorf("unexpected ledger entry type %s for account %s", data.Type, accountID)
	}

	return int64(account.SeqNum), nil
}
