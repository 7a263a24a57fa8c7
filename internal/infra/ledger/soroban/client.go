// Package soroban implements ledger.Gateway on top of a Soroban RPC server.
package soroban

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/oraclewatch/internal/ledger"
	"github.com/gabapcia/oraclewatch/internal/pkg/transport/jsonrpc"
)

const (
	methodGetLedgerEntries    = "getLedgerEntries"
	methodSimulateTransaction = "simulateTransaction"
	methodSendTransaction     = "sendTransaction"
	methodGetTransaction      = "getTransaction"
)

// client talks to Soroban RPC through a JSON-RPC 2.0 connection.
type client struct {
	conn jsonrpc.Client
}

// Ensure client implements the ledger.Gateway interface at compile time.
var _ ledger.Gateway = (*client)(nil)

// NewClient creates a ledger gateway over the given JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// call performs method with object params and decodes the result into out.
func (c *client) call(ctx context.Context, method string, params, out any) error {
	raw, err := c.conn.Fetch(ctx, method, params)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, out)
}
