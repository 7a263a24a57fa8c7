// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// Requests carry a single params value, which may be an object (as required
// by Soroban RPC) or a positional array.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response that carried no JSON-RPC body.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	if len(r.Error.Data) > 0 {
		return fmt.Errorf("%w: [%d] - %s (%s)", ErrProviderReturnedError, r.Error.Code, r.Error.Message, r.Error.Data)
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and params value.
	// A nil params value omits the field. It returns the raw JSON result.
	Fetch(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// client sends JSON-RPC requests to the configured provider endpoint.
type client struct {
	providerEndpoint string
	httpClient       *http.Client
}

var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and params.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params any) (json.RawMessage, error) {
	payload := map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
	}
	if params != nil {
		payload["params"] = params
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}

		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewClient constructs a Client that sends JSON-RPC requests to providerEndpoint
// using the given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
