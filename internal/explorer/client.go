// Package explorer implements the chain data client against an
// etherscan-style explorer API (Snowtrace for the Avalanche C-Chain).
package explorer

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/model"
	"github.com/arenawatch/arenawatch-backend/pkg/retry"
)

// ErrMalformedRecord marks a response row missing an expected field. The
// offending row is skipped and logged, never fatal for the page.
var ErrMalformedRecord = errors.New("malformed explorer record")

// errTransient wraps provider failures worth retrying.
type errTransient struct{ err error }

func (e errTransient) Error() string { return e.err.Error() }
func (e errTransient) Unwrap() error { return e.err }

// IsTransient reports whether err was a rate-limit, timeout or server-side
// failure that exhausted its retry budget.
func IsTransient(err error) bool {
	var t errTransient
	return errors.As(err, &t)
}

type (
	// Metrics records call outcomes for the explorer client.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config carries the explorer client settings.
type Config struct {
	BaseURL string
	APIKey  string
	// RequestsPerSecond bounds the aggregate call rate against the API.
	RequestsPerSecond int
	// PageSize is the offset parameter of paginated actions.
	PageSize int
	Timeout  time.Duration
	Retry    retry.Policy
}

// Validate applies defaults and rejects unusable settings.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("explorer base url is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("parse explorer base url: %w", err)
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 5
	}
	if c.PageSize <= 0 {
		c.PageSize = 1000
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.Retry.MaxAttempts <= 0 {
		c.Retry = retry.DefaultPolicy()
	}
	return nil
}

// Client drains paginated explorer endpoints under a global rate limit with
// bounded retries. All returned slices are complete: pages are followed
// until exhausted before anything is handed to the caller.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient constructs the explorer client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Retry.Classify = classify
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    ratelimit.New(cfg.RequestsPerSecond),
		metrics:    metrics,
		logger:     logger,
	}, nil
}

func classify(err error) retry.Class {
	if IsTransient(err) {
		return retry.Transient
	}
	return retry.Permanent
}

// ListTransactions returns every transaction of an address, oldest first.
func (c *Client) ListTransactions(ctx context.Context, address model.Address) ([]model.Transaction, error) {
	rows, err := drainPages[txRow](ctx, c, "txlist", url.Values{
		"module":  {"account"},
		"action":  {"txlist"},
		"address": {address.String()},
		"sort":    {"asc"},
	})
	if err != nil {
		return nil, err
	}
	return convertRows(c, "txlist", rows, txRow.toModel), nil
}

// ListInternalTransactions returns every internal transaction touching an
// address, oldest first.
func (c *Client) ListInternalTransactions(ctx context.Context, address model.Address) ([]model.InternalTransaction, error) {
	rows, err := drainPages[internalTxRow](ctx, c, "txlistinternal", url.Values{
		"module":  {"account"},
		"action":  {"txlistinternal"},
		"address": {address.String()},
		"sort":    {"asc"},
	})
	if err != nil {
		return nil, err
	}
	return convertRows(c, "txlistinternal", rows, internalTxRow.toModel), nil
}

// ListInternalTransactionsByHash returns the internal transactions executed
// by one parent transaction.
func (c *Client) ListInternalTransactionsByHash(ctx context.Context, txHash string) ([]model.InternalTransaction, error) {
	rows, err := drainPages[internalTxRow](ctx, c, "txlistinternal_by_hash", url.Values{
		"module": {"account"},
		"action": {"txlistinternal"},
		"txhash": {txHash},
	})
	if err != nil {
		return nil, err
	}
	return convertRows(c, "txlistinternal_by_hash", rows, internalTxRow.toModel), nil
}

// ListTokenTransfers returns the transfer rows of one token touching one
// wallet, oldest first.
func (c *Client) ListTokenTransfers(ctx context.Context, wallet, token model.Address) ([]model.TokenTransfer, error) {
	rows, err := drainPages[tokenTxRow](ctx, c, "tokentx", url.Values{
		"module":          {"account"},
		"action":          {"tokentx"},
		"address":         {wallet.String()},
		"contractaddress": {token.String()},
		"sort":            {"asc"},
	})
	if err != nil {
		return nil, err
	}
	return convertRows(c, "tokentx", rows, tokenTxRow.toModel), nil
}

// ListTokenHolderTransfers returns every transfer row of a token across all
// holders, oldest first.
func (c *Client) ListTokenHolderTransfers(ctx context.Context, token model.Address) ([]model.TokenTransfer, error) {
	rows, err := drainPages[tokenTxRow](ctx, c, "tokentx_all", url.Values{
		"module":          {"account"},
		"action":          {"tokentx"},
		"contractaddress": {token.String()},
		"sort":            {"asc"},
	})
	if err != nil {
		return nil, err
	}
	return convertRows(c, "tokentx_all", rows, tokenTxRow.toModel), nil
}

// TransactionReceipt fetches a transaction receipt with its logs.
func (c *Client) TransactionReceipt(ctx context.Context, txHash string) (*model.TransactionReceipt, error) {
	raw, err := c.proxyCall(ctx, "receipt", url.Values{
		"module": {"proxy"},
		"action": {"eth_getTransactionReceipt"},
		"txhash": {txHash},
	})
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, fmt.Errorf("receipt for %s not found: %w", txHash, ErrMalformedRecord)
	}
	var res receiptResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode receipt for %s: %w", txHash, ErrMalformedRecord)
	}
	return res.toModel(), nil
}

// Code returns the deployed bytecode of an address. Empty means the address
// is not a contract.
func (c *Client) Code(ctx context.Context, address model.Address) ([]byte, error) {
	raw, err := c.proxyCall(ctx, "get_code", url.Values{
		"module":  {"proxy"},
		"action":  {"eth_getCode"},
		"address": {address.String()},
		"tag":     {"latest"},
	})
	if err != nil {
		return nil, err
	}
	var hexCode string
	if err := json.Unmarshal(raw, &hexCode); err != nil {
		return nil, fmt.Errorf("decode code for %s: %w", address, ErrMalformedRecord)
	}
	hexCode = strings.TrimPrefix(hexCode, "0x")
	if hexCode == "" {
		return nil, nil
	}
	code, err := hex.DecodeString(hexCode)
	if err != nil {
		return nil, fmt.Errorf("decode code hex for %s: %w", address, ErrMalformedRecord)
	}
	return code, nil
}

// Balance returns the current native balance of an address.
func (c *Client) Balance(ctx context.Context, address model.Address) (float64, error) {
	raw, err := c.get(ctx, "balance", url.Values{
		"module":  {"account"},
		"action":  {"balance"},
		"address": {address.String()},
		"tag":     {"latest"},
	})
	if err != nil {
		return 0, err
	}
	var wei string
	if err := json.Unmarshal(raw, &wei); err != nil {
		return 0, fmt.Errorf("decode balance for %s: %w", address, ErrMalformedRecord)
	}
	return weiToNative(wei), nil
}

// drainPages follows the page cursor until a short page arrives. The account
// data is incomplete until every page has been read, so a page failure after
// retries fails the whole listing.
func drainPages[T any](ctx context.Context, c *Client, operation string, params url.Values) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		params.Set("page", fmt.Sprint(page))
		params.Set("offset", fmt.Sprint(c.cfg.PageSize))

		raw, err := c.get(ctx, operation, params)
		if err != nil {
			return nil, err
		}

		var rows []T
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("%s: decode page %d: %w", operation, page, ErrMalformedRecord)
		}
		all = append(all, rows...)
		if len(rows) < c.cfg.PageSize {
			return all, nil
		}
	}
}

func convertRows[T any, M any](c *Client, operation string, rows []T, conv func(T) (M, error)) []M {
	out := make([]M, 0, len(rows))
	for _, row := range rows {
		m, err := conv(row)
		if err != nil {
			c.logger.Warn("skipping malformed explorer record",
				zap.String("operation", operation),
				zap.Error(err))
			continue
		}
		out = append(out, m)
	}
	return out
}

// get performs one rate-limited, retried account-module request and returns
// the raw result payload.
func (c *Client) get(ctx context.Context, operation string, params url.Values) (result json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	err = retry.Do(ctx, c.cfg.Retry, func(ctx context.Context) error {
		body, reqErr := c.request(ctx, params)
		if reqErr != nil {
			return reqErr
		}

		var env envelope
		if decErr := json.Unmarshal(body, &env); decErr != nil {
			return fmt.Errorf("%s: decode envelope: %w", operation, ErrMalformedRecord)
		}
		if env.Status == "0" {
			// "No transactions found" is an empty result, not a failure.
			if strings.Contains(env.Message, "No transactions found") {
				result = json.RawMessage("[]")
				return nil
			}
			if strings.Contains(strings.ToLower(env.Message), "rate limit") ||
				strings.Contains(strings.ToLower(string(env.Result)), "rate limit") {
				return errTransient{fmt.Errorf("%s: %s", operation, env.Message)}
			}
			return fmt.Errorf("%s: explorer error: %s", operation, env.Message)
		}
		result = env.Result
		return nil
	})
	return result, err
}

// proxyCall performs one module=proxy request, which follows JSON-RPC shape
// instead of the status/message envelope.
func (c *Client) proxyCall(ctx context.Context, operation string, params url.Values) (result json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	err = retry.Do(ctx, c.cfg.Retry, func(ctx context.Context) error {
		body, reqErr := c.request(ctx, params)
		if reqErr != nil {
			return reqErr
		}

		var env proxyEnvelope
		if decErr := json.Unmarshal(body, &env); decErr != nil {
			return fmt.Errorf("%s: decode envelope: %w", operation, ErrMalformedRecord)
		}
		if env.Error != nil {
			return fmt.Errorf("%s: rpc error %d: %s", operation, env.Error.Code, env.Error.Message)
		}
		result = env.Result
		return nil
	})
	return result, err
}

func (c *Client) request(ctx context.Context, params url.Values) ([]byte, error) {
	c.limiter.Take()

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	if c.cfg.APIKey != "" {
		q.Set("apikey", c.cfg.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errTransient{fmt.Errorf("explorer request: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, errTransient{fmt.Errorf("explorer status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errTransient{fmt.Errorf("read explorer response: %w", err)}
	}
	return body, nil
}
