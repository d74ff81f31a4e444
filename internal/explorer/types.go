package explorer

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// envelope is the etherscan-style response wrapper. Result stays raw because
// the API returns either an array or a bare string depending on status.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// proxyEnvelope wraps module=proxy responses, which follow JSON-RPC shape.
type proxyEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// txRow is one row of module=account&action=txlist.
type txRow struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Value       string `json:"value"`
}

func (r txRow) toModel() (model.Transaction, error) {
	if r.Hash == "" {
		return model.Transaction{}, fmt.Errorf("transaction row missing hash: %w", ErrMalformedRecord)
	}
	block, err := parseUint(r.BlockNumber)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s block number %q: %w", r.Hash, r.BlockNumber, ErrMalformedRecord)
	}
	ts, err := parseUnix(r.TimeStamp)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s timestamp %q: %w", r.Hash, r.TimeStamp, ErrMalformedRecord)
	}
	return model.Transaction{
		Hash:        r.Hash,
		From:        model.NormalizeAddress(r.From),
		To:          model.NormalizeAddress(r.To),
		BlockNumber: block,
		Timestamp:   ts,
		ValueNative: weiToNative(r.Value),
	}, nil
}

// internalTxRow is one row of module=account&action=txlistinternal.
type internalTxRow struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	Value           string `json:"value"`
}

func (r internalTxRow) toModel() (model.InternalTransaction, error) {
	if r.Hash == "" {
		return model.InternalTransaction{}, fmt.Errorf("internal transaction row missing parent hash: %w", ErrMalformedRecord)
	}
	return model.InternalTransaction{
		ParentHash:      r.Hash,
		From:            model.NormalizeAddress(r.From),
		To:              model.NormalizeAddress(r.To),
		CreatedContract: model.NormalizeAddress(r.ContractAddress),
		ValueNative:     weiToNative(r.Value),
	}, nil
}

// tokenTxRow is one row of module=account&action=tokentx.
type tokenTxRow struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Value           string `json:"value"`
	TokenDecimal    string `json:"tokenDecimal"`
}

func (r tokenTxRow) toModel() (model.TokenTransfer, error) {
	if r.Hash == "" || r.ContractAddress == "" {
		return model.TokenTransfer{}, fmt.Errorf("token transfer row missing hash or contract: %w", ErrMalformedRecord)
	}
	block, err := parseUint(r.BlockNumber)
	if err != nil {
		return model.TokenTransfer{}, fmt.Errorf("token transfer %s block number %q: %w", r.Hash, r.BlockNumber, ErrMalformedRecord)
	}
	ts, err := parseUnix(r.TimeStamp)
	if err != nil {
		return model.TokenTransfer{}, fmt.Errorf("token transfer %s timestamp %q: %w", r.Hash, r.TimeStamp, ErrMalformedRecord)
	}
	decimals := 18
	if r.TokenDecimal != "" {
		if d, derr := strconv.Atoi(r.TokenDecimal); derr == nil && d >= 0 && d <= 36 {
			decimals = d
		}
	}
	return model.TokenTransfer{
		Hash:        r.Hash,
		Token:       model.NormalizeAddress(r.ContractAddress),
		From:        model.NormalizeAddress(r.From),
		To:          model.NormalizeAddress(r.To),
		BlockNumber: block,
		Timestamp:   ts,
		Amount:      scaledAmount(r.Value, decimals),
	}, nil
}

// receiptResult is the module=proxy eth_getTransactionReceipt payload.
type receiptResult struct {
	TransactionHash string `json:"transactionHash"`
	ContractAddress string `json:"contractAddress"`
	Logs            []struct {
		Address string   `json:"address"`
		Topics  []string `json:"topics"`
		Data    string   `json:"data"`
	} `json:"logs"`
}

func (r receiptResult) toModel() *model.TransactionReceipt {
	receipt := &model.TransactionReceipt{
		TxHash:          r.TransactionHash,
		ContractAddress: model.NormalizeAddress(r.ContractAddress),
	}
	for _, l := range r.Logs {
		receipt.Logs = append(receipt.Logs, model.Log{
			Address: model.NormalizeAddress(l.Address),
			Topics:  l.Topics,
			Data:    l.Data,
		})
	}
	return receipt
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseUnix(s string) (time.Time, error) {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, 0).UTC(), nil
}

var weiPerNative = new(big.Float).SetFloat64(1e18)

// weiToNative converts a decimal wei string into native units. Unparseable
// values come back as zero; the callers treat value-less rows as zero flows.
func weiToNative(wei string) float64 {
	if wei == "" || wei == "0" {
		return 0
	}
	f, ok := new(big.Float).SetString(wei)
	if !ok {
		return 0
	}
	out, _ := new(big.Float).Quo(f, weiPerNative).Float64()
	return out
}

// scaledAmount converts a raw token amount string by the token's decimals.
func scaledAmount(raw string, decimals int) float64 {
	if raw == "" || raw == "0" {
		return 0
	}
	f, ok := new(big.Float).SetString(raw)
	if !ok {
		return 0
	}
	scale := new(big.Float).SetFloat64(1)
	ten := new(big.Float).SetFloat64(10)
	for i := 0; i < decimals; i++ {
		scale.Mul(scale, ten)
	}
	out, _ := new(big.Float).Quo(f, scale).Float64()
	return out
}
