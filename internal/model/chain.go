package model

import "time"

// Transaction is a top-level C-Chain transaction as reported by the explorer.
// To is empty for contract-creation transactions. Immutable once fetched.
type Transaction struct {
	Hash        string
	From        Address
	To          Address
	BlockNumber uint64
	Timestamp   time.Time
	ValueNative float64
}

// IsContractCreation reports whether the transaction created a contract
// directly (no recipient).
func (t Transaction) IsContractCreation() bool {
	return t.To == ""
}

// InternalTransaction is a side-effect of executing a parent transaction,
// including contract creations performed by factory contracts.
type InternalTransaction struct {
	ParentHash      string
	From            Address
	To              Address
	CreatedContract Address
	ValueNative     float64
}

// TokenTransfer is a fungible-token transfer event row.
type TokenTransfer struct {
	Hash        string
	Token       Address
	From        Address
	To          Address
	BlockNumber uint64
	Timestamp   time.Time
	// Amount is the token amount scaled by the token's decimals.
	Amount float64
}

// Log is a single receipt log entry.
type Log struct {
	Address Address
	Topics  []string
	Data    string
}

// TransactionReceipt carries the fields the analysis needs from
// eth_getTransactionReceipt.
type TransactionReceipt struct {
	TxHash          string
	ContractAddress Address
	Logs            []Log
}

// TransferTopic is the event signature hash of the fungible-token
// Transfer(address,address,uint256) event.
const TransferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
