// Package service implements the wallet-behavior analysis pipeline:
// deployment discovery, token lifecycle reconstruction, secondary wallet
// attribution, risk scoring and blacklist registration.
package service

import (
	"context"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainClient supplies fully-drained chain data from the explorer.
	ChainClient interface {
		ListTransactions(ctx context.Context, address model.Address) ([]model.Transaction, error)
		ListInternalTransactions(ctx context.Context, address model.Address) ([]model.InternalTransaction, error)
		ListInternalTransactionsByHash(ctx context.Context, txHash string) ([]model.InternalTransaction, error)
		ListTokenTransfers(ctx context.Context, wallet, token model.Address) ([]model.TokenTransfer, error)
		ListTokenHolderTransfers(ctx context.Context, token model.Address) ([]model.TokenTransfer, error)
		TransactionReceipt(ctx context.Context, txHash string) (*model.TransactionReceipt, error)
		Code(ctx context.Context, address model.Address) ([]byte, error)
		Balance(ctx context.Context, address model.Address) (float64, error)
	}

	// PriceOracle resolves fiat prices, keyed by UTC day.
	PriceOracle interface {
		PriceAt(ctx context.Context, day time.Time) (float64, error)
		CurrentPrice(ctx context.Context) (float64, error)
	}

	// KnownBadList is the curated external list feeding the fixed-weight
	// scoring signal. Never mutated by the analysis.
	KnownBadList interface {
		Contains(address model.Address) bool
		Label(address model.Address) string
	}

	// BlacklistStore registers flagged wallets. Implementations serialize
	// upserts.
	BlacklistStore interface {
		Upsert(address model.Address, reason string, evidence model.Evidence, riskScore int, violations []model.ViolationTag)
	}
)
