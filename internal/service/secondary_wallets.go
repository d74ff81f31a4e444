package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// SecondaryWalletClassifier identifies the low-activity wallets a deployer
// routes tokens through before dumping. A wallet qualifies when it received
// the token directly from the deployer and its lifetime transaction count is
// below the low-activity threshold. Classification is per token; the same
// wallet can qualify for one token and not another as its history grows.
type SecondaryWalletClassifier struct {
	client ChainClient
	cfg    Config
	log    *zap.Logger

	// txCounts caches lifetime transaction counts across the tokens of a
	// single wallet analysis. Not safe for concurrent use.
	txCounts map[model.Address]int
}

func NewSecondaryWalletClassifier(client ChainClient, cfg Config, log *zap.Logger) *SecondaryWalletClassifier {
	return &SecondaryWalletClassifier{
		client:   client,
		cfg:      cfg,
		log:      log,
		txCounts: make(map[model.Address]int),
	}
}

// Classify returns the secondary wallets for one token, in the order they
// first received it from the deployer.
func (c *SecondaryWalletClassifier) Classify(ctx context.Context, deployer model.Address, transfers []model.TokenTransfer) ([]model.Address, error) {
	var secondaries []model.Address
	for _, candidate := range candidateRecipients(deployer, transfers) {
		count, err := c.activityCount(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if count >= c.cfg.LowActivityTxThreshold {
			continue
		}
		secondaries = append(secondaries, candidate)
	}
	if len(secondaries) > 0 {
		c.log.Debug("secondary wallets attributed",
			zap.String("deployer", string(deployer)),
			zap.Int("count", len(secondaries)))
	}
	return secondaries, nil
}

func (c *SecondaryWalletClassifier) activityCount(ctx context.Context, wallet model.Address) (int, error) {
	if count, ok := c.txCounts[wallet]; ok {
		return count, nil
	}
	txs, err := c.client.ListTransactions(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("activity count for %s: %w", wallet, err)
	}
	c.txCounts[wallet] = len(txs)
	return len(txs), nil
}

// candidateRecipients returns the distinct wallets that received the token
// directly from the deployer, in first-seen order.
func candidateRecipients(deployer model.Address, transfers []model.TokenTransfer) []model.Address {
	seen := make(map[model.Address]struct{})
	var out []model.Address
	for _, tr := range transfers {
		if !tr.From.Equal(deployer) {
			continue
		}
		if tr.To.IsZero() || tr.To.Equal(deployer) {
			continue
		}
		if _, ok := seen[tr.To]; ok {
			continue
		}
		seen[tr.To] = struct{}{}
		out = append(out, tr.To)
	}
	return out
}
