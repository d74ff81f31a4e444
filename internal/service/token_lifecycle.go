package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/model"
	"github.com/arenawatch/arenawatch-backend/internal/pricing"
)

// LifecycleBuilder reconstructs the full buy/sell history of one deployed
// token: the deployer's own trades against native currency, sells routed
// through its secondary wallets, and the fiat value of each leg.
type LifecycleBuilder struct {
	client      ChainClient
	prices      PriceOracle
	secondaries *SecondaryWalletClassifier
	cfg         Config
	log         *zap.Logger
}

func NewLifecycleBuilder(client ChainClient, prices PriceOracle, secondaries *SecondaryWalletClassifier, cfg Config, log *zap.Logger) *LifecycleBuilder {
	return &LifecycleBuilder{
		client:      client,
		prices:      prices,
		secondaries: secondaries,
		cfg:         cfg,
		log:         log,
	}
}

// Build reconstructs the lifecycle of one deployment. walletTxs and
// walletInternals are the deployer's already-fetched transaction history,
// shared across the wallet's tokens. Profit is always sold minus bought; a
// token received for free and sold is pure profit, a token bought and never
// sold is pure loss.
func (b *LifecycleBuilder) Build(ctx context.Context, wallet model.Address, dep model.DeploymentRecord, walletTxs []model.Transaction, walletInternals []model.InternalTransaction) (model.TokenLifecycleResult, error) {
	result := model.TokenLifecycleResult{Token: dep.Token}

	transfers, err := b.client.ListTokenTransfers(ctx, wallet, dep.Token)
	if err != nil {
		return result, fmt.Errorf("token transfers for %s: %w", dep.Token, err)
	}
	holderTransfers, err := b.client.ListTokenHolderTransfers(ctx, dep.Token)
	if err != nil {
		return result, fmt.Errorf("holder transfers for %s: %w", dep.Token, err)
	}

	spentByHash := nativeSpentByHash(wallet, walletTxs)
	receivedByHash := nativeReceivedByHash(wallet, walletInternals)

	var trades []model.TradeEvent
	for _, tr := range transfers {
		switch {
		case tr.To.Equal(wallet):
			trades = append(trades, model.TradeEvent{
				Wallet:      wallet,
				Token:       dep.Token,
				Direction:   model.TradeBuy,
				ValueNative: spentByHash[tr.Hash],
				Timestamp:   tr.Timestamp,
			})
		case tr.From.Equal(wallet):
			trades = append(trades, model.TradeEvent{
				Wallet:      wallet,
				Token:       dep.Token,
				Direction:   model.TradeSell,
				ValueNative: receivedByHash[tr.Hash],
				Timestamp:   tr.Timestamp,
			})
		}
	}

	secondaries, err := b.secondaries.Classify(ctx, wallet, holderTransfers)
	if err != nil {
		return result, err
	}
	secondaryTrades, err := b.secondarySells(ctx, dep.Token, secondaries, holderTransfers)
	if err != nil {
		return result, err
	}
	trades = append(trades, secondaryTrades...)

	sort.Slice(trades, func(i, j int) bool {
		return trades[i].Timestamp.Before(trades[j].Timestamp)
	})
	if err := b.priceTrades(ctx, trades, &result); err != nil {
		return result, err
	}

	result.SecondaryWallets = secondaries
	for _, t := range trades {
		switch t.Direction {
		case model.TradeBuy:
			result.BuyCount++
			result.TotalBoughtNative += t.ValueNative
		case model.TradeSell:
			result.SellCount++
			result.TotalSoldNative += t.ValueNative
			if !t.AttributedVia.IsZero() {
				result.SecondarySellCount++
			}
			latency := int64(t.Timestamp.Sub(dep.Timestamp).Seconds())
			if result.FirstSellLatencySeconds == nil {
				l := latency
				result.FirstSellLatencySeconds = &l
			}
			if b.cfg.BondingWindow > 0 && t.Timestamp.Sub(dep.Timestamp) < b.cfg.BondingWindow {
				result.EarlySellCount++
			}
		}
	}
	result.ProfitNative = result.TotalSoldNative - result.TotalBoughtNative
	result.SelfPump = result.TotalBoughtNative > b.cfg.SelfPumpNativeThreshold
	if result.SellCount > 0 {
		result.VictimCount = countVictims(wallet, dep.Factory, secondaries, holderTransfers)
	}
	result.Trades = trades
	return result, nil
}

// secondarySells reconstructs the sells each secondary wallet performed,
// attributed back to the deployer.
func (b *LifecycleBuilder) secondarySells(ctx context.Context, token model.Address, secondaries []model.Address, holderTransfers []model.TokenTransfer) ([]model.TradeEvent, error) {
	var trades []model.TradeEvent
	for _, sec := range secondaries {
		internals, err := b.client.ListInternalTransactions(ctx, sec)
		if err != nil {
			return nil, fmt.Errorf("internal txs for secondary %s: %w", sec, err)
		}
		received := nativeReceivedByHash(sec, internals)
		for _, tr := range holderTransfers {
			if !tr.From.Equal(sec) {
				continue
			}
			trades = append(trades, model.TradeEvent{
				Wallet:        sec,
				Token:         token,
				Direction:     model.TradeSell,
				ValueNative:   received[tr.Hash],
				Timestamp:     tr.Timestamp,
				AttributedVia: sec,
			})
		}
	}
	return trades, nil
}

// priceTrades fills in the fiat value of every trade using the historical
// day price, falling back to the current price when history is unavailable.
// A fallback marks the whole lifecycle approximate.
func (b *LifecycleBuilder) priceTrades(ctx context.Context, trades []model.TradeEvent, result *model.TokenLifecycleResult) error {
	for i := range trades {
		t := &trades[i]
		price, err := b.prices.PriceAt(ctx, t.Timestamp)
		if errors.Is(err, pricing.ErrPriceUnavailable) {
			price, err = b.prices.CurrentPrice(ctx)
			if err != nil {
				return fmt.Errorf("price fallback for %s: %w", t.Timestamp.Format("2006-01-02"), err)
			}
			result.PriceApproximate = true
			b.log.Debug("historical price unavailable, using current",
				zap.String("token", string(result.Token)),
				zap.Time("day", t.Timestamp))
		} else if err != nil {
			return fmt.Errorf("price for %s: %w", t.Timestamp.Format("2006-01-02"), err)
		}
		t.ValueFiat = t.ValueNative * price
		switch t.Direction {
		case model.TradeBuy:
			result.ProfitFiat -= t.ValueFiat
		case model.TradeSell:
			result.ProfitFiat += t.ValueFiat
		}
	}
	return nil
}

// nativeSpentByHash maps transaction hash to the native value the wallet
// sent in it.
func nativeSpentByHash(wallet model.Address, txs []model.Transaction) map[string]float64 {
	out := make(map[string]float64, len(txs))
	for _, tx := range txs {
		if tx.From.Equal(wallet) {
			out[tx.Hash] += tx.ValueNative
		}
	}
	return out
}

// nativeReceivedByHash maps parent hash to the native value internal
// transactions delivered to the wallet, typically swap proceeds.
func nativeReceivedByHash(wallet model.Address, internals []model.InternalTransaction) map[string]float64 {
	out := make(map[string]float64, len(internals))
	for _, itx := range internals {
		if itx.To.Equal(wallet) {
			out[itx.ParentHash] += itx.ValueNative
		}
	}
	return out
}

// countVictims counts the distinct holders outside the deployer's network
// that received the token. A heuristic, only meaningful once the network
// has sold into those holders.
func countVictims(wallet, factory model.Address, secondaries []model.Address, holderTransfers []model.TokenTransfer) int {
	network := make(map[model.Address]struct{}, len(secondaries)+2)
	network[wallet] = struct{}{}
	if !factory.IsZero() {
		network[factory] = struct{}{}
	}
	for _, s := range secondaries {
		network[s] = struct{}{}
	}
	victims := make(map[model.Address]struct{})
	for _, tr := range holderTransfers {
		if tr.To.IsZero() {
			continue
		}
		if _, ok := network[tr.To]; ok {
			continue
		}
		victims[tr.To] = struct{}{}
	}
	return len(victims)
}
