package model

import (
	"sort"
	"time"
)

// DeploymentMethod describes how a token contract came into existence.
type DeploymentMethod string

const (
	// DeploymentDirect is a plain contract-creation transaction.
	DeploymentDirect DeploymentMethod = "direct"
	// DeploymentFactory is a creation performed by a factory/proxy contract
	// inside an internal transaction.
	DeploymentFactory DeploymentMethod = "factory"
)

// DeploymentRecord is one discovered token deployment. Unique by Token
// within a run; Factory is set iff Method is DeploymentFactory.
type DeploymentRecord struct {
	Token       Address          `json:"token"`
	Deployer    Address          `json:"deployer"`
	TxHash      string           `json:"txHash"`
	BlockNumber uint64           `json:"blockNumber"`
	Timestamp   time.Time        `json:"timestamp"`
	Method      DeploymentMethod `json:"method"`
	Factory     Address          `json:"factory,omitempty"`
}

// TradeDirection classifies a trade event.
type TradeDirection string

const (
	TradeBuy  TradeDirection = "buy"
	TradeSell TradeDirection = "sell"
)

// TradeEvent is one reconstructed buy or sell of a token against native
// currency. AttributedVia is empty for the analyzed wallet itself and holds
// the secondary wallet address when the trade was routed through one.
type TradeEvent struct {
	Wallet        Address        `json:"wallet"`
	Token         Address        `json:"token"`
	Direction     TradeDirection `json:"direction"`
	ValueNative   float64        `json:"valueNative"`
	ValueFiat     float64        `json:"valueFiat"`
	Timestamp     time.Time      `json:"timestamp"`
	AttributedVia Address        `json:"attributedVia,omitempty"`
}

// TokenLifecycleResult aggregates the reconstructed trade history of one
// (wallet, token) pair. ProfitNative is always TotalSold - TotalBought;
// sells routed through secondary wallets are included in TotalSold.
type TokenLifecycleResult struct {
	Token              Address   `json:"token"`
	TotalBoughtNative  float64   `json:"totalBoughtNative"`
	TotalSoldNative    float64   `json:"totalSoldNative"`
	ProfitNative       float64   `json:"profitNative"`
	ProfitFiat         float64   `json:"profitFiat"`
	BuyCount           int       `json:"buyCount"`
	SellCount          int       `json:"sellCount"`
	SecondarySellCount int       `json:"secondarySellCount"`
	SecondaryWallets   []Address `json:"secondaryWallets,omitempty"`
	// FirstSellLatencySeconds is the gap between deployment and the first
	// sell, nil when the network never sold.
	FirstSellLatencySeconds *int64       `json:"firstSellLatencySeconds,omitempty"`
	EarlySellCount          int          `json:"earlySellCount"`
	SelfPump                bool         `json:"selfPump"`
	PriceApproximate        bool         `json:"priceApproximate"`
	VictimCount             int          `json:"victimCount"`
	Trades                  []TradeEvent `json:"trades,omitempty"`
}

// WalletProfile is the per-wallet analysis output, rebuilt from scratch each
// run. Every aggregate is paired with the unresolved counts so consumers can
// tell "no findings" from "no data".
type WalletProfile struct {
	Wallet                 Address                          `json:"wallet"`
	BalanceNative          float64                          `json:"balanceNative"`
	Deployments            []DeploymentRecord               `json:"deployments"`
	Lifecycles             map[Address]TokenLifecycleResult `json:"lifecycles"`
	UnresolvedTokens       int                              `json:"unresolvedTokens"`
	UnresolvedFactoryCalls int                              `json:"unresolvedFactoryCalls"`
	ResolvedTokens         int                              `json:"resolvedTokens"`
	ProfitableTokens       int                              `json:"profitableTokens"`
	AggregateProfitNative  float64                          `json:"aggregateProfitNative"`
	AggregateProfitFiat    float64                          `json:"aggregateProfitFiat"`
	TotalVictimWallets     int                              `json:"totalVictimWallets"`
	TotalSecondaryWallets  int                              `json:"totalSecondaryWallets"`
	// SuccessRate is the share of resolved tokens that closed profitable,
	// in percent. Zero when nothing resolved.
	SuccessRate      float64 `json:"successRate"`
	PriceApproximate bool    `json:"priceApproximate"`
}

// TopTokens returns the n most profitable lifecycles, best first.
func (p WalletProfile) TopTokens(n int) []TokenLifecycleResult {
	out := make([]TokenLifecycleResult, 0, len(p.Lifecycles))
	for _, lc := range p.Lifecycles {
		out = append(out, lc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProfitNative != out[j].ProfitNative {
			return out[i].ProfitNative > out[j].ProfitNative
		}
		return out[i].Token < out[j].Token
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// RunSummary aggregates a multi-wallet run.
type RunSummary struct {
	WalletsAnalyzed       int     `json:"walletsAnalyzed"`
	WalletsFailed         int     `json:"walletsFailed"`
	TokensDeployed        int     `json:"tokensDeployed"`
	TokensResolved        int     `json:"tokensResolved"`
	TokensUnresolved      int     `json:"tokensUnresolved"`
	ProfitableTokens      int     `json:"profitableTokens"`
	CombinedProfitNative  float64 `json:"combinedProfitNative"`
	CombinedProfitFiat    float64 `json:"combinedProfitFiat"`
	TotalSecondaryWallets int     `json:"totalSecondaryWallets"`
	TotalVictimWallets    int     `json:"totalVictimWallets"`
	OverallSuccessRate    float64 `json:"overallSuccessRate"`
}

// Summarize folds per-wallet profiles into a run summary. failed counts
// wallets whose analysis aborted entirely (e.g. canceled mid-run).
func Summarize(profiles []WalletProfile, failed int) RunSummary {
	s := RunSummary{WalletsAnalyzed: len(profiles), WalletsFailed: failed}
	for _, p := range profiles {
		s.TokensDeployed += len(p.Deployments)
		s.TokensResolved += p.ResolvedTokens
		s.TokensUnresolved += p.UnresolvedTokens
		s.ProfitableTokens += p.ProfitableTokens
		s.CombinedProfitNative += p.AggregateProfitNative
		s.CombinedProfitFiat += p.AggregateProfitFiat
		s.TotalSecondaryWallets += p.TotalSecondaryWallets
		s.TotalVictimWallets += p.TotalVictimWallets
	}
	if s.TokensResolved > 0 {
		s.OverallSuccessRate = float64(s.ProfitableTokens) / float64(s.TokensResolved) * 100
	}
	return s
}
