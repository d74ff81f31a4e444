package model

import "time"

// ViolationTag identifies one scoring signal that fired for a wallet.
type ViolationTag string

const (
	// ViolationKnownGrifter marks membership in the curated known-bad list.
	ViolationKnownGrifter ViolationTag = "known_grifter"
	// ViolationSerialDeployer marks a deployment count at or above the
	// high-volume threshold.
	ViolationSerialDeployer ViolationTag = "serial_deployer"
	// ViolationHighProfiteer marks aggregate profit above the threshold.
	ViolationHighProfiteer ViolationTag = "high_profiteer"
	// ViolationSybilNetwork marks victim or secondary-wallet counts above
	// their thresholds.
	ViolationSybilNetwork ViolationTag = "sybil_network"
	// ViolationQuickDumper marks a median time-to-first-sell below the
	// quick-dump threshold.
	ViolationQuickDumper ViolationTag = "quick_dumper"
	// ViolationPreBondSeller marks sells recorded before the token's
	// bonding window elapsed.
	ViolationPreBondSeller ViolationTag = "pre_bond_seller"
)

// Evidence is the structured payload attached to a blacklist entry. Fields
// are typed rather than a free-form map so consumers can handle each signal
// exhaustively. SecondaryWallets and VictimWallets are heuristic counts,
// probabilistic evidence rather than proof.
type Evidence struct {
	TokensDeployed         int      `json:"tokensDeployed"`
	TokensResolved         int      `json:"tokensResolved"`
	UnresolvedTokens       int      `json:"unresolvedTokens"`
	UnresolvedFactoryCalls int      `json:"unresolvedFactoryCalls"`
	ProfitableTokens       int      `json:"profitableTokens"`
	ProfitNative           float64  `json:"profitNative"`
	ProfitFiat             float64  `json:"profitFiat"`
	SuccessRate            float64  `json:"successRate"`
	SecondaryWallets       int      `json:"secondaryWallets"`
	VictimWallets          int      `json:"victimWallets"`
	MedianFirstSellSeconds *int64   `json:"medianFirstSellSeconds,omitempty"`
	PreBondSells           int      `json:"preBondSells"`
	PriceApproximate       bool     `json:"priceApproximate"`
	KnownBadLabel          string   `json:"knownBadLabel,omitempty"`
	SampleTokens           []string `json:"sampleTokens,omitempty"`
}

// BlacklistEntry is one flagged wallet with its evidence. Keyed uniquely by
// Address; re-flagging merges rather than duplicates.
type BlacklistEntry struct {
	Address        Address        `json:"address"`
	Reason         string         `json:"reason"`
	Evidence       Evidence       `json:"evidence"`
	RiskScore      int            `json:"riskScore"`
	Violations     []ViolationTag `json:"violations"`
	FirstFlaggedAt time.Time      `json:"firstFlaggedAt"`
	LastUpdatedAt  time.Time      `json:"lastUpdatedAt"`
}

// KnownBadEntry is one curated community-sourced bad actor.
type KnownBadEntry struct {
	Address Address `json:"address"`
	Label   string  `json:"label"`
}
