package service

import (
	"sort"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// Signal weights. Additive; the total is clamped to [0, 100].
const (
	weightKnownGrifter   = 50
	weightSerialDeployer = 30
	weightHighProfiteer  = 20
	weightSybilNetwork   = 20
	weightQuickDumper    = 10
	weightPreBondSeller  = 10
)

// RiskScorer turns a wallet profile into a deterministic risk score.
// Scoring is pure: the same profile and configuration always yield the same
// score and the same violation set.
type RiskScorer struct {
	knownBad KnownBadList
	cfg      Config
}

func NewRiskScorer(knownBad KnownBadList, cfg Config) *RiskScorer {
	return &RiskScorer{knownBad: knownBad, cfg: cfg}
}

// ScoreResult carries the score plus the intermediate values that become
// blacklist evidence.
type ScoreResult struct {
	Score                  int
	Violations             []model.ViolationTag
	MedianFirstSellSeconds *int64
	PreBondSells           int
	KnownBadLabel          string
}

// Score evaluates every signal against the profile. Each signal contributes
// its fixed weight independently of the others.
func (s *RiskScorer) Score(profile model.WalletProfile) ScoreResult {
	var res ScoreResult
	score := 0
	add := func(tag model.ViolationTag, weight int) {
		res.Violations = append(res.Violations, tag)
		score += weight
	}

	if s.knownBad.Contains(profile.Wallet) {
		add(model.ViolationKnownGrifter, weightKnownGrifter)
		res.KnownBadLabel = s.knownBad.Label(profile.Wallet)
	}
	if len(profile.Deployments) >= s.cfg.SerialDeployerThreshold {
		add(model.ViolationSerialDeployer, weightSerialDeployer)
	}
	if profile.AggregateProfitNative >= s.cfg.HighProfitNativeThreshold {
		add(model.ViolationHighProfiteer, weightHighProfiteer)
	}
	if profile.TotalVictimWallets >= s.cfg.MinVictims || profile.TotalSecondaryWallets >= s.cfg.MinSecondaryWallets {
		add(model.ViolationSybilNetwork, weightSybilNetwork)
	}

	res.MedianFirstSellSeconds = medianFirstSell(profile.Lifecycles)
	if res.MedianFirstSellSeconds != nil &&
		time.Duration(*res.MedianFirstSellSeconds)*time.Second < s.cfg.QuickDumpThreshold {
		add(model.ViolationQuickDumper, weightQuickDumper)
	}
	for _, lc := range profile.Lifecycles {
		res.PreBondSells += lc.EarlySellCount
	}
	if res.PreBondSells > 0 {
		add(model.ViolationPreBondSeller, weightPreBondSeller)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	res.Score = score
	sort.Slice(res.Violations, func(i, j int) bool {
		return res.Violations[i] < res.Violations[j]
	})
	return res
}

// medianFirstSell computes the median time-to-first-sell across the tokens
// that were sold at all. Tokens never sold carry no latency and are
// excluded. Nil when nothing sold.
func medianFirstSell(lifecycles map[model.Address]model.TokenLifecycleResult) *int64 {
	var latencies []int64
	for _, lc := range lifecycles {
		if lc.FirstSellLatencySeconds != nil {
			latencies = append(latencies, *lc.FirstSellLatencySeconds)
		}
	}
	if len(latencies) == 0 {
		return nil
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	mid := len(latencies) / 2
	var median int64
	if len(latencies)%2 == 1 {
		median = latencies[mid]
	} else {
		median = (latencies[mid-1] + latencies[mid]) / 2
	}
	return &median
}
