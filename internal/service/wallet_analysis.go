package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/model"
	"github.com/arenawatch/arenawatch-backend/pkg/workerpool"
)

// sampleTokenLimit bounds the token addresses embedded in blacklist
// evidence.
const sampleTokenLimit = 5

// Analyzer runs the whole pipeline for a wallet: deployment discovery,
// per-token lifecycle reconstruction, scoring and blacklist registration.
type Analyzer struct {
	client    ChainClient
	prices    PriceOracle
	knownBad  KnownBadList
	blacklist BlacklistStore
	cfg       Config
	log       *zap.Logger
}

func NewAnalyzer(client ChainClient, prices PriceOracle, knownBad KnownBadList, blacklist BlacklistStore, cfg Config, log *zap.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyzer config: %w", err)
	}
	return &Analyzer{
		client:    client,
		prices:    prices,
		knownBad:  knownBad,
		blacklist: blacklist,
		cfg:       cfg,
		log:       log,
	}, nil
}

// Run analyzes every wallet with bounded parallelism. One wallet failing
// does not stop the rest; only context cancellation does. Returns the
// profiles that completed and a summary over them.
func (a *Analyzer) Run(ctx context.Context, wallets []model.Address) ([]model.WalletProfile, model.RunSummary) {
	results := workerpool.Collect(ctx, a.cfg.WorkerCount, wallets, a.AnalyzeWallet)

	profiles := make([]model.WalletProfile, 0, len(results))
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			a.log.Error("wallet analysis failed",
				zap.String("wallet", string(res.Item)),
				zap.Error(res.Err))
			continue
		}
		profiles = append(profiles, res.Out)
	}

	summary := model.Summarize(profiles, failed)
	a.log.Info("analysis run complete",
		zap.Int("walletsAnalyzed", summary.WalletsAnalyzed),
		zap.Int("walletsFailed", summary.WalletsFailed),
		zap.Int("tokensDeployed", summary.TokensDeployed),
		zap.Int("tokensUnresolved", summary.TokensUnresolved),
		zap.Float64("combinedProfitNative", summary.CombinedProfitNative),
		zap.Float64("combinedProfitFiat", summary.CombinedProfitFiat),
		zap.Float64("overallSuccessRate", summary.OverallSuccessRate))
	return profiles, summary
}

// AnalyzeWallet builds the wallet's profile from scratch and registers it on
// the blacklist when it crosses any flagging condition. A token whose
// lifecycle cannot be reconstructed is counted as unresolved and excluded
// from every aggregate rather than guessed at.
func (a *Analyzer) AnalyzeWallet(ctx context.Context, wallet model.Address) (model.WalletProfile, error) {
	wallet = model.NormalizeAddress(string(wallet))
	profile := model.WalletProfile{
		Wallet:     wallet,
		Lifecycles: make(map[model.Address]model.TokenLifecycleResult),
	}

	balance, err := a.client.Balance(ctx, wallet)
	if err != nil {
		return profile, fmt.Errorf("balance for %s: %w", wallet, err)
	}
	profile.BalanceNative = balance

	txs, err := a.client.ListTransactions(ctx, wallet)
	if err != nil {
		return profile, fmt.Errorf("transactions for %s: %w", wallet, err)
	}
	internals, err := a.client.ListInternalTransactions(ctx, wallet)
	if err != nil {
		return profile, fmt.Errorf("internal transactions for %s: %w", wallet, err)
	}

	detector := NewDeploymentDetector(a.client, a.cfg, a.log)
	deployments, unresolvedCalls, err := detector.Detect(ctx, wallet, txs)
	if err != nil {
		return profile, err
	}
	profile.Deployments = deployments
	profile.UnresolvedFactoryCalls = unresolvedCalls

	// One classifier per wallet so activity lookups are shared across its
	// tokens but never across concurrently analyzed wallets.
	classifier := NewSecondaryWalletClassifier(a.client, a.cfg, a.log)
	builder := NewLifecycleBuilder(a.client, a.prices, classifier, a.cfg, a.log)

	secondarySet := make(map[model.Address]struct{})
	for _, dep := range deployments {
		if err := ctx.Err(); err != nil {
			return profile, err
		}
		lc, err := builder.Build(ctx, wallet, dep, txs, internals)
		if err != nil {
			profile.UnresolvedTokens++
			a.log.Warn("token lifecycle unresolved",
				zap.String("wallet", string(wallet)),
				zap.String("token", string(dep.Token)),
				zap.Error(err))
			continue
		}
		profile.Lifecycles[dep.Token] = lc
		profile.ResolvedTokens++
		if lc.ProfitNative > 0 {
			profile.ProfitableTokens++
		}
		profile.AggregateProfitNative += lc.ProfitNative
		profile.AggregateProfitFiat += lc.ProfitFiat
		profile.TotalVictimWallets += lc.VictimCount
		profile.PriceApproximate = profile.PriceApproximate || lc.PriceApproximate
		for _, s := range lc.SecondaryWallets {
			secondarySet[s] = struct{}{}
		}
	}
	profile.TotalSecondaryWallets = len(secondarySet)
	if profile.ResolvedTokens > 0 {
		profile.SuccessRate = float64(profile.ProfitableTokens) / float64(profile.ResolvedTokens) * 100
	}

	scorer := NewRiskScorer(a.knownBad, a.cfg)
	score := scorer.Score(profile)
	a.maybeFlag(profile, score)

	a.log.Info("wallet analyzed",
		zap.String("wallet", string(wallet)),
		zap.Int("deployments", len(deployments)),
		zap.Int("resolved", profile.ResolvedTokens),
		zap.Int("unresolved", profile.UnresolvedTokens),
		zap.Float64("profitNative", profile.AggregateProfitNative),
		zap.Int("riskScore", score.Score))
	return profile, nil
}

// maybeFlag registers the wallet when any scored violation fired or when its
// raw deployment or profit volume crosses the standalone thresholds.
func (a *Analyzer) maybeFlag(profile model.WalletProfile, score ScoreResult) {
	volumeFlag := len(profile.Deployments) >= a.cfg.MinBlacklistTokens ||
		profile.AggregateProfitFiat >= a.cfg.MinBlacklistProfitFiat
	if len(score.Violations) == 0 && !volumeFlag {
		return
	}

	evidence := model.Evidence{
		TokensDeployed:         len(profile.Deployments),
		TokensResolved:         profile.ResolvedTokens,
		UnresolvedTokens:       profile.UnresolvedTokens,
		UnresolvedFactoryCalls: profile.UnresolvedFactoryCalls,
		ProfitableTokens:       profile.ProfitableTokens,
		ProfitNative:           profile.AggregateProfitNative,
		ProfitFiat:             profile.AggregateProfitFiat,
		SuccessRate:            profile.SuccessRate,
		SecondaryWallets:       profile.TotalSecondaryWallets,
		VictimWallets:          profile.TotalVictimWallets,
		MedianFirstSellSeconds: score.MedianFirstSellSeconds,
		PreBondSells:           score.PreBondSells,
		PriceApproximate:       profile.PriceApproximate,
		KnownBadLabel:          score.KnownBadLabel,
		SampleTokens:           sampleTokens(profile),
	}
	a.blacklist.Upsert(profile.Wallet, flagReason(score, volumeFlag), evidence, score.Score, score.Violations)
	a.log.Warn("wallet blacklisted",
		zap.String("wallet", string(profile.Wallet)),
		zap.Int("riskScore", score.Score),
		zap.Any("violations", score.Violations))
}

func flagReason(score ScoreResult, volumeFlag bool) string {
	if len(score.Violations) == 0 {
		return "deployment or profit volume above blacklist thresholds"
	}
	tags := make([]string, len(score.Violations))
	for i, v := range score.Violations {
		tags[i] = string(v)
	}
	reason := fmt.Sprintf("risk score %d: %s", score.Score, strings.Join(tags, ", "))
	if score.KnownBadLabel != "" {
		reason += fmt.Sprintf(" (listed as %q)", score.KnownBadLabel)
	}
	return reason
}

func sampleTokens(profile model.WalletProfile) []string {
	top := profile.TopTokens(sampleTokenLimit)
	out := make([]string, 0, len(top))
	for _, lc := range top {
		out = append(out, string(lc.Token))
	}
	return out
}

// BuyLimitViolation records a token whose deployer bought past the
// self-pump limit and then recovered most of the spend by selling.
type BuyLimitViolation struct {
	Token            model.Address `json:"token"`
	BoughtNative     float64       `json:"boughtNative"`
	RecoveredNative  float64       `json:"recoveredNative"`
	RecoveredPercent float64       `json:"recoveredPercent"`
}

// CheckBuyLimitViolations scans a profile for tokens where the wallet bought
// above the self-pump threshold and sold back at least 80% of it.
func CheckBuyLimitViolations(profile model.WalletProfile, cfg Config) []BuyLimitViolation {
	var out []BuyLimitViolation
	for _, lc := range profile.TopTokens(len(profile.Lifecycles)) {
		if lc.TotalBoughtNative <= cfg.SelfPumpNativeThreshold {
			continue
		}
		if lc.TotalSoldNative < 0.8*lc.TotalBoughtNative {
			continue
		}
		out = append(out, BuyLimitViolation{
			Token:            lc.Token,
			BoughtNative:     lc.TotalBoughtNative,
			RecoveredNative:  lc.TotalSoldNative,
			RecoveredPercent: lc.TotalSoldNative / lc.TotalBoughtNative * 100,
		})
	}
	return out
}
