package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/blacklist"
	"github.com/arenawatch/arenawatch-backend/internal/explorer"
	"github.com/arenawatch/arenawatch-backend/internal/metrics"
	"github.com/arenawatch/arenawatch-backend/internal/model"
	"github.com/arenawatch/arenawatch-backend/internal/pricing"
	chrepo "github.com/arenawatch/arenawatch-backend/internal/repository/clickhouse"
	"github.com/arenawatch/arenawatch-backend/internal/service"
)

type config struct {
	ExplorerURL    string        `long:"explorer-url" env:"ANALYZER_EXPLORER_URL" default:"https://api.snowtrace.io/api" description:"etherscan-style explorer API URL"`
	ExplorerAPIKey string        `long:"explorer-api-key" env:"ANALYZER_EXPLORER_API_KEY" description:"explorer API key"`
	ExplorerRPS    int           `long:"explorer-rps" env:"ANALYZER_EXPLORER_RPS" default:"5" description:"explorer requests per second"`
	CoinGeckoURL   string        `long:"coingecko-url" env:"ANALYZER_COINGECKO_URL" default:"https://api.coingecko.com/api/v3" description:"price API URL"`
	RedisAddr      string        `long:"redis-addr" env:"ANALYZER_REDIS_ADDR" description:"optional Redis address for the shared price cache"`
	RedisPrefix    string        `long:"redis-prefix" env:"ANALYZER_REDIS_PREFIX" default:"arenawatch" description:"Redis key prefix"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"ANALYZER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for blacklist persistence"`
	KnownBadFile   string        `long:"known-bad-file" env:"ANALYZER_KNOWN_BAD_FILE" description:"JSON file with curated bad actors"`
	ReportFile     string        `long:"report-file" env:"ANALYZER_REPORT_FILE" description:"write the run report JSON to this path"`
	Wallets        []string      `long:"wallet" env:"ANALYZER_WALLETS" env-delim:"," required:"true" description:"wallet address to analyze, repeatable"`
	Factories      []string      `long:"factory" env:"ANALYZER_FACTORIES" env-delim:"," required:"true" description:"launchpad factory contract address, repeatable"`
	Workers        int           `long:"workers" env:"ANALYZER_WORKERS" default:"4" description:"concurrent wallet analyses"`
	BondingWindow  time.Duration `long:"bonding-window" env:"ANALYZER_BONDING_WINDOW" default:"10m" description:"estimated deploy-to-bond window"`
	QuickDump      time.Duration `long:"quick-dump-threshold" env:"ANALYZER_QUICK_DUMP_THRESHOLD" default:"5m" description:"median first-sell latency that counts as dumping"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"ANALYZER_HTTP_TIMEOUT" default:"15s" description:"HTTP timeout for outbound API calls"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("analyzer failed", zap.Error(err))
	}
}

type report struct {
	Summary   model.RunSummary                              `json:"summary"`
	Profiles  []model.WalletProfile                         `json:"profiles"`
	Blacklist []model.BlacklistEntry                        `json:"blacklist"`
	BuyLimits map[model.Address][]service.BuyLimitViolation `json:"buyLimitViolations,omitempty"`
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	chainClient, err := explorer.NewClient(explorer.Config{
		BaseURL:           cfg.ExplorerURL,
		APIKey:            cfg.ExplorerAPIKey,
		RequestsPerSecond: cfg.ExplorerRPS,
		Timeout:           cfg.HTTPTimeout,
	}, metrics.NewExplorerClient(), logger)
	if err != nil {
		return fmt.Errorf("init explorer client: %w", err)
	}

	gecko, err := pricing.NewCoinGecko(pricing.CoinGeckoConfig{
		BaseURL: cfg.CoinGeckoURL,
		Timeout: cfg.HTTPTimeout,
	}, metrics.NewPriceOracle())
	if err != nil {
		return fmt.Errorf("init price provider: %w", err)
	}
	var shared pricing.SharedCache
	if cfg.RedisAddr != "" {
		shared = pricing.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.RedisPrefix)
	}
	oracle := pricing.NewCachedOracle(gecko, shared, logger)

	knownBad, err := loadKnownBad(cfg.KnownBadFile)
	if err != nil {
		return err
	}

	store := blacklist.NewStore()

	svcCfg := service.DefaultConfig()
	svcCfg.FactoryAddresses = normalizeAddresses(cfg.Factories)
	svcCfg.WorkerCount = cfg.Workers
	svcCfg.BondingWindow = cfg.BondingWindow
	svcCfg.QuickDumpThreshold = cfg.QuickDump

	analyzer, err := service.NewAnalyzer(chainClient, oracle, knownBad, store, svcCfg, logger)
	if err != nil {
		return err
	}

	profiles, summary := analyzer.Run(ctx, normalizeAddresses(cfg.Wallets))
	if err := ctx.Err(); err != nil {
		return err
	}

	buyLimits := make(map[model.Address][]service.BuyLimitViolation)
	for _, profile := range profiles {
		violations := service.CheckBuyLimitViolations(profile, svcCfg)
		if len(violations) == 0 {
			continue
		}
		buyLimits[profile.Wallet] = violations
		for _, v := range violations {
			logger.Warn("buy limit violation",
				zap.String("wallet", string(profile.Wallet)),
				zap.String("token", string(v.Token)),
				zap.Float64("boughtNative", v.BoughtNative),
				zap.Float64("recoveredPercent", v.RecoveredPercent))
		}
	}

	entries := store.All()
	logger.Info("blacklist assembled", zap.Int("entries", len(entries)))

	if cfg.ClickhouseDSN != "" {
		if err := persist(ctx, cfg.ClickhouseDSN, entries, logger); err != nil {
			return err
		}
	}

	if cfg.ReportFile != "" {
		if err := writeReport(cfg.ReportFile, report{
			Summary:   summary,
			Profiles:  profiles,
			Blacklist: entries,
			BuyLimits: buyLimits,
		}); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", cfg.ReportFile))
	}
	return nil
}

func persist(ctx context.Context, dsn string, entries []model.BlacklistEntry, logger *zap.Logger) error {
	repo, err := chrepo.NewRepository(dsn, metrics.NewRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()

	if err := repo.InsertBlacklistEntries(ctx, entries); err != nil {
		return fmt.Errorf("persist blacklist: %w", err)
	}
	logger.Info("blacklist persisted", zap.Int("entries", len(entries)))
	return nil
}

func loadKnownBad(path string) (*blacklist.KnownBadList, error) {
	if path == "" {
		return blacklist.NewKnownBadList(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read known-bad file: %w", err)
	}
	var entries []model.KnownBadEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse known-bad file: %w", err)
	}
	return blacklist.NewKnownBadList(entries), nil
}

func writeReport(path string, r report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func normalizeAddresses(raw []string) []model.Address {
	out := make([]model.Address, 0, len(raw))
	for _, r := range raw {
		addr := model.NormalizeAddress(r)
		if addr == "" {
			continue
		}
		out = append(out, addr)
	}
	return out
}
