package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// Config carries every analysis threshold. Invalid configuration is fatal
// before any wallet is processed.
type Config struct {
	// FactoryAddresses are the launchpad factory/proxy contracts whose
	// calls create tokens through internal transactions.
	FactoryAddresses []model.Address

	// LowActivityTxThreshold is the lifetime transaction count below which
	// a token recipient counts as a candidate secondary wallet.
	LowActivityTxThreshold int

	// SelfPumpNativeThreshold is the total native buy amount above which a
	// deployer's buying of its own token is tagged as self-pumping.
	SelfPumpNativeThreshold float64

	// QuickDumpThreshold is the median time-to-first-sell below which the
	// quick-dumper signal fires.
	QuickDumpThreshold time.Duration

	// BondingWindow approximates the time between deployment and bonding;
	// sells inside it count as pre-bond sells. Zero disables the signal
	// (milestone not knowable).
	BondingWindow time.Duration

	// SerialDeployerThreshold is the deployment count that fires the
	// serial-deployer signal.
	SerialDeployerThreshold int

	// HighProfitNativeThreshold is the aggregate profit that fires the
	// high-profiteer signal.
	HighProfitNativeThreshold float64

	// MinVictims and MinSecondaryWallets fire the sybil-network signal.
	MinVictims          int
	MinSecondaryWallets int

	// MinBlacklistTokens and MinBlacklistProfitFiat flag a wallet for the
	// blacklist even without scored violations.
	MinBlacklistTokens     int
	MinBlacklistProfitFiat float64

	// WorkerCount bounds the number of wallets analyzed in parallel.
	WorkerCount int
}

// DefaultConfig mirrors the thresholds the launchpad trackers shipped with.
func DefaultConfig() Config {
	return Config{
		LowActivityTxThreshold:    100,
		SelfPumpNativeThreshold:   5.0,
		QuickDumpThreshold:        5 * time.Minute,
		BondingWindow:             10 * time.Minute,
		SerialDeployerThreshold:   50,
		HighProfitNativeThreshold: 10.0,
		MinVictims:                5,
		MinSecondaryWallets:       1,
		MinBlacklistTokens:        5,
		MinBlacklistProfitFiat:    100.0,
		WorkerCount:               4,
	}
}

// Validate rejects unusable configuration.
func (c Config) Validate() error {
	if len(c.FactoryAddresses) == 0 {
		return errors.New("at least one factory address is required")
	}
	for _, f := range c.FactoryAddresses {
		if f.IsZero() {
			return fmt.Errorf("invalid factory address %q", f)
		}
	}
	if c.LowActivityTxThreshold <= 0 {
		return errors.New("low-activity threshold must be positive")
	}
	if c.SelfPumpNativeThreshold < 0 {
		return errors.New("self-pump threshold must not be negative")
	}
	if c.QuickDumpThreshold <= 0 {
		return errors.New("quick-dump threshold must be positive")
	}
	if c.BondingWindow < 0 {
		return errors.New("bonding window must not be negative")
	}
	if c.SerialDeployerThreshold <= 0 {
		return errors.New("serial-deployer threshold must be positive")
	}
	if c.HighProfitNativeThreshold <= 0 {
		return errors.New("high-profit threshold must be positive")
	}
	if c.MinVictims <= 0 || c.MinSecondaryWallets <= 0 {
		return errors.New("victim and secondary-wallet thresholds must be positive")
	}
	if c.WorkerCount <= 0 {
		return errors.New("worker count must be positive")
	}
	return nil
}

// isFactory reports whether the address is a configured factory contract.
func (c Config) isFactory(addr model.Address) bool {
	for _, f := range c.FactoryAddresses {
		if f.Equal(addr) {
			return true
		}
	}
	return false
}
