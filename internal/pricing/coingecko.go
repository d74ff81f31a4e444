package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/clock"
	"github.com/arenawatch/arenawatch-backend/pkg/retry"
)

// CoinGeckoConfig carries the price provider settings.
type CoinGeckoConfig struct {
	BaseURL string
	// CoinID is the provider's asset identifier, avalanche-2 for AVAX.
	CoinID string
	// Currency is the fiat quote currency.
	Currency string
	Timeout  time.Duration
	Retry    retry.Policy
}

// Validate applies defaults and rejects unusable settings.
func (c *CoinGeckoConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("coingecko base url is required")
	}
	if c.CoinID == "" {
		c.CoinID = "avalanche-2"
	}
	if c.Currency == "" {
		c.Currency = "usd"
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Retry.MaxAttempts <= 0 {
		c.Retry = retry.DefaultPolicy()
	}
	return nil
}

// CoinGecko is the Oracle implementation backed by the CoinGecko REST API.
type CoinGecko struct {
	cfg        CoinGeckoConfig
	httpClient *http.Client
	metrics    Metrics
}

// NewCoinGecko constructs the provider client.
func NewCoinGecko(cfg CoinGeckoConfig, metrics Metrics) (*CoinGecko, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Retry.Classify = func(err error) retry.Class {
		if errors.Is(err, ErrPriceUnavailable) {
			return retry.Permanent
		}
		return retry.Transient
	}
	return &CoinGecko{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    metrics,
	}, nil
}

type historyResponse struct {
	MarketData *struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}

// PriceAt returns the fiat price of the native asset on the given UTC day.
func (c *CoinGecko) PriceAt(ctx context.Context, day time.Time) (price float64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("price_at", err, started)
	}()

	day = clock.UTCDay(day)
	endpoint := fmt.Sprintf("%s/coins/%s/history?%s", c.cfg.BaseURL, c.cfg.CoinID, url.Values{
		"date":         {day.Format("02-01-2006")},
		"localization": {"false"},
	}.Encode())

	var res historyResponse
	if err = c.fetch(ctx, endpoint, &res); err != nil {
		return 0, err
	}
	if res.MarketData == nil {
		return 0, fmt.Errorf("no market data for %s: %w", day.Format("2006-01-02"), ErrPriceUnavailable)
	}
	price, ok := res.MarketData.CurrentPrice[c.cfg.Currency]
	if !ok {
		return 0, fmt.Errorf("no %s quote for %s: %w", c.cfg.Currency, day.Format("2006-01-02"), ErrPriceUnavailable)
	}
	return price, nil
}

// CurrentPrice returns the current fiat price of the native asset.
func (c *CoinGecko) CurrentPrice(ctx context.Context) (price float64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("current_price", err, started)
	}()

	endpoint := fmt.Sprintf("%s/simple/price?%s", c.cfg.BaseURL, url.Values{
		"ids":           {c.cfg.CoinID},
		"vs_currencies": {c.cfg.Currency},
	}.Encode())

	var res map[string]map[string]float64
	if err = c.fetch(ctx, endpoint, &res); err != nil {
		return 0, err
	}
	price, ok := res[c.cfg.CoinID][c.cfg.Currency]
	if !ok {
		return 0, fmt.Errorf("no current %s quote: %w", c.cfg.Currency, ErrPriceUnavailable)
	}
	return price, nil
}

func (c *CoinGecko) fetch(ctx context.Context, endpoint string, out any) error {
	return retry.Do(ctx, c.cfg.Retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("price provider status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			// Missing history days come back 4xx; not worth retrying.
			return fmt.Errorf("price provider status %d: %w", resp.StatusCode, ErrPriceUnavailable)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, out)
	})
}
