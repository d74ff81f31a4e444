// Package pricing implements the native-currency price oracle with per-day
// caching.
package pricing

import (
	"context"
	"errors"
	"time"
)

// ErrPriceUnavailable is returned when the provider has no historical price
// for the requested day. Callers fall back to CurrentPrice and must flag the
// result as approximate.
var ErrPriceUnavailable = errors.New("historical price unavailable")

type (
	// Oracle resolves fiat-per-native prices. PriceAt is keyed by UTC day.
	Oracle interface {
		PriceAt(ctx context.Context, day time.Time) (float64, error)
		CurrentPrice(ctx context.Context) (float64, error)
	}

	// Metrics records call outcomes for the price provider.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
