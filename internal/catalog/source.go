package catalog

import (
	"context"
	"errors"

	"dexquery/internal/model"
)

// ErrUnavailable reports that the coin catalog could not be produced. A
// caller must receive either a complete catalog or this error, never a
// silently partial list.
var ErrUnavailable = errors.New("coin catalog unavailable")

// Source produces the full list of known coins. A deployment selects one
// implementation at startup and never switches per call.
type Source interface {
	ListCoins(ctx context.Context) ([]model.CoinInfo, error)
}

// SyntheticCoins is the fixed set of test coins registered under the
// exchange module on non-production ledgers.
var SyntheticCoins = []string{"USDC", "USDT", "BTC", "ETH", "SOL"}
