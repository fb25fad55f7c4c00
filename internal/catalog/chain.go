package catalog

import (
	"context"
	"fmt"
	"sync"

	"dexquery/internal/ledger"
	"dexquery/internal/model"
)

// CoinReader is the slice of the ledger client the chain source needs.
type CoinReader interface {
	CoinInfo(ctx context.Context, coinType string) (model.CoinInfo, error)
}

// ChainSource lists the devnet catalog from live on-chain registrations: the
// native gas coin plus every synthetic test coin. Any single lookup failure
// fails the whole call, since a missing synthetic coin means the environment
// is misconfigured.
type ChainSource struct {
	reader CoinReader
	module string
}

func NewChainSource(reader CoinReader, moduleAddress string) *ChainSource {
	return &ChainSource{reader: reader, module: moduleAddress}
}

// ListCoins reads every catalog member concurrently.
func (s *ChainSource) ListCoins(ctx context.Context) ([]model.CoinInfo, error) {
	coinTypes := make([]string, 0, len(SyntheticCoins)+1)
	coinTypes = append(coinTypes, ledger.NativeCoinType)
	for _, symbol := range SyntheticCoins {
		coinTypes = append(coinTypes, ledger.FakeCoinType(s.module, symbol))
	}

	coins := make([]model.CoinInfo, len(coinTypes))
	errs := make([]error, len(coinTypes))

	var wg sync.WaitGroup
	for i, coinType := range coinTypes {
		wg.Add(1)
		go func(i int, coinType string) {
			defer wg.Done()
			coins[i], errs[i] = s.reader.CoinInfo(ctx, coinType)
		}(i, coinType)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, coinTypes[i], err)
		}
	}
	return coins, nil
}
