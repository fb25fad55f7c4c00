package query

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"dexquery/internal/model"
)

// Batch fans out independent entity reads and collates the survivors.
// Absent and failed entries are dropped; a batch never fails because one
// entity did. Results keep the requested/enumerated key order.
type Batch struct {
	reader *Reader
}

func NewBatch(reader *Reader) *Batch {
	return &Batch{reader: reader}
}

// ReadPools resolves many pools concurrently. Nil keys means "every pool
// the ledger knows about".
func (b *Batch) ReadPools(ctx context.Context, keys []model.PoolKey) ([]model.Pool, error) {
	if keys == nil {
		var err error
		keys, err = b.reader.ledger.ListPools(ctx)
		if err != nil {
			return nil, err
		}
	}

	results := make([]*model.Pool, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key model.PoolKey) {
			defer wg.Done()
			pool, err := b.reader.ReadPool(ctx, key)
			if err != nil {
				b.reader.logger.Warn("pool read failed",
					zap.String("coin_x", key.CoinX),
					zap.String("coin_y", key.CoinY),
					zap.Error(err),
				)
				return
			}
			results[i] = pool
		}(i, key)
	}
	wg.Wait()

	pools := make([]model.Pool, 0, len(keys))
	for _, pool := range results {
		if pool != nil {
			pools = append(pools, *pool)
		}
	}
	return pools, nil
}

// ReadMarkets resolves many markets concurrently. Nil keys means "every
// listed market".
func (b *Batch) ReadMarkets(ctx context.Context, keys []model.MarketKey) ([]model.Market, error) {
	if keys == nil {
		var err error
		keys, err = b.reader.ledger.ListMarkets(ctx)
		if err != nil {
			return nil, err
		}
	}

	results := make([]*model.Market, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key model.MarketKey) {
			defer wg.Done()
			market, err := b.reader.ReadMarket(ctx, key)
			if err != nil {
				b.reader.logger.Warn("market read failed",
					zap.String("base", key.BaseCoinType),
					zap.String("quote", key.QuoteCoinType),
					zap.Error(err),
				)
				return
			}
			results[i] = market
		}(i, key)
	}
	wg.Wait()

	markets := make([]model.Market, 0, len(keys))
	for _, market := range results {
		if market != nil {
			markets = append(markets, *market)
		}
	}
	return markets, nil
}
