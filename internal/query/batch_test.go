package query

import (
	"context"
	"encoding/json"
	"testing"

	"dexquery/internal/ledger"
	"dexquery/internal/model"
)

func poolFixture() ledger.PoolResource {
	return ledger.PoolResource{
		XReserve: ledger.Coin{Value: "1000000"},
		YReserve: ledger.Coin{Value: "500000000"},
		LPSupply: ledger.Coin{Value: "2000000"},
		FeeBps:   "30",
	}
}

func marketFixture() ledger.MarketResource {
	return ledger.MarketResource{
		LotSize:  "100000000",
		TickSize: "10000",
		L2:       ledger.L2Resource{},
	}
}

func TestReadPoolsFiltersAbsent(t *testing.T) {
	fake := newFakeLedger()
	seedPairCoins(fake)
	fake.addPool(t, model.PoolKey{CoinX: coinA, CoinY: coinB}, poolFixture())

	keys := []model.PoolKey{
		{CoinX: "0xu::coin::Unknown", CoinY: coinB},
		{CoinX: coinA, CoinY: coinB},
		{CoinX: coinA, CoinY: "0xu::coin::Unknown"},
	}

	pools, err := NewBatch(newTestReader(fake)).ReadPools(context.Background(), keys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 1 {
		t.Fatalf("expected 1 pool, got %d", len(pools))
	}
	if got := pools[0].Key(); got != (model.PoolKey{CoinX: coinA, CoinY: coinB}) {
		t.Fatalf("unexpected pool key: %+v", got)
	}
}

func TestReadPoolsEmptyBatch(t *testing.T) {
	fake := newFakeLedger()
	keys := []model.PoolKey{{CoinX: coinA, CoinY: coinB}}

	pools, err := NewBatch(newTestReader(fake)).ReadPools(context.Background(), keys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 0 {
		t.Fatalf("expected empty result, got %d pools", len(pools))
	}
}

func TestReadPoolsEnumeratesWhenNoKeys(t *testing.T) {
	fake := newFakeLedger()
	seedPairCoins(fake)
	fake.addCoin("0xc::coin::C", "Coin C", "C", 6)
	fake.addCoin(ledger.LPCoinType(testModule, coinA, "0xc::coin::C"), "LP A-C", "LP2", 6)
	fake.addPool(t, model.PoolKey{CoinX: coinA, CoinY: coinB}, poolFixture())
	fake.addPool(t, model.PoolKey{CoinX: coinA, CoinY: "0xc::coin::C"}, poolFixture())

	pools, err := NewBatch(newTestReader(fake)).ReadPools(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(pools))
	}
}

func TestReadPoolsPreservesKeyOrder(t *testing.T) {
	fake := newFakeLedger()
	seedPairCoins(fake)
	fake.addCoin("0xc::coin::C", "Coin C", "C", 6)
	fake.addCoin(ledger.LPCoinType(testModule, coinA, "0xc::coin::C"), "LP A-C", "LP2", 6)
	fake.addPool(t, model.PoolKey{CoinX: coinA, CoinY: coinB}, poolFixture())
	fake.addPool(t, model.PoolKey{CoinX: coinA, CoinY: "0xc::coin::C"}, poolFixture())

	keys := []model.PoolKey{
		{CoinX: coinA, CoinY: "0xc::coin::C"},
		{CoinX: coinA, CoinY: coinB},
	}

	pools, err := NewBatch(newTestReader(fake)).ReadPools(context.Background(), keys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(pools))
	}
	if pools[0].CoinInfoY.CoinType != "0xc::coin::C" || pools[1].CoinInfoY.CoinType != coinB {
		t.Fatalf("key order not preserved: %+v", pools)
	}
}

func TestReadMarketsDropsFailedEntries(t *testing.T) {
	fake := newFakeLedger()
	fake.addCoin(coinA, "Coin A", "A", 6)
	fake.addCoin(coinB, "Coin B", "B", 8)
	fake.addMarket(t, model.MarketKey{BaseCoinType: coinB, QuoteCoinType: coinA}, marketFixture())

	// Corrupt second market: present on the ledger but undecodable.
	corrupt := model.MarketKey{BaseCoinType: coinA, QuoteCoinType: coinB}
	fake.resources[resourceKey(testModule, ledger.MarketType(testModule, corrupt.BaseCoinType, corrupt.QuoteCoinType))] = json.RawMessage(`["bad"]`)
	fake.markets = append(fake.markets, corrupt)

	markets, err := NewBatch(newTestReader(fake)).ReadMarkets(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(markets) != 1 {
		t.Fatalf("expected 1 market, got %d", len(markets))
	}
	if got := markets[0].Key(); got != (model.MarketKey{BaseCoinType: coinB, QuoteCoinType: coinA}) {
		t.Fatalf("unexpected market key: %+v", got)
	}
}
