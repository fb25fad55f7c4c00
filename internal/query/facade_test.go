package query

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"dexquery/internal/ledger"
	"dexquery/internal/model"
)

type stubSource struct {
	coins []model.CoinInfo
	err   error
}

func (s *stubSource) ListCoins(_ context.Context) ([]model.CoinInfo, error) {
	return s.coins, s.err
}

func newTestService(fake *fakeLedger, source *stubSource) *Service {
	if source == nil {
		source = &stubSource{}
	}
	return NewService(Config{ModuleAddress: testModule}, fake, source, nil)
}

func seedAuxCoin(fake *fakeLedger) {
	auxType := ledger.AuxCoinType(testModule)
	fake.addCoin(auxType, "Aux Coin", "AUX", 6)
}

func TestCoinsDelegatesToCatalog(t *testing.T) {
	want := []model.CoinInfo{{CoinType: coinA, Name: "Coin A", Symbol: "A", Decimals: 6}}
	svc := newTestService(newFakeLedger(), &stubSource{coins: want})

	got, err := svc.Coins(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("coins mismatch: %+v != %+v", got, want)
	}
}

func TestPoolQueryAbsentIsNil(t *testing.T) {
	svc := newTestService(newFakeLedger(), nil)

	if pool := svc.Pool(context.Background(), model.PoolKey{CoinX: coinA, CoinY: coinB}); pool != nil {
		t.Fatalf("expected nil pool, got %+v", pool)
	}
}

func TestPoolQueryCollapsesFailure(t *testing.T) {
	fake := newFakeLedger()
	seedPairCoins(fake)
	fake.addPool(t, model.PoolKey{CoinX: coinA, CoinY: coinB}, ledger.PoolResource{
		XReserve: ledger.Coin{Value: "bad"},
		YReserve: ledger.Coin{Value: "1"},
		LPSupply: ledger.Coin{Value: "1"},
		FeeBps:   "30",
	})

	if pool := newTestService(fake, nil).Pool(context.Background(), model.PoolKey{CoinX: coinA, CoinY: coinB}); pool != nil {
		t.Fatalf("expected nil pool on failure, got %+v", pool)
	}
}

func TestMarketQueryCollapsesFailure(t *testing.T) {
	fake := newFakeLedger()
	fake.addCoin(coinA, "Coin A", "A", 6)
	fake.addCoin(coinB, "Coin B", "B", 8)
	key := model.MarketKey{BaseCoinType: coinB, QuoteCoinType: coinA}
	fake.resources[resourceKey(testModule, ledger.MarketType(testModule, key.BaseCoinType, key.QuoteCoinType))] = json.RawMessage(`["bad"]`)

	if market := newTestService(fake, nil).Market(context.Background(), key); market != nil {
		t.Fatalf("expected nil market on failure, got %+v", market)
	}
}

func TestMarketsAttachReferenceCoin(t *testing.T) {
	fake := newFakeLedger()
	seedAuxCoin(fake)
	fake.addCoin(coinA, "Coin A", "A", 6)
	fake.addCoin(coinB, "Coin B", "B", 8)
	fake.addCoin("0xc::coin::C", "Coin C", "C", 6)
	fake.addMarket(t, model.MarketKey{BaseCoinType: coinB, QuoteCoinType: coinA}, marketFixture())
	fake.addMarket(t, model.MarketKey{BaseCoinType: "0xc::coin::C", QuoteCoinType: coinA}, marketFixture())

	markets, err := newTestService(fake, nil).Markets(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(markets) != 2 {
		t.Fatalf("expected 2 markets, got %d", len(markets))
	}
	for _, market := range markets {
		if market.AuxCoinInfo == nil || market.AuxCoinInfo.Symbol != "AUX" {
			t.Fatalf("reference coin not attached: %+v", market.AuxCoinInfo)
		}
	}
}

func TestMarketsFailWithoutReferenceCoin(t *testing.T) {
	fake := newFakeLedger()
	fake.addCoin(coinA, "Coin A", "A", 6)
	fake.addCoin(coinB, "Coin B", "B", 8)
	fake.addMarket(t, model.MarketKey{BaseCoinType: coinB, QuoteCoinType: coinA}, marketFixture())

	if _, err := newTestService(fake, nil).Markets(context.Background(), nil); err == nil {
		t.Fatalf("expected error when reference coin is unreadable")
	}
}

func TestMarketCoinsDedupesFirstSeen(t *testing.T) {
	fake := newFakeLedger()
	seedAuxCoin(fake)
	fake.addCoin(coinA, "Coin A", "A", 6)
	fake.addCoin(coinB, "Coin B", "B", 8)
	fake.addCoin("0xc::coin::C", "Coin C", "C", 6)
	fake.addMarket(t, model.MarketKey{BaseCoinType: coinB, QuoteCoinType: coinA}, marketFixture())
	fake.addMarket(t, model.MarketKey{BaseCoinType: "0xc::coin::C", QuoteCoinType: coinA}, marketFixture())

	svc := newTestService(fake, nil)
	coins, err := svc.MarketCoins(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{coinB, coinA, "0xc::coin::C"}
	if len(coins) != len(wantOrder) {
		t.Fatalf("expected %d coins, got %d: %+v", len(wantOrder), len(coins), coins)
	}
	for i, coinType := range wantOrder {
		if coins[i].CoinType != coinType {
			t.Fatalf("coin order mismatch at %d: got %s want %s", i, coins[i].CoinType, coinType)
		}
	}

	// Same underlying state, same order.
	again, err := svc.MarketCoins(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(coins, again) {
		t.Fatalf("market coins not stable across calls: %+v != %+v", coins, again)
	}
}

func TestAccountQuery(t *testing.T) {
	fake := newFakeLedger()
	svc := newTestService(fake, nil)

	account, err := svc.Account(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Address != "0xabc" || account.HasAuxAccount {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestAddress(t *testing.T) {
	svc := newTestService(newFakeLedger(), nil)
	if got := svc.Address(); got != testModule {
		t.Fatalf("address mismatch: %q", got)
	}
}
