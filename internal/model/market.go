package model

// MarketKey identifies an order-book market by its base/quote coin pair.
type MarketKey struct {
	BaseCoinType  string `json:"baseCoinType"`
	QuoteCoinType string `json:"quoteCoinType"`
}

// L2Quote is one aggregated price level of an order book.
type L2Quote struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// L2Snapshot is the aggregated order-book view, best price first on both
// sides. Ordering is taken from the ledger as-is, never re-sorted here.
type L2Snapshot struct {
	Bids []L2Quote `json:"bids"`
	Asks []L2Quote `json:"asks"`
}

// Market is the display-ready view of an order-book market. Lot and tick
// sizes carry three renderings: an approximate display number, an exact
// decimal-units string scaled by the relevant coin's decimals, and the raw
// on-chain integer string.
type Market struct {
	Name          string   `json:"name"`
	BaseCoinInfo  CoinInfo `json:"baseCoinInfo"`
	QuoteCoinInfo CoinInfo `json:"quoteCoinInfo"`

	LotSize  float64 `json:"lotSize"`
	TickSize float64 `json:"tickSize"`

	LotSizeDecimals  string `json:"lotSizeDecimals"`
	TickSizeDecimals string `json:"tickSizeDecimals"`

	LotSizeString  string `json:"lotSizeString"`
	TickSizeString string `json:"tickSizeString"`

	Orderbook L2Snapshot `json:"orderbook"`

	// AuxCoinInfo is the exchange reference coin, attached by batch market
	// queries only.
	AuxCoinInfo *CoinInfo `json:"auxCoinInfo,omitempty"`
}

// Key returns the pair key the market resolves under.
func (m Market) Key() MarketKey {
	return MarketKey{BaseCoinType: m.BaseCoinInfo.CoinType, QuoteCoinType: m.QuoteCoinInfo.CoinType}
}
