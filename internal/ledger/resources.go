package ledger

// Coin is the ledger's wrapped amount representation. Values arrive as
// base-10 integer strings regardless of magnitude.
type Coin struct {
	Value string `json:"value"`
}

// PoolResource mirrors the on-chain AMM pool state.
type PoolResource struct {
	XReserve Coin   `json:"x_reserve"`
	YReserve Coin   `json:"y_reserve"`
	LPSupply Coin   `json:"lp_supply"`
	FeeBps   string `json:"fee_bps"`
}

// MarketResource mirrors the on-chain order-book market state, including the
// aggregated L2 view maintained by the ledger.
type MarketResource struct {
	LotSize  string     `json:"lot_size"`
	TickSize string     `json:"tick_size"`
	L2       L2Resource `json:"l2"`
}

// L2Resource holds price levels best-first on both sides.
type L2Resource struct {
	Bids []L2Level `json:"bids"`
	Asks []L2Level `json:"asks"`
}

// L2Level is one aggregated price level.
type L2Level struct {
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type coinInfoResource struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

type poolRegistryResource struct {
	Pools []struct {
		CoinTypeX string `json:"coin_type_x"`
		CoinTypeY string `json:"coin_type_y"`
	} `json:"pools"`
}

type marketRegistryResource struct {
	Markets []struct {
		BaseCoinType  string `json:"base_coin_type"`
		QuoteCoinType string `json:"quote_coin_type"`
	} `json:"markets"`
}
