package model

// PoolKey identifies an AMM pool either by its coin pair or by an explicit
// pool address. When Address is set it takes precedence over the pair.
type PoolKey struct {
	CoinX   string `json:"coinTypeX"`
	CoinY   string `json:"coinTypeY"`
	Address string `json:"address,omitempty"`
}

// Pool is the display-ready view of an AMM pool. Reserve amounts carry both
// an approximate display value and an exact decimal string scaled by the
// corresponding coin's decimals.
type Pool struct {
	CoinInfoX  CoinInfo `json:"coinInfoX"`
	CoinInfoY  CoinInfo `json:"coinInfoY"`
	CoinInfoLP CoinInfo `json:"coinInfoLP"`

	AmountX  float64 `json:"amountX"`
	AmountY  float64 `json:"amountY"`
	AmountLP float64 `json:"amountLP"`

	AmountXDecimals  string `json:"amountXDecimals"`
	AmountYDecimals  string `json:"amountYDecimals"`
	AmountLPDecimals string `json:"amountLPDecimals"`

	FeePercent float64 `json:"feePercent"`
}

// Key returns the pair key the pool resolves under.
func (p Pool) Key() PoolKey {
	return PoolKey{CoinX: p.CoinInfoX.CoinType, CoinY: p.CoinInfoY.CoinType}
}
