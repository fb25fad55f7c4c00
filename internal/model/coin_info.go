package model

// CoinInfo is the display-ready metadata for a single coin type.
type CoinInfo struct {
	CoinType string `json:"coinType"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}
