package ledger

import (
	"fmt"
	"strings"
)

// NativeCoinType is the chain's gas coin.
const NativeCoinType = "0x1::aptos_coin::AptosCoin"

// CoinInfoType returns the framework resource type holding a coin's metadata.
func CoinInfoType(coinType string) string {
	return "0x1::coin::CoinInfo<" + coinType + ">"
}

// PoolType returns the AMM pool resource type for a coin pair.
func PoolType(module, coinX, coinY string) string {
	return module + "::amm::Pool<" + coinX + ", " + coinY + ">"
}

// LPCoinType returns the LP coin type minted by a pool.
func LPCoinType(module, coinX, coinY string) string {
	return module + "::amm::LP<" + coinX + ", " + coinY + ">"
}

// MarketType returns the order-book market resource type for a pair.
func MarketType(module, base, quote string) string {
	return module + "::clob_market::Market<" + base + ", " + quote + ">"
}

// PoolRegistryType returns the module-level registry of created pools.
func PoolRegistryType(module string) string {
	return module + "::amm::PoolRegistry"
}

// MarketRegistryType returns the module-level registry of listed markets.
func MarketRegistryType(module string) string {
	return module + "::clob_market::MarketRegistry"
}

// AuxCoinType returns the exchange's reference coin type.
func AuxCoinType(module string) string {
	return module + "::aux_coin::AuxCoin"
}

// UserAccountType returns the vault resource marking an opened user account.
func UserAccountType(module string) string {
	return module + "::vault::AuxUserAccount"
}

// FakeCoinType returns a synthetic test coin type registered on devnet.
func FakeCoinType(module, symbol string) string {
	return module + "::fake_coin::" + symbol
}

// CoinAddress returns the account address declaring a coin type.
func CoinAddress(coinType string) (string, error) {
	i := strings.Index(coinType, "::")
	if i <= 0 {
		return "", fmt.Errorf("malformed coin type %q", coinType)
	}
	return coinType[:i], nil
}
