package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"

	"dexquery/internal/model"
)

// ErrResourceNotFound reports that an address does not hold the requested
// resource. Callers treat it as a normal outcome, not a failure.
var ErrResourceNotFound = errors.New("ledger resource not found")

// codeResourceNotFound is the JSON-RPC error code the node returns for a
// missing resource, as opposed to a transport or node failure.
const codeResourceNotFound = -32001

// Client wraps the ledger node's JSON-RPC interface and provides typed reads.
type Client struct {
	rpcClient *rpc.Client
	module    string
}

// NewClient dials the ledger node. The module address anchors registry and
// exchange resource lookups.
func NewClient(ctx context.Context, rpcURL, moduleAddress string) (*Client, error) {
	if moduleAddress == "" {
		return nil, fmt.Errorf("module address is required")
	}
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return &Client{rpcClient: rpcClient, module: moduleAddress}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// ModuleAddress returns the exchange module address this client is bound to.
func (c *Client) ModuleAddress() string {
	return c.module
}

// FetchResource reads one typed resource under an address. A missing
// resource is reported as ErrResourceNotFound; every other failure is a
// client error.
func (c *Client) FetchResource(ctx context.Context, address, resourceType string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.rpcClient.CallContext(ctx, &raw, "ledger_getResource", address, resourceType); err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == codeResourceNotFound {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("fetch %s at %s: %w", resourceType, address, err)
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrResourceNotFound
	}
	return raw, nil
}

// CoinInfo reads a coin's registration under its declaring address.
func (c *Client) CoinInfo(ctx context.Context, coinType string) (model.CoinInfo, error) {
	address, err := CoinAddress(coinType)
	if err != nil {
		return model.CoinInfo{}, err
	}
	raw, err := c.FetchResource(ctx, address, CoinInfoType(coinType))
	if err != nil {
		return model.CoinInfo{}, err
	}
	var info coinInfoResource
	if err := json.Unmarshal(raw, &info); err != nil {
		return model.CoinInfo{}, fmt.Errorf("decode coin info %s: %w", coinType, err)
	}
	return model.CoinInfo{
		CoinType: coinType,
		Name:     info.Name,
		Symbol:   info.Symbol,
		Decimals: info.Decimals,
	}, nil
}

// ListPools enumerates the coin pairs of every created pool.
func (c *Client) ListPools(ctx context.Context) ([]model.PoolKey, error) {
	raw, err := c.FetchResource(ctx, c.module, PoolRegistryType(c.module))
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var registry poolRegistryResource
	if err := json.Unmarshal(raw, &registry); err != nil {
		return nil, fmt.Errorf("decode pool registry: %w", err)
	}
	keys := make([]model.PoolKey, 0, len(registry.Pools))
	for _, entry := range registry.Pools {
		keys = append(keys, model.PoolKey{CoinX: entry.CoinTypeX, CoinY: entry.CoinTypeY})
	}
	return keys, nil
}

// ListMarkets enumerates the pairs of every listed market.
func (c *Client) ListMarkets(ctx context.Context) ([]model.MarketKey, error) {
	raw, err := c.FetchResource(ctx, c.module, MarketRegistryType(c.module))
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var registry marketRegistryResource
	if err := json.Unmarshal(raw, &registry); err != nil {
		return nil, fmt.Errorf("decode market registry: %w", err)
	}
	keys := make([]model.MarketKey, 0, len(registry.Markets))
	for _, entry := range registry.Markets {
		keys = append(keys, model.MarketKey{BaseCoinType: entry.BaseCoinType, QuoteCoinType: entry.QuoteCoinType})
	}
	return keys, nil
}
