package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"dexquery/internal/fixedpoint"
	"dexquery/internal/ledger"
	"dexquery/internal/model"
)

// Ledger is the slice of the ledger client the query layer consumes.
type Ledger interface {
	FetchResource(ctx context.Context, address, resourceType string) (json.RawMessage, error)
	CoinInfo(ctx context.Context, coinType string) (model.CoinInfo, error)
	ListPools(ctx context.Context) ([]model.PoolKey, error)
	ListMarkets(ctx context.Context) ([]model.MarketKey, error)
}

// Reader resolves single entities from ledger state. A "not found" outcome
// is returned as a nil entity with a nil error; genuine failures are
// returned as errors for the layer above to collapse or log.
type Reader struct {
	ledger      Ledger
	module      string
	readTimeout time.Duration
	logger      *zap.Logger
}

func NewReader(ledgerClient Ledger, moduleAddress string, readTimeout time.Duration, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		ledger:      ledgerClient,
		module:      moduleAddress,
		readTimeout: readTimeout,
		logger:      logger,
	}
}

// readCtx bounds each entity read so one slow branch cannot stall a batch
// beyond the configured budget.
func (r *Reader) readCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.readTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.readTimeout)
}

// ReadPool fetches and assembles one pool. A pool that was never created
// returns (nil, nil).
func (r *Reader) ReadPool(ctx context.Context, key model.PoolKey) (*model.Pool, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	address := key.Address
	if address == "" {
		address = r.module
	}

	raw, err := r.ledger.FetchResource(ctx, address, ledger.PoolType(r.module, key.CoinX, key.CoinY))
	if errors.Is(err, ledger.ErrResourceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var resource ledger.PoolResource
	if err := json.Unmarshal(raw, &resource); err != nil {
		return nil, fmt.Errorf("decode pool %s/%s: %w", key.CoinX, key.CoinY, err)
	}

	coinX, err := r.ledger.CoinInfo(ctx, key.CoinX)
	if err != nil {
		return nil, err
	}
	coinY, err := r.ledger.CoinInfo(ctx, key.CoinY)
	if err != nil {
		return nil, err
	}
	coinLP, err := r.ledger.CoinInfo(ctx, ledger.LPCoinType(r.module, key.CoinX, key.CoinY))
	if err != nil {
		return nil, err
	}

	amountX, err := fixedpoint.Parse(resource.XReserve.Value)
	if err != nil {
		return nil, err
	}
	amountY, err := fixedpoint.Parse(resource.YReserve.Value)
	if err != nil {
		return nil, err
	}
	amountLP, err := fixedpoint.Parse(resource.LPSupply.Value)
	if err != nil {
		return nil, err
	}
	feeBps, err := fixedpoint.Parse(resource.FeeBps)
	if err != nil {
		return nil, err
	}

	return &model.Pool{
		CoinInfoX:        coinX,
		CoinInfoY:        coinY,
		CoinInfoLP:       coinLP,
		AmountX:          amountX.Scaled(coinX.Decimals),
		AmountY:          amountY.Scaled(coinY.Decimals),
		AmountLP:         amountLP.Scaled(coinLP.Decimals),
		AmountXDecimals:  amountX.DecimalString(coinX.Decimals),
		AmountYDecimals:  amountY.DecimalString(coinY.Decimals),
		AmountLPDecimals: amountLP.DecimalString(coinLP.Decimals),
		FeePercent:       feeBps.Float() / 100,
	}, nil
}

// ReadMarket fetches and assembles one market, including its L2 snapshot.
// Level ordering is preserved as delivered by the ledger.
func (r *Reader) ReadMarket(ctx context.Context, key model.MarketKey) (*model.Market, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	raw, err := r.ledger.FetchResource(ctx, r.module, ledger.MarketType(r.module, key.BaseCoinType, key.QuoteCoinType))
	if errors.Is(err, ledger.ErrResourceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var resource ledger.MarketResource
	if err := json.Unmarshal(raw, &resource); err != nil {
		return nil, fmt.Errorf("decode market %s/%s: %w", key.BaseCoinType, key.QuoteCoinType, err)
	}

	base, err := r.ledger.CoinInfo(ctx, key.BaseCoinType)
	if err != nil {
		return nil, err
	}
	quote, err := r.ledger.CoinInfo(ctx, key.QuoteCoinType)
	if err != nil {
		return nil, err
	}

	lotSize, err := fixedpoint.Parse(resource.LotSize)
	if err != nil {
		return nil, err
	}
	tickSize, err := fixedpoint.Parse(resource.TickSize)
	if err != nil {
		return nil, err
	}

	bids, err := buildL2Side(resource.L2.Bids, base.Decimals, quote.Decimals)
	if err != nil {
		return nil, err
	}
	asks, err := buildL2Side(resource.L2.Asks, base.Decimals, quote.Decimals)
	if err != nil {
		return nil, err
	}

	return &model.Market{
		Name:             base.Name + "-" + quote.Name,
		BaseCoinInfo:     base,
		QuoteCoinInfo:    quote,
		LotSize:          lotSize.Float(),
		TickSize:         tickSize.Float(),
		LotSizeDecimals:  lotSize.DecimalString(base.Decimals),
		TickSizeDecimals: tickSize.DecimalString(quote.Decimals),
		LotSizeString:    lotSize.String(),
		TickSizeString:   tickSize.String(),
		Orderbook:        model.L2Snapshot{Bids: bids, Asks: asks},
	}, nil
}

func buildL2Side(levels []ledger.L2Level, baseDecimals, quoteDecimals uint8) ([]model.L2Quote, error) {
	quotes := make([]model.L2Quote, 0, len(levels))
	for _, level := range levels {
		price, err := fixedpoint.Parse(level.Price)
		if err != nil {
			return nil, err
		}
		quantity, err := fixedpoint.Parse(level.Quantity)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, model.L2Quote{
			Price:    price.Scaled(quoteDecimals),
			Quantity: quantity.Scaled(baseDecimals),
		})
	}
	return quotes, nil
}

// ReadAccount resolves whether an address has opened an exchange user
// account. A missing vault resource is the expected negative case.
func (r *Reader) ReadAccount(ctx context.Context, address string) (model.Account, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	_, err := r.ledger.FetchResource(ctx, address, ledger.UserAccountType(r.module))
	if errors.Is(err, ledger.ErrResourceNotFound) {
		return model.Account{Address: address, HasAuxAccount: false}, nil
	}
	if err != nil {
		return model.Account{Address: address}, err
	}
	return model.Account{Address: address, HasAuxAccount: true}, nil
}
