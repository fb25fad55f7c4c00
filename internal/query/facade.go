package query

import (
	"context"
	"time"

	"go.uber.org/zap"

	"dexquery/internal/catalog"
	"dexquery/internal/ledger"
	"dexquery/internal/model"
)

// Config holds the facade's static settings, fixed at construction.
type Config struct {
	ModuleAddress string
	ReadTimeout   time.Duration
}

// Service maps each exposed query onto the reader, the batch aggregator,
// and the catalog source. Queries are stateless; nothing is cached across
// calls.
type Service struct {
	cfg     Config
	ledger  Ledger
	catalog catalog.Source
	reader  *Reader
	batch   *Batch
	logger  *zap.Logger
}

func NewService(cfg Config, ledgerClient Ledger, source catalog.Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	reader := NewReader(ledgerClient, cfg.ModuleAddress, cfg.ReadTimeout, logger)
	return &Service{
		cfg:     cfg,
		ledger:  ledgerClient,
		catalog: source,
		reader:  reader,
		batch:   NewBatch(reader),
		logger:  logger,
	}
}

// Address returns the exchange module address the service is bound to.
func (s *Service) Address() string {
	return s.cfg.ModuleAddress
}

// Coins lists the full coin catalog.
func (s *Service) Coins(ctx context.Context) ([]model.CoinInfo, error) {
	return s.catalog.ListCoins(ctx)
}

// Pool resolves one pool. Absence and read failures both collapse to nil;
// failures are logged so the distinction is not lost entirely.
func (s *Service) Pool(ctx context.Context, key model.PoolKey) *model.Pool {
	pool, err := s.reader.ReadPool(ctx, key)
	if err != nil {
		s.logger.Warn("pool query failed",
			zap.String("coin_x", key.CoinX),
			zap.String("coin_y", key.CoinY),
			zap.Error(err),
		)
		return nil
	}
	return pool
}

// Pools resolves many pools, dropping entries that are absent or failed.
func (s *Service) Pools(ctx context.Context, keys []model.PoolKey) ([]model.Pool, error) {
	return s.batch.ReadPools(ctx, keys)
}

// Market resolves one market. Any failure collapses to nil.
func (s *Service) Market(ctx context.Context, key model.MarketKey) *model.Market {
	market, err := s.reader.ReadMarket(ctx, key)
	if err != nil {
		s.logger.Warn("market query failed",
			zap.String("base", key.BaseCoinType),
			zap.String("quote", key.QuoteCoinType),
			zap.Error(err),
		)
		return nil
	}
	return market
}

// Markets resolves many markets and attaches the exchange reference coin's
// metadata, read once per call, to every result.
func (s *Service) Markets(ctx context.Context, keys []model.MarketKey) ([]model.Market, error) {
	auxCoin, err := s.ledger.CoinInfo(ctx, ledger.AuxCoinType(s.cfg.ModuleAddress))
	if err != nil {
		return nil, err
	}

	markets, err := s.batch.ReadMarkets(ctx, keys)
	if err != nil {
		return nil, err
	}
	for i := range markets {
		info := auxCoin
		markets[i].AuxCoinInfo = &info
	}
	return markets, nil
}

// MarketCoins projects the base and quote coins of every listed market,
// deduplicated by coin type in first-seen order.
func (s *Service) MarketCoins(ctx context.Context) ([]model.CoinInfo, error) {
	markets, err := s.Markets(ctx, nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(markets)*2)
	coins := make([]model.CoinInfo, 0, len(markets)*2)
	for _, market := range markets {
		for _, info := range [2]model.CoinInfo{market.BaseCoinInfo, market.QuoteCoinInfo} {
			if _, ok := seen[info.CoinType]; ok {
				continue
			}
			seen[info.CoinType] = struct{}{}
			coins = append(coins, info)
		}
	}
	return coins, nil
}

// Account reports whether an address has opened an exchange user account.
// The record is always populated; only ledger connectivity failures surface.
func (s *Service) Account(ctx context.Context, address string) (model.Account, error) {
	return s.reader.ReadAccount(ctx, address)
}
