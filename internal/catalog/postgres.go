package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dexquery/internal/model"
)

// PostgresSource serves the mainnet catalog from the coins table maintained
// by the indexer pipeline. The static file snapshot is derived from the same
// table; deployments with database access can skip the file.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(ctx context.Context, dsn string) (*PostgresSource, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresSource{pool: pool}, nil
}

func (s *PostgresSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ListCoins reads the full coins table.
func (s *PostgresSource) ListCoins(ctx context.Context) ([]model.CoinInfo, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT coin_type, name, symbol, decimals
		FROM coins
		ORDER BY coin_type
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query coins: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var coins []model.CoinInfo
	for rows.Next() {
		var coin model.CoinInfo
		if err := rows.Scan(&coin.CoinType, &coin.Name, &coin.Symbol, &coin.Decimals); err != nil {
			return nil, fmt.Errorf("%w: scan coin row: %v", ErrUnavailable, err)
		}
		coins = append(coins, coin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate coins: %v", ErrUnavailable, err)
	}
	return coins, nil
}
