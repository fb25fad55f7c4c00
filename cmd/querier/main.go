package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dexquery/internal/model"
	"dexquery/internal/query"
)

func main() {
	root := &cobra.Command{
		Use:          "querier",
		Short:        "DEX on-chain read-query CLI",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("node", "", "ledger node JSON-RPC URL")
	root.PersistentFlags().String("mode", "devnet", "deployment mode (devnet, mainnet)")
	root.PersistentFlags().String("module-address", "", "exchange module address")
	root.PersistentFlags().String("catalog", "./data/mainnet-coin-list.json", "mainnet coin catalog JSON path")
	root.PersistentFlags().String("pg-dsn", "", "optional Postgres DSN serving the coin catalog")
	root.PersistentFlags().Duration("read-timeout", 5*time.Second, "per-entity read budget")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	coinsCmd := &cobra.Command{
		Use:   "coins",
		Short: "List the coin catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Coins(ctx)
			})
		},
	}
	root.AddCommand(coinsCmd)

	poolCmd := &cobra.Command{
		Use:   "pool",
		Short: "Resolve a single pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			coinX, _ := cmd.Flags().GetString("coin-x")
			coinY, _ := cmd.Flags().GetString("coin-y")
			address, _ := cmd.Flags().GetString("pool-address")
			if coinX == "" || coinY == "" {
				return fmt.Errorf("coin-x and coin-y are required")
			}
			return withService(cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Pool(ctx, model.PoolKey{CoinX: coinX, CoinY: coinY, Address: address}), nil
			})
		},
	}
	poolCmd.Flags().String("coin-x", "", "pool coin X type")
	poolCmd.Flags().String("coin-y", "", "pool coin Y type")
	poolCmd.Flags().String("pool-address", "", "explicit pool address (optional)")
	root.AddCommand(poolCmd)

	poolsCmd := &cobra.Command{
		Use:   "pools",
		Short: "Resolve many pools (all created pools when no pairs given)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pairs, _ := cmd.Flags().GetStringSlice("pair")
			keys, err := parsePoolPairs(pairs)
			if err != nil {
				return err
			}
			return withService(cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Pools(ctx, keys)
			})
		},
	}
	poolsCmd.Flags().StringSlice("pair", nil, "coinX:coinY pairs (comma-separated)")
	root.AddCommand(poolsCmd)

	marketCmd := &cobra.Command{
		Use:   "market",
		Short: "Resolve a single market",
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, _ := cmd.Flags().GetString("base")
			quote, _ := cmd.Flags().GetString("quote")
			if base == "" || quote == "" {
				return fmt.Errorf("base and quote are required")
			}
			return withService(cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Market(ctx, model.MarketKey{BaseCoinType: base, QuoteCoinType: quote}), nil
			})
		},
	}
	marketCmd.Flags().String("base", "", "base coin type")
	marketCmd.Flags().String("quote", "", "quote coin type")
	root.AddCommand(marketCmd)

	marketsCmd := &cobra.Command{
		Use:   "markets",
		Short: "Resolve many markets (all listed markets when no pairs given)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pairs, _ := cmd.Flags().GetStringSlice("pair")
			keys, err := parseMarketPairs(pairs)
			if err != nil {
				return err
			}
			return withService(cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Markets(ctx, keys)
			})
		},
	}
	marketsCmd.Flags().StringSlice("pair", nil, "base:quote pairs (comma-separated)")
	root.AddCommand(marketsCmd)

	marketCoinsCmd := &cobra.Command{
		Use:   "market-coins",
		Short: "List the coins traded on listed markets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.MarketCoins(ctx)
			})
		},
	}
	root.AddCommand(marketCoinsCmd)

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Resolve an account's exchange registration flag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			address, _ := cmd.Flags().GetString("address")
			if address == "" {
				return fmt.Errorf("address is required")
			}
			return withService(cmd, func(ctx context.Context, svc *query.Service) (any, error) {
				return svc.Account(ctx, address)
			})
		},
	}
	accountCmd.Flags().String("address", "", "account address")
	root.AddCommand(accountCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parsePoolPairs(pairs []string) ([]model.PoolKey, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	keys := make([]model.PoolKey, 0, len(pairs))
	for _, pair := range pairs {
		coinX, coinY, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		keys = append(keys, model.PoolKey{CoinX: coinX, CoinY: coinY})
	}
	return keys, nil
}

func parseMarketPairs(pairs []string) ([]model.MarketKey, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	keys := make([]model.MarketKey, 0, len(pairs))
	for _, pair := range pairs {
		base, quote, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		keys = append(keys, model.MarketKey{BaseCoinType: base, QuoteCoinType: quote})
	}
	return keys, nil
}

func splitPair(pair string) (string, string, error) {
	parts := strings.Split(pair, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed pair %q, want first:second", pair)
	}
	return parts[0], parts[1], nil
}
