package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dexquery/internal/catalog"
	"dexquery/internal/config"
	"dexquery/internal/ledger"
	"dexquery/internal/query"
)

// withService wires config, logger, ledger client, and catalog source, runs
// one query, and prints the result as indented JSON.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc *query.Service) (any, error)) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.NodeURL == "" {
		return fmt.Errorf("node url is required")
	}
	if cfg.ModuleAddress == "" {
		return fmt.Errorf("module address is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledgerClient, err := ledger.NewClient(ctx, cfg.NodeURL, cfg.ModuleAddress)
	if err != nil {
		return fmt.Errorf("connect node: %w", err)
	}
	defer ledgerClient.Close()

	source, closeSource, err := newCatalogSource(ctx, cfg, ledgerClient)
	if err != nil {
		return err
	}
	defer closeSource()

	svc := query.NewService(query.Config{
		ModuleAddress: cfg.ModuleAddress,
		ReadTimeout:   cfg.ReadTimeout,
	}, ledgerClient, source, logger)

	logger.Debug("query start",
		zap.String("node", cfg.NodeURL),
		zap.String("mode", cfg.Mode),
		zap.String("module_address", cfg.ModuleAddress),
	)

	result, err := fn(ctx, svc)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// newCatalogSource selects the catalog strategy for the deployment mode.
func newCatalogSource(ctx context.Context, cfg config.Config, ledgerClient *ledger.Client) (catalog.Source, func(), error) {
	if cfg.Mode == config.ModeDevnet {
		return catalog.NewChainSource(ledgerClient, cfg.ModuleAddress), func() {}, nil
	}
	if cfg.PgDSN != "" {
		source, err := catalog.NewPostgresSource(ctx, cfg.PgDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect catalog db: %w", err)
		}
		return source, source.Close, nil
	}
	return catalog.NewFileSource(cfg.CatalogPath), func() {}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
