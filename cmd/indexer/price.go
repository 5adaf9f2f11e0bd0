package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"v3pricing/internal/config"
	"v3pricing/internal/pricing"
	"v3pricing/internal/storage"
)

type tokenPrice struct {
	Token               string          `json:"token"`
	Symbol              string          `json:"symbol"`
	DerivedNative       decimal.Decimal `json:"derived_native"`
	StoredDerivedNative decimal.Decimal `json:"stored_derived_native"`
	NativePriceUSD      decimal.Decimal `json:"native_price_usd"`
	PriceUSD            decimal.Decimal `json:"price_usd"`
}

func runPrice(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPrice(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if len(cfg.Tokens) == 0 {
		return fmt.Errorf("at least one token is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	prices, err := priceTokens(ctx, store, cfg.Chain, cfg.Tokens, logger)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, p := range prices {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}

// priceTokens re-derives each token's native price against the stored pools
// and bundle. Nothing is written back.
func priceTokens(ctx context.Context, store storage.EntityStore, chainCfg config.ChainConfig, tokens []string, logger *zap.Logger) ([]tokenPrice, error) {
	bundle, err := store.Bundle(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bundle: %w", err)
	}
	params := chainCfg.ResolverParams()

	out := make([]tokenPrice, 0, len(tokens))
	for _, id := range tokens {
		token, ok, err := store.Token(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load token %s: %w", id, err)
		}
		if !ok {
			logger.Warn("token not in store", zap.String("token", id))
			continue
		}

		stored := token.DerivedNative
		derived, err := pricing.FindNativePerToken(ctx, store, token, bundle, params)
		if err != nil {
			return nil, err
		}
		token.DerivedNative = derived

		out = append(out, tokenPrice{
			Token:               token.ID,
			Symbol:              token.Symbol,
			DerivedNative:       derived,
			StoredDerivedNative: stored,
			NativePriceUSD:      bundle.EthPriceUSD,
			PriceUSD:            pricing.PriceUSD(token, bundle),
		})
	}
	return out, nil
}
