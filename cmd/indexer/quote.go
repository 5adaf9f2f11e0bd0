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

	"v3pricing/internal/chain"
	"v3pricing/internal/config"
	"v3pricing/internal/dex"
	"v3pricing/internal/model"
	"v3pricing/internal/pricing"
)

type poolQuote struct {
	Pool         string          `json:"pool"`
	Token0       string          `json:"token0"`
	Token1       string          `json:"token1"`
	Symbol0      string          `json:"symbol0"`
	Symbol1      string          `json:"symbol1"`
	Fee          uint32          `json:"fee"`
	Tick         int32           `json:"tick"`
	SqrtPriceX96 string          `json:"sqrt_price_x96"`
	Price0       decimal.Decimal `json:"price0"`
	Price1       decimal.Decimal `json:"price1"`
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadQuote(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if len(cfg.Pools) == 0 {
		return fmt.Errorf("at least one pool is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	reader := dex.NewMetaReader(chainClient, dex.MetaReaderConfig{
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		Logger:       logger,
	})

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, pool := range cfg.Pools {
		quote, err := quotePool(ctx, reader, pool)
		if err != nil {
			logger.Warn("quote failed", zap.String("pool", pool), zap.Error(err))
			continue
		}
		if err := enc.Encode(quote); err != nil {
			return err
		}
	}
	return nil
}

func quotePool(ctx context.Context, reader *dex.MetaReader, pool string) (poolQuote, error) {
	meta, err := reader.PoolMeta(ctx, pool)
	if err != nil {
		return poolQuote{}, err
	}
	token0, err := reader.TokenMeta(ctx, meta.Token0)
	if err != nil {
		return poolQuote{}, err
	}
	token1, err := reader.TokenMeta(ctx, meta.Token1)
	if err != nil {
		return poolQuote{}, err
	}
	slot0, err := reader.Slot0(ctx, pool, 0)
	if err != nil {
		return poolQuote{}, err
	}

	price0, price1 := pricing.SqrtPriceX96ToTokenPrices(slot0.SqrtPriceX96, token0.Decimals, token1.Decimals)
	return poolQuote{
		Pool:         pool,
		Token0:       meta.Token0,
		Token1:       meta.Token1,
		Symbol0:      token0.Symbol,
		Symbol1:      token1.Symbol,
		Fee:          meta.Fee,
		Tick:         slot0.Tick,
		SqrtPriceX96: model.FormatUint256(slot0.SqrtPriceX96),
		Price0:       price0,
		Price1:       price1,
	}, nil
}
