package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "indexer",
		Short:        "Uniswap V3 pool pricing indexer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	replayCmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay raw pool logs and emit USD-priced swaps",
		RunE:  runReplay,
	}

	replayCmd.Flags().String("network", "mainnet", "network name (see chains config)")
	replayCmd.Flags().String("store", "memory", "entity store DSN (memory, postgres://..., redis://...)")
	replayCmd.Flags().String("rpc", "", "RPC URL used to discover pools and tokens")
	replayCmd.Flags().String("in", "", "input raw logs JSONL")
	replayCmd.Flags().String("out", "./data/priced_swaps.jsonl", "output priced swaps JSONL")
	replayCmd.Flags().String("errors", "./data/decode_errors.jsonl", "decode errors JSONL")
	replayCmd.Flags().Bool("seed-tvl", false, "seed pool TVL from balanceOf at discovery (requires --rpc)")
	replayCmd.Flags().String("topic0-map", "", "extra topic0->event mappings (comma-separated key=value)")
	replayCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	replayCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	replayCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(replayCmd)

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Print live pool prices decoded from slot0",
		RunE:  runQuote,
	}

	quoteCmd.Flags().String("rpc", "", "RPC URL")
	quoteCmd.Flags().StringSlice("pool", nil, "pool addresses (comma-separated)")
	quoteCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	quoteCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd)

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Re-derive stored token prices in native and USD terms",
		RunE:  runPrice,
	}

	priceCmd.Flags().String("network", "mainnet", "network name (see chains config)")
	priceCmd.Flags().String("store", "memory", "entity store DSN (memory, postgres://..., redis://...)")
	priceCmd.Flags().StringSlice("token", nil, "token addresses (comma-separated)")
	priceCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(priceCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
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
