package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"v3pricing/internal/chain"
	"v3pricing/internal/config"
	"v3pricing/internal/dex"
	"v3pricing/internal/handler"
	"v3pricing/internal/model"
	"v3pricing/internal/storage"
)

func runReplay(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadReplay(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	var reader handler.ChainReader
	if cfg.RPCURL != "" {
		chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("connect rpc: %w", err)
		}
		defer chainClient.Close()

		if err := chain.WithRetry(ctx, logger, "eth_chainId", cfg.MaxRetries, cfg.RetryBackoff, func(ctx context.Context) error {
			chainID, err := chainClient.ChainID(ctx)
			if err != nil {
				return err
			}
			logger.Info("rpc connected", zap.String("chain_id", chainID.String()))
			return nil
		}); err != nil {
			return fmt.Errorf("chain id: %w", err)
		}

		reader = dex.NewMetaReader(chainClient, dex.MetaReaderConfig{
			MaxRetries:   cfg.MaxRetries,
			RetryBackoff: cfg.RetryBackoff,
			Logger:       logger,
		})
	}

	decoder, err := dex.NewV3PoolDecoder(dex.DecoderConfig{Topic0Map: cfg.Topic0Map})
	if err != nil {
		return err
	}

	h := handler.New(store, reader, handler.Config{
		Chain:      cfg.Chain,
		SeedTVL:    cfg.SeedTVL,
		CursorName: "replay:" + cfg.Network,
	}, logger)

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	outWriter, err := newJSONLWriter(cfg.Out, false)
	if err != nil {
		return err
	}
	defer outWriter.Close()

	errWriter, err := newJSONLWriter(cfg.Errors, false)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	logger.Info("replay start",
		zap.String("network", cfg.Network),
		zap.String("store", storage.RedactDSN(cfg.Store)),
		zap.Bool("rpc", cfg.RPCURL != ""),
		zap.Bool("seed_tvl", cfg.SeedTVL),
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
	)

	stats, err := replayLogs(ctx, inputFile, decoder, h, outWriter, errWriter, logger)
	if err != nil {
		return err
	}

	logger.Info("replay complete",
		zap.Int("total", stats.total),
		zap.Int("applied", stats.applied),
		zap.Int("swaps", stats.swaps),
		zap.Int("stale", stats.stale),
		zap.Int("skipped", stats.skipped),
		zap.Int("failed", stats.failed),
	)
	return nil
}

type replayStats struct {
	total   int
	applied int
	swaps   int
	stale   int
	skipped int
	failed  int
}

// replayLogs streams LogRecord lines through the decoder and handler. Bad
// lines and pools that cannot be discovered go to errWriter; store failures
// abort the replay.
func replayLogs(ctx context.Context, input io.Reader, decoder dex.Decoder, h *handler.Handler, outWriter, errWriter *jsonlWriter, logger *zap.Logger) (replayStats, error) {
	var stats replayStats

	scanner := bufio.NewScanner(input)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		stats.total++

		var record model.LogRecord
		if err := json.Unmarshal(line, &record); err != nil {
			stats.failed++
			writeDecodeError(errWriter, model.DecodeError{Error: err.Error()})
			continue
		}
		if record.Removed {
			stats.skipped++
			continue
		}
		if record.Topic0() == "" {
			stats.failed++
			writeDecodeError(errWriter, decodeErrorFromRecord(record, fmt.Errorf("missing topic0")))
			continue
		}
		if !decoder.CanDecode(record.Topic0()) {
			stats.skipped++
			continue
		}

		event, err := decoder.Decode(record)
		if err != nil {
			stats.failed++
			writeDecodeError(errWriter, decodeErrorFromRecord(record, err))
			continue
		}

		outcome, err := h.Apply(ctx, event)
		if err != nil {
			if errors.Is(err, handler.ErrUnknownPool) {
				stats.failed++
				writeDecodeError(errWriter, decodeErrorFromRecord(record, err))
				continue
			}
			return stats, fmt.Errorf("apply %s at %d/%d: %w", event.EventName, event.BlockNumber, event.LogIndex, err)
		}

		switch outcome.Status {
		case handler.StatusStale:
			stats.stale++
		case handler.StatusSkipped:
			stats.skipped++
		default:
			stats.applied++
		}
		if outcome.Swap != nil {
			if err := outWriter.Write(outcome.Swap); err != nil {
				return stats, err
			}
			stats.swaps++
		}
		if stats.total%10000 == 0 {
			logger.Debug("replay progress", zap.Int("total", stats.total), zap.Uint64("block", record.BlockNumber))
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("scan input: %w", err)
	}
	return stats, nil
}
