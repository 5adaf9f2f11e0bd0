package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"v3pricing/internal/config"
	"v3pricing/internal/dex"
	"v3pricing/internal/handler"
	"v3pricing/internal/model"
	"v3pricing/internal/storage"
)

const (
	testUSDC = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	testWETH = "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
	testPool = "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8"
)

type stubReader struct{}

func (stubReader) PoolMeta(_ context.Context, pool string) (model.PoolMeta, error) {
	if pool != testPool {
		return model.PoolMeta{}, errors.New("execution reverted")
	}
	return model.PoolMeta{Token0: testUSDC, Token1: testWETH, Fee: 500, TickSpacing: 10}, nil
}

func (stubReader) TokenMeta(_ context.Context, token string) (model.TokenMeta, error) {
	switch token {
	case testUSDC:
		return model.TokenMeta{Address: token, Decimals: 6, Symbol: "USDC"}, nil
	case testWETH:
		return model.TokenMeta{Address: token, Decimals: 18, Symbol: "WETH"}, nil
	}
	return model.TokenMeta{}, errors.New("execution reverted")
}

func (stubReader) PoolBalances(context.Context, string, string, string, uint64) (*big.Int, *big.Int, error) {
	return nil, nil, errors.New("not supported")
}

func logLine(t *testing.T, pool string, block, index uint64, topics []common.Hash, data []byte) string {
	t.Helper()
	hexTopics := make([]string, 0, len(topics))
	for _, topic := range topics {
		hexTopics = append(hexTopics, topic.Hex())
	}
	line, err := json.Marshal(model.LogRecord{
		ChainID:     1,
		BlockNumber: block,
		TxHash:      "0xfeed",
		LogIndex:    index,
		Address:     pool,
		Topics:      hexTopics,
		Data:        hexutil.Encode(data),
		Timestamp:   1700000000,
	})
	require.NoError(t, err)
	return string(line)
}

func pack(t *testing.T, event abi.Event, values ...interface{}) []byte {
	t.Helper()
	data, err := event.Inputs.NonIndexed().Pack(values...)
	require.NoError(t, err)
	return data
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestReplayLogs(t *testing.T) {
	poolABI, err := dex.V3PoolABI()
	require.NoError(t, err)
	initialize := poolABI.Events["Initialize"]
	swap := poolABI.Events["Swap"]

	sqrt := new(big.Int).Mul(big.NewInt(20000), new(big.Int).Lsh(big.NewInt(1), 96))
	trader := common.BytesToHash(common.HexToAddress("0x2222222222222222222222222222222222222222").Bytes())

	initLine := logLine(t, testPool, 10, 0, []common.Hash{initialize.ID}, pack(t, initialize, sqrt, big.NewInt(198000)))
	swapLine := logLine(t, testPool, 11, 2, []common.Hash{swap.ID, trader, trader},
		pack(t, swap, big.NewInt(-2_500_000_000), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), sqrt, big.NewInt(1_000_000), big.NewInt(198000)))
	unknownPool := logLine(t, "0x9999999999999999999999999999999999999999", 12, 0, []common.Hash{initialize.ID}, pack(t, initialize, sqrt, big.NewInt(0)))
	otherTopic := logLine(t, testPool, 12, 1, []common.Hash{common.HexToHash("0x01")}, nil)

	input := strings.Join([]string{
		initLine,
		"",
		swapLine,
		swapLine,
		"{not json",
		otherTopic,
		`{"block_number": 13, "address": "` + testPool + `", "topics": null}`,
		unknownPool,
	}, "\n")

	dir := t.TempDir()
	outPath := filepath.Join(dir, "out", "priced.jsonl")
	errPath := filepath.Join(dir, "errors.jsonl")
	outWriter, err := newJSONLWriter(outPath, false)
	require.NoError(t, err)
	errWriter, err := newJSONLWriter(errPath, false)
	require.NoError(t, err)

	chainCfg, err := config.ResolveChain(nil, "mainnet")
	require.NoError(t, err)

	decoder, err := dex.NewV3PoolDecoder(dex.DecoderConfig{})
	require.NoError(t, err)
	store := storage.NewMemoryStore()
	h := handler.New(store, stubReader{}, handler.Config{Chain: chainCfg}, zap.NewNop())

	stats, err := replayLogs(context.Background(), strings.NewReader(input), decoder, h, outWriter, errWriter, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, outWriter.Close())
	require.NoError(t, errWriter.Close())

	assert.Equal(t, 7, stats.total)
	assert.Equal(t, 2, stats.applied)
	assert.Equal(t, 1, stats.swaps)
	assert.Equal(t, 1, stats.stale)
	assert.Equal(t, 1, stats.skipped)
	assert.Equal(t, 3, stats.failed)

	lines := readLines(t, outPath)
	require.Len(t, lines, 1)
	var priced struct {
		Pool             string          `json:"pool"`
		AmountUSDTracked decimal.Decimal `json:"amount_usd_tracked"`
		NativePriceUSD   decimal.Decimal `json:"native_price_usd"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &priced))
	assert.Equal(t, testPool, priced.Pool)
	assert.True(t, priced.NativePriceUSD.Equal(decimal.NewFromInt(2500)), priced.NativePriceUSD.String())
	assert.True(t, priced.AmountUSDTracked.Equal(decimal.NewFromInt(5000)), priced.AmountUSDTracked.String())

	errLines := readLines(t, errPath)
	require.Len(t, errLines, 3)
	assert.Contains(t, errLines[1], "missing topic0")
	assert.Contains(t, errLines[2], "unknown pool")
}
