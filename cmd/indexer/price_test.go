package main

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"v3pricing/internal/config"
	"v3pricing/internal/model"
	"v3pricing/internal/storage"
)

const (
	testGRT     = "0xc944e90c64b2c07662a292be6244bdf05cda44a7"
	testGRTPool = "0x2cd3b1d5b2b1a0b7f1c1d1e6a2c3b4d5e6f70819"
)

func seedPriceStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()

	weth := model.NewToken(testWETH, model.TokenMeta{Decimals: 18, Symbol: "WETH"})
	weth.DerivedNative = decimal.NewFromInt(1)
	usdc := model.NewToken(testUSDC, model.TokenMeta{Decimals: 6, Symbol: "USDC"})
	grt := model.NewToken(testGRT, model.TokenMeta{Decimals: 18, Symbol: "GRT"})
	grt.DerivedNative = decimal.RequireFromString("0.4")
	grt.WhitelistPools = []string{testGRTPool}

	pool := model.NewPool(testGRTPool, model.PoolMeta{Token0: testGRT, Token1: testWETH, Fee: 3000, TickSpacing: 60}, 1)
	pool.Liquidity = uint256.NewInt(1_000_000)
	pool.TotalValueLockedToken0 = decimal.NewFromInt(20)
	pool.TotalValueLockedToken1 = decimal.NewFromInt(10)
	pool.Token0Price = decimal.NewFromInt(2)
	pool.Token1Price = decimal.RequireFromString("0.5")

	require.NoError(t, store.Commit(ctx, model.ChangeSet{
		Tokens: []model.Token{weth, usdc, grt},
		Pools:  []model.Pool{pool},
		Bundle: &model.Bundle{EthPriceUSD: decimal.NewFromInt(2000)},
	}))
	return store
}

func TestPriceTokens(t *testing.T) {
	ctx := context.Background()
	store := seedPriceStore(t)
	chainCfg := config.ChainConfig{
		WrappedNativeAddress: testWETH,
		StablecoinAddresses:  model.NewAddressSet(testUSDC),
		MinimumNativeLocked:  decimal.NewFromInt(1),
	}

	prices, err := priceTokens(ctx, store, chainCfg, []string{testGRT, testUSDC, testWETH, testPool}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, prices, 3, "tokens missing from the store are skipped")

	grt := prices[0]
	assert.Equal(t, testGRT, grt.Token)
	assert.Equal(t, "GRT", grt.Symbol)
	assert.True(t, grt.DerivedNative.Equal(decimal.RequireFromString("0.5")), grt.DerivedNative.String())
	assert.True(t, grt.StoredDerivedNative.Equal(decimal.RequireFromString("0.4")), grt.StoredDerivedNative.String())
	assert.True(t, grt.NativePriceUSD.Equal(decimal.NewFromInt(2000)))
	assert.True(t, grt.PriceUSD.Equal(decimal.NewFromInt(1000)), grt.PriceUSD.String())

	usdc := prices[1]
	assert.True(t, usdc.DerivedNative.Equal(decimal.RequireFromString("0.0005")), usdc.DerivedNative.String())
	assert.True(t, usdc.PriceUSD.Equal(decimal.NewFromInt(1)), usdc.PriceUSD.String())

	weth := prices[2]
	assert.True(t, weth.DerivedNative.Equal(decimal.NewFromInt(1)))
	assert.True(t, weth.PriceUSD.Equal(decimal.NewFromInt(2000)))

	stored, ok, err := store.Token(ctx, testGRT)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, stored.DerivedNative.Equal(decimal.RequireFromString("0.4")), "pricing must not write back")
}

func TestPriceTokensBelowMinimumLocked(t *testing.T) {
	store := seedPriceStore(t)
	chainCfg := config.ChainConfig{
		WrappedNativeAddress: testWETH,
		StablecoinAddresses:  model.NewAddressSet(testUSDC),
		MinimumNativeLocked:  decimal.NewFromInt(50),
	}

	prices, err := priceTokens(context.Background(), store, chainCfg, []string{testGRT}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.True(t, prices[0].DerivedNative.IsZero(), prices[0].DerivedNative.String())
	assert.True(t, prices[0].PriceUSD.IsZero())
}
