package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/holiman/uint256"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"v3pricing/internal/model"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStoreWithClient(client, "test")
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestStoreTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	_, ok, err := store.Token(ctx, "0xaaaa")
	require.NoError(t, err)
	assert.False(t, ok)

	token := model.NewToken("0xaaaa", model.TokenMeta{Symbol: "UNI", Name: "Uniswap", Decimals: 18})
	token.DerivedNative = decimal.RequireFromString("0.0012345678901234567890123456789")
	token.AddWhitelistPool("0xp1")
	require.NoError(t, store.SaveToken(ctx, token))
	assert.True(t, mr.Exists("test:token:0xaaaa"))

	got, ok, err := store.Token(ctx, "0xaaaa")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "UNI", got.Symbol)
	assert.Equal(t, uint8(18), got.Decimals)
	assert.True(t, got.DerivedNative.Equal(token.DerivedNative))
	assert.Equal(t, []string{"0xp1"}, got.WhitelistPools)
}

func TestStorePoolRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	sqrt, err := model.ParseUint256("1461446703485210103287273052203988822378723970341")
	require.NoError(t, err)

	pool := model.NewPool("0xpool", model.PoolMeta{Token0: "0xa", Token1: "0xb", Fee: 500, TickSpacing: 10}, 100)
	pool.Liquidity = uint256.NewInt(123456789)
	pool.SqrtPrice = sqrt
	pool.Tick = -887272
	pool.TotalValueLockedToken0 = decimal.RequireFromString("10.5")
	pool.TotalValueLockedToken1 = decimal.RequireFromString("-0.000001")
	pool.Token0Price = decimal.RequireFromString("2500")
	pool.Token1Price = decimal.RequireFromString("0.0004")
	require.NoError(t, store.SavePool(ctx, pool))

	got, ok, err := store.Pool(ctx, "0xpool")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, pool.Token0, got.Token0)
	assert.Equal(t, uint32(500), got.FeeTier)
	assert.Equal(t, int32(-887272), got.Tick)
	assert.Equal(t, uint64(100), got.CreatedAtBlock)
	assert.True(t, got.Liquidity.Eq(pool.Liquidity))
	assert.True(t, got.SqrtPrice.Eq(sqrt))
	assert.True(t, got.TotalValueLockedToken1.Equal(pool.TotalValueLockedToken1))
	assert.True(t, got.Token1Price.Equal(pool.Token1Price))
}

func TestStoreBundleDefaultsToZero(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	bundle, err := store.Bundle(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.BundleID, bundle.ID)
	assert.True(t, bundle.EthPriceUSD.IsZero())

	require.NoError(t, store.SaveBundle(ctx, model.Bundle{EthPriceUSD: decimal.RequireFromString("3120.55")}))
	bundle, err = store.Bundle(ctx)
	require.NoError(t, err)
	assert.True(t, bundle.EthPriceUSD.Equal(decimal.RequireFromString("3120.55")))
}

func TestStoreCursor(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, ok, err := store.Cursor(ctx, "replay")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveCursor(ctx, "replay", model.Cursor{BlockNumber: 10, LogIndex: 3}))
	cursor, ok, err := store.Cursor(ctx, "replay")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.Cursor{BlockNumber: 10, LogIndex: 3}, cursor)

	require.Error(t, store.SaveCursor(ctx, "", cursor))
}

func TestStoreCommit(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	token := model.NewToken("0xaaaa", model.TokenMeta{Symbol: "TKN", Decimals: 18})
	pool := model.NewPool("0xpool", model.PoolMeta{Token0: "0xaaaa", Token1: "0xbbbb", Fee: 3000}, 5)
	pool.TotalValueLockedToken1 = decimal.RequireFromString("42.5")
	bundle := model.Bundle{EthPriceUSD: decimal.NewFromInt(1999)}
	cursor := model.Cursor{BlockNumber: 12, LogIndex: 4}

	require.Error(t, store.Commit(ctx, model.ChangeSet{Pools: []model.Pool{pool}, Cursor: &cursor}))
	assert.False(t, mr.Exists("test:pool:0xpool"))

	require.NoError(t, store.Commit(ctx, model.ChangeSet{
		Tokens:     []model.Token{token},
		Pools:      []model.Pool{pool},
		Bundle:     &bundle,
		CursorName: "replay:mainnet",
		Cursor:     &cursor,
	}))
	assert.True(t, mr.Exists("test:token:0xaaaa"))
	assert.True(t, mr.Exists("test:bundle:1"))

	got, ok, err := store.Pool(ctx, "0xpool")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.TotalValueLockedToken1.Equal(pool.TotalValueLockedToken1))

	saved, ok, err := store.Cursor(ctx, "replay:mainnet")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cursor, saved)

	require.NoError(t, store.Commit(ctx, model.ChangeSet{}))
}

func TestStoreCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set("test:pool:0xbad", "{not json"))
	_, _, err := store.Pool(ctx, "0xbad")
	require.Error(t, err)
}
