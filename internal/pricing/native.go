package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"v3pricing/internal/model"
)

// PoolReader loads pools by id.
type PoolReader interface {
	Pool(ctx context.Context, id string) (model.Pool, bool, error)
}

// TokenReader loads tokens by id.
type TokenReader interface {
	Token(ctx context.Context, id string) (model.Token, bool, error)
}

// EntityReader is the read side of the entity store used by the resolver.
type EntityReader interface {
	PoolReader
	TokenReader
}

// NativePriceInUSD reads the stablecoin/wrapped-native reference pool and
// returns the USD price of the native token. A pool that is not indexed yet
// prices the native token at zero.
func NativePriceInUSD(ctx context.Context, pools PoolReader, referencePoolID string, stablecoinIsToken0 bool) (decimal.Decimal, error) {
	pool, ok, err := pools.Pool(ctx, referencePoolID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load reference pool %s: %w", referencePoolID, err)
	}
	if !ok {
		return decimal.Zero, nil
	}
	if stablecoinIsToken0 {
		return pool.Token0Price, nil
	}
	return pool.Token1Price, nil
}
