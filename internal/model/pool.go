package model

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Pool is the per-pool pricing record, keyed by lowercase contract address.
type Pool struct {
	ID             string
	Token0         string
	Token1         string
	FeeTier        uint32
	TickSpacing    int32
	CreatedAtBlock uint64

	Liquidity *uint256.Int
	SqrtPrice *uint256.Int
	Tick      int32

	TotalValueLockedToken0 decimal.Decimal
	TotalValueLockedToken1 decimal.Decimal

	// Token0Price is token0 per token1; Token1Price is token1 per token0.
	Token0Price decimal.Decimal
	Token1Price decimal.Decimal
}

// NewPool builds an uninitialized pool from its immutable metadata.
func NewPool(id string, meta PoolMeta, createdAtBlock uint64) Pool {
	return Pool{
		ID:                     id,
		Token0:                 meta.Token0,
		Token1:                 meta.Token1,
		FeeTier:                meta.Fee,
		TickSpacing:            meta.TickSpacing,
		CreatedAtBlock:         createdAtBlock,
		Liquidity:              new(uint256.Int),
		SqrtPrice:              new(uint256.Int),
		TotalValueLockedToken0: decimal.Zero,
		TotalValueLockedToken1: decimal.Zero,
		Token0Price:            decimal.Zero,
		Token1Price:            decimal.Zero,
	}
}

// Clone returns a copy that shares no integers with p.
func (p Pool) Clone() Pool {
	out := p
	out.Liquidity = cloneUint(p.Liquidity)
	out.SqrtPrice = cloneUint(p.SqrtPrice)
	return out
}

// HasLiquidity reports whether the pool has any in-range liquidity.
func (p Pool) HasLiquidity() bool {
	return p.Liquidity != nil && !p.Liquidity.IsZero()
}

// Counterpart returns the other token of the pool, or false when tokenID is not in it.
func (p Pool) Counterpart(tokenID string) (string, bool) {
	switch tokenID {
	case p.Token0:
		return p.Token1, true
	case p.Token1:
		return p.Token0, true
	default:
		return "", false
	}
}

func cloneUint(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(v)
}
