package model

import "github.com/holiman/uint256"

// PoolMeta captures immutable pool metadata read from chain.
type PoolMeta struct {
	Factory     string
	Token0      string
	Token1      string
	Fee         uint32
	TickSpacing int32
}

// PoolSlot0 includes the live slot0 fields used for pricing.
type PoolSlot0 struct {
	SqrtPriceX96 *uint256.Int
	Tick         int32
}
