package model

import (
	"math/big"

	"github.com/holiman/uint256"
)

// InitializeEventData is the decoded Initialize event payload.
type InitializeEventData struct {
	SqrtPriceX96 *uint256.Int
	Tick         int32
}

// SwapEventData is the decoded Swap event payload. Amounts are signed from the pool's perspective.
type SwapEventData struct {
	Sender       string
	Recipient    string
	Amount0      *big.Int
	Amount1      *big.Int
	SqrtPriceX96 *uint256.Int
	Liquidity    *uint256.Int
	Tick         int32
}

// MintEventData is the decoded Mint event payload.
type MintEventData struct {
	Sender    string
	Owner     string
	TickLower int32
	TickUpper int32
	Amount    *uint256.Int
	Amount0   *big.Int
	Amount1   *big.Int
}

// BurnEventData is the decoded Burn event payload.
type BurnEventData struct {
	Owner     string
	TickLower int32
	TickUpper int32
	Amount    *uint256.Int
	Amount0   *big.Int
	Amount1   *big.Int
}

// CollectEventData is the decoded Collect event payload.
type CollectEventData struct {
	Owner     string
	Recipient string
	TickLower int32
	TickUpper int32
	Amount0   *big.Int
	Amount1   *big.Int
}
