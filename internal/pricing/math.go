// Package pricing derives token prices from V3 pool state.
//
// Everything here is deterministic and free of side effects apart from the
// store reads in LoadCandidates, FindNativePerToken and NativePriceInUSD.
package pricing

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DivisionScale is the minimum number of fractional digits kept by a division.
const DivisionScale int32 = 40

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// SafeDiv divides a by b, returning zero instead of failing when b is zero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, DivisionScale)
}

// ExponentToDecimal returns 10^decimals.
func ExponentToDecimal(decimals uint8) decimal.Decimal {
	return decimal.New(1, int32(decimals))
}

// ConvertTokenToDecimal scales a raw token amount by its decimals.
func ConvertTokenToDecimal(amount *big.Int, decimals uint8) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -int32(decimals))
}
