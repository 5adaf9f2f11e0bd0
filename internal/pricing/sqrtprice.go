package pricing

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var q192 = new(big.Int).Lsh(big.NewInt(1), 192)

// SqrtPriceX96ToTokenPrices decodes a Q64.96 square-root price into
// price0 (token0 per token1) and price1 (token1 per token0), adjusted for
// token decimals. A zero input yields two zero prices.
//
// Both prices are divided out of the exact ratio sqrt^2 * 10^d0 : 2^192 * 10^d1,
// each keeping at least DivisionScale significant digits, so extreme ticks do
// not lose precision and price0 is never the reciprocal of a rounded price1.
func SqrtPriceX96ToTokenPrices(sqrtPriceX96 *uint256.Int, decimals0, decimals1 uint8) (price0, price1 decimal.Decimal) {
	if sqrtPriceX96 == nil || sqrtPriceX96.IsZero() {
		return decimal.Zero, decimal.Zero
	}

	sqrt := sqrtPriceX96.ToBig()
	num := new(big.Int).Mul(sqrt, sqrt)
	num.Mul(num, pow10(decimals0))
	den := new(big.Int).Mul(q192, pow10(decimals1))

	return divSignificant(den, num), divSignificant(num, den)
}

// divSignificant returns num/den rounded to DivisionScale significant digits
// or DivisionScale fractional digits, whichever keeps more. Both are positive.
func divSignificant(num, den *big.Int) decimal.Decimal {
	scale := DivisionScale
	if shift := int32(len(den.String()) - len(num.String()) + 1); shift > 0 {
		scale += shift
	}
	return decimal.NewFromBigInt(num, 0).DivRound(decimal.NewFromBigInt(den, 0), scale)
}

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
