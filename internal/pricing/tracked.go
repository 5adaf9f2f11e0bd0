package pricing

import (
	"github.com/shopspring/decimal"

	"v3pricing/internal/model"
)

// PriceUSD is the token's USD price through the bundle's native price.
func PriceUSD(token model.Token, bundle model.Bundle) decimal.Decimal {
	return token.DerivedNative.Mul(bundle.EthPriceUSD)
}

// TrackedAmountUSD returns the USD volume of a trade that counts toward
// aggregates. Both sides whitelisted sums both legs; one side whitelisted
// doubles that leg; otherwise the trade is not tracked.
func TrackedAmountUSD(amount0 decimal.Decimal, token0 model.Token, amount1 decimal.Decimal, token1 model.Token, bundle model.Bundle, whitelist model.AddressSet) decimal.Decimal {
	listed0 := whitelist.Contains(token0.ID)
	listed1 := whitelist.Contains(token1.ID)

	switch {
	case listed0 && listed1:
		return amount0.Mul(PriceUSD(token0, bundle)).Add(amount1.Mul(PriceUSD(token1, bundle)))
	case listed0:
		return amount0.Mul(PriceUSD(token0, bundle)).Mul(two)
	case listed1:
		return amount1.Mul(PriceUSD(token1, bundle)).Mul(two)
	default:
		return decimal.Zero
	}
}

// UntrackedAmountUSD sums both legs' USD value regardless of whitelist membership.
func UntrackedAmountUSD(amount0 decimal.Decimal, token0 model.Token, amount1 decimal.Decimal, token1 model.Token, bundle model.Bundle) decimal.Decimal {
	return amount0.Mul(PriceUSD(token0, bundle)).Add(amount1.Mul(PriceUSD(token1, bundle)))
}
