package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"v3pricing/internal/model"
)

// ResolverParams carries the chain settings the resolver depends on.
type ResolverParams struct {
	WrappedNativeAddress string
	StablecoinAddresses  model.AddressSet
	MinimumNativeLocked  decimal.Decimal
}

// Candidate is one whitelisted pool of a token together with the token on
// the other side of that pool.
type Candidate struct {
	Pool        model.Pool
	Counterpart model.Token
}

// LoadCandidates materializes the token's whitelist pools in list order.
// Pools or counterparts missing from the store are skipped.
func LoadCandidates(ctx context.Context, reader EntityReader, token model.Token) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(token.WhitelistPools))
	for _, poolID := range token.WhitelistPools {
		pool, ok, err := reader.Pool(ctx, poolID)
		if err != nil {
			return nil, fmt.Errorf("load pool %s: %w", poolID, err)
		}
		if !ok {
			continue
		}
		counterpartID, ok := pool.Counterpart(token.ID)
		if !ok {
			continue
		}
		counterpart, ok, err := reader.Token(ctx, counterpartID)
		if err != nil {
			return nil, fmt.Errorf("load token %s: %w", counterpartID, err)
		}
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{Pool: pool, Counterpart: counterpart})
	}
	return candidates, nil
}

// BestNativePrice folds over candidates and returns the price implied by the
// pool holding the most native value on the counterpart side, provided that
// value exceeds minimum. Comparisons are strict, so the earliest candidate
// wins ties. Zero is returned when no candidate qualifies.
func BestNativePrice(tokenID string, candidates []Candidate, minimum decimal.Decimal) decimal.Decimal {
	largest := decimal.Zero
	price := decimal.Zero

	for _, c := range candidates {
		if !c.Pool.HasLiquidity() {
			continue
		}
		var locked, implied decimal.Decimal
		switch tokenID {
		case c.Pool.Token0:
			locked = c.Pool.TotalValueLockedToken1.Mul(c.Counterpart.DerivedNative)
			implied = c.Pool.Token1Price.Mul(c.Counterpart.DerivedNative)
		case c.Pool.Token1:
			locked = c.Pool.TotalValueLockedToken0.Mul(c.Counterpart.DerivedNative)
			implied = c.Pool.Token0Price.Mul(c.Counterpart.DerivedNative)
		default:
			continue
		}
		if locked.GreaterThan(largest) && locked.GreaterThan(minimum) {
			largest = locked
			price = implied
		}
	}
	return price
}

// DerivedNativePrice prices token in native units from already loaded candidates.
//
// The wrapped native token is worth exactly one. Stablecoins are priced as the
// inverse of the bundle's native USD price. Everything else uses the single
// most liquid qualifying pool; signals from several pools are not blended.
func DerivedNativePrice(token model.Token, bundle model.Bundle, candidates []Candidate, params ResolverParams) decimal.Decimal {
	if token.ID == params.WrappedNativeAddress {
		return one
	}
	if params.StablecoinAddresses.Contains(token.ID) {
		return SafeDiv(one, bundle.EthPriceUSD)
	}
	return BestNativePrice(token.ID, candidates, params.MinimumNativeLocked)
}

// FindNativePerToken resolves token's native price against the store. The
// store is only read when the token is neither native nor a stablecoin.
func FindNativePerToken(ctx context.Context, reader EntityReader, token model.Token, bundle model.Bundle, params ResolverParams) (decimal.Decimal, error) {
	if token.ID == params.WrappedNativeAddress || params.StablecoinAddresses.Contains(token.ID) {
		return DerivedNativePrice(token, bundle, nil, params), nil
	}
	candidates, err := LoadCandidates(ctx, reader, token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load candidates for %s: %w", token.ID, err)
	}
	return DerivedNativePrice(token, bundle, candidates, params), nil
}
