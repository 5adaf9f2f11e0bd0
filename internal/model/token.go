package model

import "github.com/shopspring/decimal"

// TokenMeta captures ERC20 metadata read from chain.
type TokenMeta struct {
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
}

// Token is the per-token pricing record, keyed by lowercase contract address.
type Token struct {
	ID       string
	Symbol   string
	Name     string
	Decimals uint8

	// DerivedNative is the token's price in units of the chain's wrapped native token.
	DerivedNative decimal.Decimal

	// WhitelistPools lists, in discovery order, the pools pairing this token with a whitelisted token.
	WhitelistPools []string
}

// NewToken builds an unpriced token from its metadata.
func NewToken(id string, meta TokenMeta) Token {
	return Token{
		ID:             id,
		Symbol:         meta.Symbol,
		Name:           meta.Name,
		Decimals:       meta.Decimals,
		DerivedNative:  decimal.Zero,
		WhitelistPools: []string{},
	}
}

// Clone returns a copy that shares no slices with t.
func (t Token) Clone() Token {
	out := t
	out.WhitelistPools = append([]string(nil), t.WhitelistPools...)
	return out
}

// AddWhitelistPool appends poolID unless already present and reports whether it was added.
func (t *Token) AddWhitelistPool(poolID string) bool {
	for _, existing := range t.WhitelistPools {
		if existing == poolID {
			return false
		}
	}
	t.WhitelistPools = append(t.WhitelistPools, poolID)
	return true
}
