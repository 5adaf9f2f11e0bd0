package model

import "github.com/shopspring/decimal"

// BundleID is the fixed id of the process-wide bundle record.
const BundleID = "1"

// Bundle holds the USD price of the chain's native token.
type Bundle struct {
	ID          string
	EthPriceUSD decimal.Decimal
}

// NewBundle returns a bundle whose native price is not yet known.
func NewBundle() Bundle {
	return Bundle{ID: BundleID, EthPriceUSD: decimal.Zero}
}
