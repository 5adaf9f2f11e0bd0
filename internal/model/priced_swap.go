package model

import "github.com/shopspring/decimal"

// PricedSwap is a swap enriched with USD pricing, written one per JSONL line.
type PricedSwap struct {
	ChainID     uint64 `json:"chain_id"`
	BlockNumber uint64 `json:"block_number"`
	TxHash      string `json:"tx_hash"`
	LogIndex    uint64 `json:"log_index"`
	Timestamp   uint64 `json:"timestamp"`
	Pool        string `json:"pool"`
	Token0      string `json:"token0"`
	Token1      string `json:"token1"`

	Amount0            decimal.Decimal `json:"amount0"`
	Amount1            decimal.Decimal `json:"amount1"`
	AmountUSDTracked   decimal.Decimal `json:"amount_usd_tracked"`
	AmountUSDUntracked decimal.Decimal `json:"amount_usd_untracked"`

	NativePriceUSD      decimal.Decimal `json:"native_price_usd"`
	Token0DerivedNative decimal.Decimal `json:"token0_derived_native"`
	Token1DerivedNative decimal.Decimal `json:"token1_derived_native"`
	Token0Price         decimal.Decimal `json:"token0_price"`
	Token1Price         decimal.Decimal `json:"token1_price"`
}
