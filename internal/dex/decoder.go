package dex

import "v3pricing/internal/model"

// Decoder turns raw logs into typed pool events.
type Decoder interface {
	CanDecode(topic0 string) bool
	Decode(log model.LogRecord) (*model.TypedEvent, error)
}

// Event names produced by V3PoolDecoder.
const (
	EventInitialize = "Initialize"
	EventSwap       = "Swap"
	EventMint       = "Mint"
	EventBurn       = "Burn"
	EventCollect    = "Collect"
)
