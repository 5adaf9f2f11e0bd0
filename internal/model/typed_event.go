package model

// TypedEvent is a decoded pool event with its log coordinates.
type TypedEvent struct {
	ChainID     uint64
	BlockNumber uint64
	TxHash      string
	LogIndex    uint64
	Address     string
	EventName   string
	Timestamp   uint64
	Decoded     interface{}
}
