package model

// Cursor marks the last log applied to an entity store.
type Cursor struct {
	BlockNumber uint64 `json:"block_number"`
	LogIndex    uint64 `json:"log_index"`
}

// After reports whether c is strictly later than other in chain order.
func (c Cursor) After(other Cursor) bool {
	if c.BlockNumber != other.BlockNumber {
		return c.BlockNumber > other.BlockNumber
	}
	return c.LogIndex > other.LogIndex
}
