package model

import (
	"encoding/json"
	"strings"
)

// LogRecord is the normalized representation of a chain log, one per JSONL line.
type LogRecord struct {
	ChainID     uint64   `json:"chain_id"`
	BlockNumber uint64   `json:"block_number"`
	BlockHash   string   `json:"block_hash"`
	TxHash      string   `json:"tx_hash"`
	TxIndex     uint64   `json:"tx_index"`
	LogIndex    uint64   `json:"log_index"`
	Address     string   `json:"address"`
	Topics      []string `json:"topics"`
	Data        string   `json:"data"`
	Removed     bool     `json:"removed"`
	Timestamp   uint64   `json:"timestamp"`
	IngestedAt  string   `json:"ingested_at"`
}

// UnmarshalJSON decodes a LogRecord, tolerating a null topics field.
func (lr *LogRecord) UnmarshalJSON(data []byte) error {
	type Alias LogRecord
	var a Alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Topics == nil {
		a.Topics = []string{}
	}
	*lr = LogRecord(a)
	return nil
}

// Topic0 returns the event signature topic, or "" when the log has no topics.
func (lr LogRecord) Topic0() string {
	if len(lr.Topics) == 0 {
		return ""
	}
	return lr.Topics[0]
}

// PoolID returns the emitting contract as a store id.
func (lr LogRecord) PoolID() string {
	return strings.ToLower(lr.Address)
}

// Cursor returns the position of this log in canonical chain order.
func (lr LogRecord) Cursor() Cursor {
	return Cursor{BlockNumber: lr.BlockNumber, LogIndex: lr.LogIndex}
}
