package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ReplayConfig holds configuration for the replay command.
type ReplayConfig struct {
	Network      string
	Chain        ChainConfig
	Store        string
	RPCURL       string
	In           string
	Out          string
	Errors       string
	SeedTVL      bool
	Topic0Map    map[string]string
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadReplay merges config file, environment variables, and flags into ReplayConfig.
// An unknown network fails with ErrUnsupportedNetwork.
func LoadReplay(cfgFile string, flags *pflag.FlagSet) (ReplayConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"network":  "mainnet",
		"store":    "memory",
		"out":      "./data/priced_swaps.jsonl",
		"errors":   "./data/decode_errors.jsonl",
		"seed-tvl": false,
	})
	if err != nil {
		return ReplayConfig{}, err
	}

	network := v.GetString("network")
	chain, err := ResolveChain(v, network)
	if err != nil {
		return ReplayConfig{}, err
	}

	cfg := ReplayConfig{
		Network:      network,
		Chain:        chain,
		Store:        v.GetString("store"),
		RPCURL:       v.GetString("rpc"),
		In:           v.GetString("in"),
		Out:          v.GetString("out"),
		Errors:       v.GetString("errors"),
		SeedTVL:      v.GetBool("seed-tvl"),
		Topic0Map:    getStringMap(v, "topic0-map"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}
	if cfg.SeedTVL && cfg.RPCURL == "" {
		return ReplayConfig{}, fmt.Errorf("seed-tvl requires an rpc url")
	}
	return cfg, nil
}
