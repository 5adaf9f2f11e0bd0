package config

import (
	"time"

	"github.com/spf13/pflag"
)

// QuoteConfig holds configuration for the quote command.
type QuoteConfig struct {
	RPCURL       string
	Pools        []string
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

func LoadQuote(cfgFile string, flags *pflag.FlagSet) (QuoteConfig, error) {
	v, err := newViper(cfgFile, flags, nil)
	if err != nil {
		return QuoteConfig{}, err
	}

	pools, err := NormalizeAddresses(getStringSlice(v, "pool"))
	if err != nil {
		return QuoteConfig{}, err
	}

	return QuoteConfig{
		RPCURL:       v.GetString("rpc"),
		Pools:        pools,
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}
