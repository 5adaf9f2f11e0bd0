package config

import (
	"github.com/spf13/pflag"
)

// PriceConfig holds configuration for the price command.
type PriceConfig struct {
	Network  string
	Chain    ChainConfig
	Store    string
	Tokens   []string
	LogLevel string
}

func LoadPrice(cfgFile string, flags *pflag.FlagSet) (PriceConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"network": "mainnet",
		"store":   "memory",
	})
	if err != nil {
		return PriceConfig{}, err
	}

	network := v.GetString("network")
	chain, err := ResolveChain(v, network)
	if err != nil {
		return PriceConfig{}, err
	}

	tokens, err := NormalizeAddresses(getStringSlice(v, "token"))
	if err != nil {
		return PriceConfig{}, err
	}

	return PriceConfig{
		Network:  network,
		Chain:    chain,
		Store:    v.GetString("store"),
		Tokens:   tokens,
		LogLevel: v.GetString("log-level"),
	}, nil
}
