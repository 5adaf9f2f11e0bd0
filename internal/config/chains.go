package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"v3pricing/internal/model"
	"v3pricing/internal/pricing"
)

// ErrUnsupportedNetwork is returned when a network has neither a built-in
// entry nor a chains.<name> section in the config file.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// ChainConfig is the per-network pricing configuration. Addresses are
// validated and lowercased.
type ChainConfig struct {
	Network                            string
	FactoryAddress                     string
	StablecoinWrappedNativePoolAddress string
	StablecoinIsToken0                 bool
	WrappedNativeAddress               string
	MinimumNativeLocked                decimal.Decimal
	StablecoinAddresses                model.AddressSet
	WhitelistTokens                    model.AddressSet
	TokenOverrides                     map[string]model.TokenMeta
	PoolsToSkip                        model.AddressSet
}

// ResolverParams returns the subset of the config used to derive native prices.
func (c ChainConfig) ResolverParams() pricing.ResolverParams {
	return pricing.ResolverParams{
		WrappedNativeAddress: c.WrappedNativeAddress,
		StablecoinAddresses:  c.StablecoinAddresses,
		MinimumNativeLocked:  c.MinimumNativeLocked,
	}
}

type rawTokenOverride struct {
	Address  string `mapstructure:"address"`
	Symbol   string `mapstructure:"symbol"`
	Name     string `mapstructure:"name"`
	Decimals uint8  `mapstructure:"decimals"`
}

type rawChain struct {
	FactoryAddress                     string             `mapstructure:"factory-address"`
	StablecoinWrappedNativePoolAddress string             `mapstructure:"stablecoin-wrapped-native-pool-address"`
	StablecoinIsToken0                 *bool              `mapstructure:"stablecoin-is-token0"`
	WrappedNativeAddress               string             `mapstructure:"wrapped-native-address"`
	MinimumNativeLocked                string             `mapstructure:"minimum-native-locked"`
	StablecoinAddresses                []string           `mapstructure:"stablecoin-addresses"`
	WhitelistTokens                    []string           `mapstructure:"whitelist-tokens"`
	TokenOverrides                     []rawTokenOverride `mapstructure:"token-overrides"`
	PoolsToSkip                        []string           `mapstructure:"pools-to-skip"`
}

// ResolveChain returns the configuration for network: the built-in entry,
// with any chains.<network> section of v layered on top.
func ResolveChain(v *viper.Viper, network string) (ChainConfig, error) {
	network = strings.ToLower(strings.TrimSpace(network))
	if network == "" {
		return ChainConfig{}, fmt.Errorf("%w: network is required", ErrUnsupportedNetwork)
	}

	raw, known := builtinChains[network]
	key := "chains." + network
	if v != nil && v.IsSet(key) {
		var override rawChain
		if err := v.UnmarshalKey(key, &override); err != nil {
			return ChainConfig{}, fmt.Errorf("parse %s: %w", key, err)
		}
		raw = raw.merge(override)
		known = true
	}
	if !known {
		return ChainConfig{}, fmt.Errorf("%w: %q (built-in: %s)", ErrUnsupportedNetwork, network, strings.Join(SupportedNetworks(), ", "))
	}

	cfg, err := raw.build(network)
	if err != nil {
		return ChainConfig{}, fmt.Errorf("network %s: %w", network, err)
	}
	return cfg, nil
}

// SupportedNetworks lists the built-in network names.
func SupportedNetworks() []string {
	names := make([]string, 0, len(builtinChains))
	for name := range builtinChains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r rawChain) merge(o rawChain) rawChain {
	out := r
	if o.FactoryAddress != "" {
		out.FactoryAddress = o.FactoryAddress
	}
	if o.StablecoinWrappedNativePoolAddress != "" {
		out.StablecoinWrappedNativePoolAddress = o.StablecoinWrappedNativePoolAddress
	}
	if o.StablecoinIsToken0 != nil {
		out.StablecoinIsToken0 = o.StablecoinIsToken0
	}
	if o.WrappedNativeAddress != "" {
		out.WrappedNativeAddress = o.WrappedNativeAddress
	}
	if o.MinimumNativeLocked != "" {
		out.MinimumNativeLocked = o.MinimumNativeLocked
	}
	if len(o.StablecoinAddresses) > 0 {
		out.StablecoinAddresses = o.StablecoinAddresses
	}
	if len(o.WhitelistTokens) > 0 {
		out.WhitelistTokens = o.WhitelistTokens
	}
	if len(o.TokenOverrides) > 0 {
		out.TokenOverrides = append(append([]rawTokenOverride(nil), r.TokenOverrides...), o.TokenOverrides...)
	}
	if len(o.PoolsToSkip) > 0 {
		out.PoolsToSkip = o.PoolsToSkip
	}
	return out
}

func (r rawChain) build(network string) (ChainConfig, error) {
	cfg := ChainConfig{
		Network:        network,
		TokenOverrides: make(map[string]model.TokenMeta, len(r.TokenOverrides)),
	}

	var err error
	if cfg.WrappedNativeAddress, err = normalizeAddress(r.WrappedNativeAddress); err != nil {
		return ChainConfig{}, fmt.Errorf("wrapped native address: %w", err)
	}
	if cfg.StablecoinWrappedNativePoolAddress, err = normalizeAddress(r.StablecoinWrappedNativePoolAddress); err != nil {
		return ChainConfig{}, fmt.Errorf("stablecoin pool address: %w", err)
	}
	if r.FactoryAddress != "" {
		if cfg.FactoryAddress, err = normalizeAddress(r.FactoryAddress); err != nil {
			return ChainConfig{}, fmt.Errorf("factory address: %w", err)
		}
	}
	if r.StablecoinIsToken0 != nil {
		cfg.StablecoinIsToken0 = *r.StablecoinIsToken0
	}

	cfg.MinimumNativeLocked = decimal.Zero
	if r.MinimumNativeLocked != "" {
		if cfg.MinimumNativeLocked, err = decimal.NewFromString(r.MinimumNativeLocked); err != nil {
			return ChainConfig{}, fmt.Errorf("minimum native locked: %w", err)
		}
		if cfg.MinimumNativeLocked.IsNegative() {
			return ChainConfig{}, fmt.Errorf("minimum native locked must not be negative")
		}
	}

	if cfg.StablecoinAddresses, err = addressSet(r.StablecoinAddresses); err != nil {
		return ChainConfig{}, fmt.Errorf("stablecoin addresses: %w", err)
	}
	if cfg.WhitelistTokens, err = addressSet(r.WhitelistTokens); err != nil {
		return ChainConfig{}, fmt.Errorf("whitelist tokens: %w", err)
	}
	if cfg.PoolsToSkip, err = addressSet(r.PoolsToSkip); err != nil {
		return ChainConfig{}, fmt.Errorf("pools to skip: %w", err)
	}

	for _, o := range r.TokenOverrides {
		addr, err := normalizeAddress(o.Address)
		if err != nil {
			return ChainConfig{}, fmt.Errorf("token override: %w", err)
		}
		cfg.TokenOverrides[addr] = model.TokenMeta{
			Address:  addr,
			Symbol:   o.Symbol,
			Name:     o.Name,
			Decimals: o.Decimals,
		}
	}

	return cfg, nil
}

// NormalizeAddresses validates hex addresses and returns them lowercased.
func NormalizeAddresses(inputs []string) ([]string, error) {
	out := make([]string, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		addr, err := normalizeAddress(input)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

func normalizeAddress(input string) (string, error) {
	input = strings.TrimSpace(input)
	if !common.IsHexAddress(input) {
		return "", fmt.Errorf("invalid address: %q", input)
	}
	return strings.ToLower(common.HexToAddress(input).Hex()), nil
}

func addressSet(inputs []string) (model.AddressSet, error) {
	addrs, err := NormalizeAddresses(inputs)
	if err != nil {
		return nil, err
	}
	return model.NewAddressSet(addrs...), nil
}
