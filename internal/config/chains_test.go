package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveChainBuiltin(t *testing.T) {
	cfg, err := ResolveChain(nil, "Mainnet")
	require.NoError(t, err)

	assert.Equal(t, "mainnet", cfg.Network)
	assert.Equal(t, "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", cfg.WrappedNativeAddress)
	assert.Equal(t, "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8", cfg.StablecoinWrappedNativePoolAddress)
	assert.True(t, cfg.StablecoinIsToken0)
	assert.True(t, cfg.MinimumNativeLocked.Equal(decimal.NewFromInt(20)))
	assert.True(t, cfg.StablecoinAddresses.Contains("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"))
	assert.True(t, cfg.WhitelistTokens.Contains("0x2260fac5e5542a773aa44fbcfedf7c193bc2c599"))
	assert.True(t, cfg.PoolsToSkip.Contains("0x8fe8d9bb8eeba3ed688069c3d6b556c9ca258248"))
	assert.Equal(t, uint8(9), cfg.TokenOverrides["0xe0b7927c4af23765cb51314a0e0521a9645f0e2a"].Decimals)

	params := cfg.ResolverParams()
	assert.Equal(t, cfg.WrappedNativeAddress, params.WrappedNativeAddress)
	assert.True(t, params.MinimumNativeLocked.Equal(cfg.MinimumNativeLocked))
}

func TestBuiltinChainsAreValid(t *testing.T) {
	networks := SupportedNetworks()
	for _, name := range []string{
		"arbitrum-one", "avalanche", "base", "blast-mainnet", "bsc", "celo", "fantom", "mainnet",
		"matic", "optimism", "q", "sepolia", "worldchain-mainnet", "zksync-era", "zora-mainnet",
	} {
		assert.Contains(t, networks, name)
	}

	for _, name := range networks {
		cfg, err := ResolveChain(nil, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, cfg.FactoryAddress, name)
		assert.NotEmpty(t, cfg.StablecoinAddresses, name)
		assert.True(t, cfg.WhitelistTokens.Contains(cfg.WrappedNativeAddress), "%s whitelists its native token", name)
	}
}

func TestResolveChainArbitrumTables(t *testing.T) {
	cfg, err := ResolveChain(nil, "arbitrum-one")
	require.NoError(t, err)

	assert.Len(t, cfg.WhitelistTokens, 94)
	assert.True(t, cfg.WhitelistTokens.Contains("0xeeeeeb57642040be42185f49c52f7e9b38f8eeee"), "ELK")
	assert.Len(t, cfg.StablecoinAddresses, 7)
	for _, addr := range []string{
		"0x4f947b40beeb9d8130437781a560e5c7d089730f", // kUSDC
		"0xa970af1a584579b618be4d69ad6f73459d112f95", // sUSD
		"0x4d15a3a2286d883af0aa1b3f21367843fac63e07", // TUSD
	} {
		assert.True(t, cfg.StablecoinAddresses.Contains(addr), addr)
	}
	// Stablecoins are priced through the short-circuit, not the whitelist.
	assert.False(t, cfg.WhitelistTokens.Contains("0x4f947b40beeb9d8130437781a560e5c7d089730f"))

	zk, err := ResolveChain(nil, "zksync-era")
	require.NoError(t, err)
	assert.Equal(t, "Bridged USDC (zkSync)", zk.TokenOverrides["0x3355df6d4c9c3035724fd0e3914de96a5a83aaf4"].Name)
}

func TestResolveChainUnsupported(t *testing.T) {
	_, err := ResolveChain(nil, "dogechain")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
	assert.Contains(t, err.Error(), "arbitrum-one, avalanche")

	_, err = ResolveChain(nil, "  ")
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func priceFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("price", pflag.ContinueOnError)
	flags.String("network", "mainnet", "")
	flags.String("store", "memory", "")
	flags.StringSlice("token", nil, "")
	flags.String("log-level", "info", "")
	return flags
}

func TestLoadPriceWithChainOverrides(t *testing.T) {
	path := writeConfig(t, `
network: devnet
chains:
  devnet:
    wrapped-native-address: "0x4200000000000000000000000000000000000006"
    stablecoin-wrapped-native-pool-address: "0xD0b53D9277642d899DF5C87A3966A349A798F224"
    stablecoin-is-token0: true
    minimum-native-locked: 2.5
    stablecoin-addresses:
      - "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
    whitelist-tokens:
      - "0x4200000000000000000000000000000000000006"
      - "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
    token-overrides:
      - address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
        symbol: USDC
        name: USD Coin
        decimals: 6
  mainnet:
    minimum-native-locked: "5"
`)

	flags := priceFlags()
	require.NoError(t, flags.Parse([]string{"--token", "0x1F9840a85d5aF5bf1D1762F925BDADdC4201F984"}))

	cfg, err := LoadPrice(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "devnet", cfg.Network)
	assert.Equal(t, []string{"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984"}, cfg.Tokens)
	assert.Equal(t, "0xd0b53d9277642d899df5c87a3966a349a798f224", cfg.Chain.StablecoinWrappedNativePoolAddress)
	assert.True(t, cfg.Chain.StablecoinIsToken0)
	assert.True(t, cfg.Chain.MinimumNativeLocked.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, cfg.Chain.StablecoinAddresses.Contains("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"))
	assert.Equal(t, "USDC", cfg.Chain.TokenOverrides["0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"].Symbol)

	mainnet, err := resolveFromFile(t, path, "mainnet")
	require.NoError(t, err)
	assert.True(t, mainnet.MinimumNativeLocked.Equal(decimal.NewFromInt(5)))
	assert.True(t, mainnet.StablecoinIsToken0, "unset fields keep built-in values")
	assert.Equal(t, "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", mainnet.WrappedNativeAddress)
}

func resolveFromFile(t *testing.T, path, network string) (ChainConfig, error) {
	t.Helper()
	v, err := newViper(path, nil, nil)
	require.NoError(t, err)
	return ResolveChain(v, network)
}

func TestLoadPriceRejectsBadAddresses(t *testing.T) {
	path := writeConfig(t, `
chains:
  broken:
    wrapped-native-address: "0x1234"
    stablecoin-wrapped-native-pool-address: "0xD0b53D9277642d899DF5C87A3966A349A798F224"
`)
	flags := priceFlags()
	require.NoError(t, flags.Parse([]string{"--network", "broken"}))
	_, err := LoadPrice(path, flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrapped native address")

	flags = priceFlags()
	require.NoError(t, flags.Parse([]string{"--token", "not-an-address"}))
	_, err = LoadPrice("", flags)
	require.Error(t, err)
}

func TestLoadReplayEnvironment(t *testing.T) {
	t.Setenv("INDEXER_NETWORK", "bsc")
	t.Setenv("INDEXER_SEED_TVL", "true")
	t.Setenv("INDEXER_RPC", "http://localhost:8545")
	t.Setenv("INDEXER_TOPIC0_MAP", "0xabc=swap, bad, =mint")

	flags := pflag.NewFlagSet("replay", pflag.ContinueOnError)
	flags.String("network", "mainnet", "")
	flags.String("in", "", "")
	flags.Bool("seed-tvl", false, "")
	require.NoError(t, flags.Parse([]string{"--in", "logs.jsonl"}))

	cfg, err := LoadReplay("", flags)
	require.NoError(t, err)
	assert.Equal(t, "bsc", cfg.Network)
	assert.Equal(t, "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c", cfg.Chain.WrappedNativeAddress)
	assert.True(t, cfg.SeedTVL)
	assert.Equal(t, "logs.jsonl", cfg.In)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, map[string]string{"0xabc": "swap"}, cfg.Topic0Map)
}

func TestLoadReplayUnsupportedNetwork(t *testing.T) {
	flags := pflag.NewFlagSet("replay", pflag.ContinueOnError)
	flags.String("network", "mainnet", "")
	require.NoError(t, flags.Parse([]string{"--network", "solana"}))

	_, err := LoadReplay("", flags)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedNetwork)
}

func TestLoadQuoteSplitsPools(t *testing.T) {
	t.Setenv("INDEXER_POOL", "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8, 0x88E6A0c2dDD26FEEb64F039a2c41296FcB3f5640")

	cfg, err := LoadQuote("", pflag.NewFlagSet("quote", pflag.ContinueOnError))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8",
		"0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640",
	}, cfg.Pools)
}
