package dex

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"v3pricing/internal/chain"
	"v3pricing/internal/model"
)

// ContractCaller performs read-only contract calls. *chain.Client satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

var _ ContractCaller = (*chain.Client)(nil)

// PoolMetaCache caches pool metadata by address.
type PoolMetaCache struct {
	mu   sync.RWMutex
	data map[common.Address]model.PoolMeta
}

func NewPoolMetaCache() *PoolMetaCache {
	return &PoolMetaCache{data: make(map[common.Address]model.PoolMeta)}
}

func (c *PoolMetaCache) Get(address common.Address) (model.PoolMeta, bool) {
	c.mu.RLock()
	meta, ok := c.data[address]
	c.mu.RUnlock()
	return meta, ok
}

func (c *PoolMetaCache) Set(address common.Address, meta model.PoolMeta) {
	c.mu.Lock()
	c.data[address] = meta
	c.mu.Unlock()
}

// TokenMetaCache caches token metadata by address.
type TokenMetaCache struct {
	mu   sync.RWMutex
	data map[common.Address]model.TokenMeta
}

func NewTokenMetaCache() *TokenMetaCache {
	return &TokenMetaCache{data: make(map[common.Address]model.TokenMeta)}
}

func (c *TokenMetaCache) Get(address common.Address) (model.TokenMeta, bool) {
	c.mu.RLock()
	meta, ok := c.data[address]
	c.mu.RUnlock()
	return meta, ok
}

func (c *TokenMetaCache) Set(address common.Address, meta model.TokenMeta) {
	c.mu.Lock()
	c.data[address] = meta
	c.mu.Unlock()
}

// MetaReaderConfig configures retries for chain reads.
type MetaReaderConfig struct {
	MaxRetries   int
	RetryBackoff time.Duration
	Logger       *zap.Logger
}

// MetaReader reads pool and token state over eth_call. Immutable metadata is cached.
type MetaReader struct {
	caller       ContractCaller
	pools        *PoolMetaCache
	tokens       *TokenMetaCache
	maxRetries   int
	retryBackoff time.Duration
	logger       *zap.Logger
}

// NewMetaReader builds a MetaReader over caller.
func NewMetaReader(caller ContractCaller, cfg MetaReaderConfig) *MetaReader {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetaReader{
		caller:       caller,
		pools:        NewPoolMetaCache(),
		tokens:       NewTokenMetaCache(),
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
		logger:       logger,
	}
}

// PoolMeta returns the pool's factory, tokens, fee and tick spacing.
// Token addresses are lowercased. The factory is empty when the pool does not expose one.
func (r *MetaReader) PoolMeta(ctx context.Context, poolAddr string) (model.PoolMeta, error) {
	pool, err := parseAddress(poolAddr)
	if err != nil {
		return model.PoolMeta{}, err
	}
	if meta, ok := r.pools.Get(pool); ok {
		return meta, nil
	}

	poolABI, err := V3PoolABI()
	if err != nil {
		return model.PoolMeta{}, fmt.Errorf("parse pool abi: %w", err)
	}

	values, err := r.call(ctx, pool, poolABI, "token0", nil)
	if err != nil {
		return model.PoolMeta{}, err
	}
	token0, err := asAddress(values[0])
	if err != nil {
		return model.PoolMeta{}, fmt.Errorf("token0: %w", err)
	}

	values, err = r.call(ctx, pool, poolABI, "token1", nil)
	if err != nil {
		return model.PoolMeta{}, err
	}
	token1, err := asAddress(values[0])
	if err != nil {
		return model.PoolMeta{}, fmt.Errorf("token1: %w", err)
	}

	values, err = r.call(ctx, pool, poolABI, "fee", nil)
	if err != nil {
		return model.PoolMeta{}, err
	}
	feeInt, err := asBigInt(values[0])
	if err != nil {
		return model.PoolMeta{}, fmt.Errorf("fee: %w", err)
	}

	values, err = r.call(ctx, pool, poolABI, "tickSpacing", nil)
	if err != nil {
		return model.PoolMeta{}, err
	}
	tickSpacingInt, err := asBigInt(values[0])
	if err != nil {
		return model.PoolMeta{}, fmt.Errorf("tick spacing: %w", err)
	}
	tickSpacing, err := int24FromBig(tickSpacingInt)
	if err != nil {
		return model.PoolMeta{}, fmt.Errorf("tick spacing: %w", err)
	}

	meta := model.PoolMeta{
		Token0:      lowerHex(token0),
		Token1:      lowerHex(token1),
		Fee:         uint32(feeInt.Uint64()),
		TickSpacing: tickSpacing,
	}

	if values, err := r.call(ctx, pool, poolABI, "factory", nil); err == nil {
		if factory, err := asAddress(values[0]); err == nil {
			meta.Factory = lowerHex(factory)
		}
	} else {
		r.logger.Debug("factory call failed", zap.String("pool", pool.Hex()), zap.Error(err))
	}

	r.pools.Set(pool, meta)
	return meta, nil
}

// Slot0 returns the pool's sqrt price and tick at block; block 0 reads latest.
func (r *MetaReader) Slot0(ctx context.Context, poolAddr string, blockNumber uint64) (model.PoolSlot0, error) {
	pool, err := parseAddress(poolAddr)
	if err != nil {
		return model.PoolSlot0{}, err
	}
	poolABI, err := V3PoolABI()
	if err != nil {
		return model.PoolSlot0{}, fmt.Errorf("parse pool abi: %w", err)
	}

	values, err := r.call(ctx, pool, poolABI, "slot0", blockArg(blockNumber))
	if err != nil {
		return model.PoolSlot0{}, err
	}
	if len(values) < 2 {
		return model.PoolSlot0{}, fmt.Errorf("slot0 return size %d", len(values))
	}
	sqrt, err := asUint256(values[0])
	if err != nil {
		return model.PoolSlot0{}, fmt.Errorf("sqrtPriceX96: %w", err)
	}
	tickInt, err := asBigInt(values[1])
	if err != nil {
		return model.PoolSlot0{}, fmt.Errorf("tick: %w", err)
	}
	tick, err := int24FromBig(tickInt)
	if err != nil {
		return model.PoolSlot0{}, err
	}
	return model.PoolSlot0{SqrtPriceX96: sqrt, Tick: tick}, nil
}

// Liquidity returns the pool's in-range liquidity at block; block 0 reads latest.
func (r *MetaReader) Liquidity(ctx context.Context, poolAddr string, blockNumber uint64) (*uint256.Int, error) {
	pool, err := parseAddress(poolAddr)
	if err != nil {
		return nil, err
	}
	poolABI, err := V3PoolABI()
	if err != nil {
		return nil, fmt.Errorf("parse pool abi: %w", err)
	}
	values, err := r.call(ctx, pool, poolABI, "liquidity", blockArg(blockNumber))
	if err != nil {
		return nil, err
	}
	return asUint256(values[0])
}

// PoolBalances returns the pool's raw token0 and token1 balances. It reads at
// blockNumber first and falls back to the latest block when the node has pruned that state.
func (r *MetaReader) PoolBalances(ctx context.Context, poolAddr, token0, token1 string, blockNumber uint64) (*big.Int, *big.Int, error) {
	pool, err := parseAddress(poolAddr)
	if err != nil {
		return nil, nil, err
	}
	t0, err := parseAddress(token0)
	if err != nil {
		return nil, nil, err
	}
	t1, err := parseAddress(token1)
	if err != nil {
		return nil, nil, err
	}

	block := blockArg(blockNumber)
	bal0, err0 := r.balanceOf(ctx, t0, pool, block)
	bal1, err1 := r.balanceOf(ctx, t1, pool, block)
	if err0 == nil && err1 == nil {
		return bal0, bal1, nil
	}
	if block == nil {
		return nil, nil, fmt.Errorf("balanceOf failed: %v, %v", err0, err1)
	}

	r.logger.Debug("balanceOf at block failed, using latest",
		zap.String("pool", pool.Hex()),
		zap.Uint64("block", blockNumber),
	)
	bal0, err0 = r.balanceOf(ctx, t0, pool, nil)
	bal1, err1 = r.balanceOf(ctx, t1, pool, nil)
	if err0 == nil && err1 == nil {
		return bal0, bal1, nil
	}
	return nil, nil, fmt.Errorf("balanceOf failed: %v, %v", err0, err1)
}

func (r *MetaReader) balanceOf(ctx context.Context, token, owner common.Address, block *big.Int) (*big.Int, error) {
	stringABI, err := erc20ABIStringInstance()
	if err != nil {
		return nil, fmt.Errorf("parse erc20 string abi: %w", err)
	}
	values, err := r.call(ctx, token, stringABI, "balanceOf", block, owner)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("balanceOf return size %d", len(values))
	}
	return asBigInt(values[0])
}

// TokenMeta loads token metadata via ERC20 calls. Symbol and name fall back
// to bytes32 return types and are left empty if neither decodes.
func (r *MetaReader) TokenMeta(ctx context.Context, tokenAddr string) (model.TokenMeta, error) {
	token, err := parseAddress(tokenAddr)
	if err != nil {
		return model.TokenMeta{}, err
	}
	if meta, ok := r.tokens.Get(token); ok {
		return meta, nil
	}

	meta := model.TokenMeta{Address: lowerHex(token)}

	stringABI, err := erc20ABIStringInstance()
	if err != nil {
		return meta, fmt.Errorf("parse erc20 string abi: %w", err)
	}
	bytes32ABI, err := erc20ABIBytes32Instance()
	if err != nil {
		return meta, fmt.Errorf("parse erc20 bytes32 abi: %w", err)
	}

	values, err := r.call(ctx, token, stringABI, "decimals", nil)
	if err != nil {
		return meta, err
	}
	decimals, err := asUint8(values[0])
	if err != nil {
		return meta, err
	}
	meta.Decimals = decimals

	meta.Symbol = r.textField(ctx, token, "symbol", stringABI, bytes32ABI)
	meta.Name = r.textField(ctx, token, "name", stringABI, bytes32ABI)

	r.tokens.Set(token, meta)
	return meta, nil
}

func (r *MetaReader) textField(ctx context.Context, token common.Address, method string, stringABI, bytes32ABI abi.ABI) string {
	if values, err := r.callOnce(ctx, token, stringABI, method, nil); err == nil {
		if text, ok := values[0].(string); ok {
			return text
		}
	}
	values, err := r.callOnce(ctx, token, bytes32ABI, method, nil)
	if err == nil {
		if text, ok := bytes32ToString(values[0]); ok {
			return text
		}
	}
	r.logger.Debug(method+" call failed", zap.String("token", token.Hex()), zap.Error(err))
	return ""
}

// call retries transport failures. Unpack errors are returned as is.
func (r *MetaReader) call(ctx context.Context, to common.Address, parsed abi.ABI, method string, block *big.Int, args ...interface{}) ([]interface{}, error) {
	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	msg := ethereum.CallMsg{To: &to, Data: data}

	var resp []byte
	err = chain.WithRetry(ctx, r.logger, method, r.maxRetries, r.retryBackoff, func(ctx context.Context) error {
		var callErr error
		resp, callErr = r.caller.CallContract(ctx, msg, block)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	return unpackCall(parsed, method, resp)
}

// callOnce is used for optional fields where a revert is an expected answer.
func (r *MetaReader) callOnce(ctx context.Context, to common.Address, parsed abi.ABI, method string, block *big.Int) ([]interface{}, error) {
	data, err := parsed.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	resp, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, block)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	return unpackCall(parsed, method, resp)
}

func unpackCall(parsed abi.ABI, method string, resp []byte) ([]interface{}, error) {
	values, err := parsed.Unpack(method, resp)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("unpack %s: empty result", method)
	}
	return values, nil
}

func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid address: %s", value)
	}
	return common.HexToAddress(value), nil
}

func lowerHex(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

func blockArg(blockNumber uint64) *big.Int {
	if blockNumber == 0 {
		return nil
	}
	return new(big.Int).SetUint64(blockNumber)
}

func bytes32ToString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case [32]byte:
		return string(bytes.TrimRight(v[:], "\x00")), true
	case []byte:
		return string(bytes.TrimRight(v, "\x00")), true
	default:
		return "", false
	}
}

func asAddress(value interface{}) (common.Address, error) {
	switch v := value.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		return *v, nil
	default:
		return common.Address{}, fmt.Errorf("unsupported address type %T", value)
	}
}

func asBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	default:
		return nil, fmt.Errorf("unsupported int type %T", value)
	}
}

func asUint8(value interface{}) (uint8, error) {
	switch v := value.(type) {
	case uint8:
		return v, nil
	case uint16:
		return uint8(v), nil
	case uint32:
		return uint8(v), nil
	case uint64:
		return uint8(v), nil
	case *big.Int:
		return uint8(v.Uint64()), nil
	default:
		return 0, fmt.Errorf("unsupported uint8 type %T", value)
	}
}

func int24FromBig(value *big.Int) (int32, error) {
	min := big.NewInt(-1 << 23)
	max := big.NewInt((1 << 23) - 1)
	if value.Cmp(min) < 0 || value.Cmp(max) > 0 {
		return 0, fmt.Errorf("int24 overflow: %s", value.String())
	}
	return int32(value.Int64()), nil
}
